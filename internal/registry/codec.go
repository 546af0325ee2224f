package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vk/regbuild/internal/model"
)

// ErrMalformed is returned when a persisted document cannot be used as the
// existing registry.
var ErrMalformed = errors.New("malformed registry document")

// requiredFields must be present and non-null in every record stored under a
// valid identifier.
var requiredFields = []string{"name", "description", "category", "docId", "parameters", "outputFields"}

// LoadFile reads the document at path. A missing file is an empty document.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode reads one JSON object from r, keeping key order and the raw bytes
// of every record. Records under valid identifiers are checked for the
// required fields; records under invalid keys are kept unchecked because a
// merge discards them anyway.
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top level must be an object", ErrMalformed)
	}

	doc := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: record %q: %v", ErrMalformed, key, err)
		}
		if doc.Has(key) {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrMalformed, key)
		}
		if ValidIdentifier(key) {
			if err := validateRecord(raw); err != nil {
				return nil, fmt.Errorf("%w: record %q: %v", ErrMalformed, key, err)
			}
		}
		doc.SetRaw(key, raw)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the top-level object", ErrMalformed)
	}
	return doc, nil
}

// Validate checks every record copied from a persisted document for the
// required fields, whatever its key. Records built in memory are always
// complete. The error names the first offending key and wraps ErrMalformed.
func (d *Document) Validate() error {
	for _, key := range d.keys {
		e := d.entries[key]
		if e.raw == nil {
			continue
		}
		if err := validateRecord(e.raw); err != nil {
			return fmt.Errorf("%w: record %q: %v", ErrMalformed, key, err)
		}
	}
	return nil
}

func validateRecord(raw json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return fmt.Errorf("record must be an object")
	}
	for _, name := range requiredFields {
		v, ok := fields[name]
		if !ok || bytes.Equal(v, []byte("null")) {
			return fmt.Errorf("missing required field %q", name)
		}
	}
	var def model.Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	return nil
}

// Encode writes doc to w as an indented JSON object in insertion order.
// Non-ASCII text is written as is and HTML characters are not escaped.
func Encode(w io.Writer, doc *Document) error {
	b, err := Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Marshal returns the encoding written by Encode.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if doc.Len() == 0 {
		buf.WriteString("{}\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("{\n")
	for i, key := range doc.keys {
		name, err := encodeString(key)
		if err != nil {
			return nil, err
		}
		value, err := doc.entries[key].compact()
		if err != nil {
			return nil, fmt.Errorf("encode record %q: %w", key, err)
		}

		buf.WriteString("  ")
		buf.Write(name)
		buf.WriteString(": ")
		if err := json.Indent(&buf, value, "  ", "  "); err != nil {
			return nil, fmt.Errorf("encode record %q: %w", key, err)
		}
		if i < len(doc.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
