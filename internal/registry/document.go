package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vk/regbuild/internal/model"
)

// ErrNotFound is returned when a key is not present in a document.
var ErrNotFound = errors.New("identifier not found")

// entry is either a raw record copied from a persisted document or a record
// built in memory. Exactly one of the two fields is set.
type entry struct {
	raw json.RawMessage
	def *model.Definition
}

// Document is an ordered mapping from identifier to definition record.
// The zero value is not usable; call New.
type Document struct {
	keys    []string
	entries map[string]entry
}

// New returns an empty document.
func New() *Document {
	return &Document{entries: make(map[string]entry)}
}

// Len returns the number of identifiers in the document.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the identifiers in insertion order.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.entries[key]
	return ok
}

// Set stores a copy of def under key. A new key is appended; an existing key
// keeps its position.
func (d *Document) Set(key string, def model.Definition) {
	c := def.Clone()
	d.put(key, entry{def: &c})
}

// SetRaw stores a copy of the JSON record raw under key, to be emitted
// verbatim.
func (d *Document) SetRaw(key string, raw []byte) {
	c := make(json.RawMessage, len(raw))
	copy(c, raw)
	d.put(key, entry{raw: c})
}

func (d *Document) put(key string, e entry) {
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = e
}

// CopyFrom copies the record stored under key in src into d without
// re-encoding it. It reports false if src has no such key.
func (d *Document) CopyFrom(src *Document, key string) bool {
	e, ok := src.entries[key]
	if !ok {
		return false
	}
	if e.raw != nil {
		d.SetRaw(key, e.raw)
	} else {
		d.Set(key, *e.def)
	}
	return true
}

// Get decodes the record stored under key.
func (d *Document) Get(key string) (model.Definition, error) {
	e, ok := d.entries[key]
	if !ok {
		return model.Definition{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if e.def != nil {
		return e.def.Clone(), nil
	}
	var def model.Definition
	if err := json.Unmarshal(e.raw, &def); err != nil {
		return model.Definition{}, fmt.Errorf("%w: record %q: %v", ErrMalformed, key, err)
	}
	return def, nil
}

// Raw returns the compact JSON encoding of the record stored under key.
func (d *Document) Raw(key string) (json.RawMessage, error) {
	e, ok := d.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return e.compact()
}

// Equal reports whether both documents hold the same keys, in the same
// order, with byte-identical records once whitespace is ignored.
func (d *Document) Equal(o *Document) bool {
	if d.Len() != o.Len() {
		return false
	}
	for i, k := range d.keys {
		if o.keys[i] != k {
			return false
		}
		a, errA := d.entries[k].compact()
		b, errB := o.entries[k].compact()
		if errA != nil || errB != nil || !bytes.Equal(a, b) {
			return false
		}
	}
	return true
}

func (e entry) compact() (json.RawMessage, error) {
	var buf bytes.Buffer
	if e.raw != nil {
		if err := json.Compact(&buf, e.raw); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e.def); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
