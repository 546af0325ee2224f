package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a config file whose extension is
// neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// File is the on-disk configuration. Every field is optional; command-line
// flags override whatever is set here. Relative paths are resolved against
// the directory containing the file.
type File struct {
	Existing     string `toml:"existing" yaml:"existing"`
	Output       string `toml:"output" yaml:"output"`
	FullOutput   string `toml:"full_output" yaml:"full_output"`
	Index        string `toml:"index" yaml:"index"`
	Templates    string `toml:"templates" yaml:"templates"`
	ReportFormat string `toml:"report_format" yaml:"report_format"`
	LogFormat    string `toml:"log_format" yaml:"log_format"`
	LogLevel     string `toml:"log_level" yaml:"log_level"`
}

// LoadFile reads a TOML (.toml) or YAML (.yaml, .yml) config file. Unknown
// keys are rejected.
func LoadFile(path string) (*File, error) {
	var f File

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("config file %s: unknown keys %v", path, undecoded)
		}
	case ".yaml", ".yml":
		r, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	base := filepath.Dir(path)
	for _, p := range []*string{&f.Existing, &f.Output, &f.FullOutput, &f.Index, &f.Templates} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
	return &f, nil
}
