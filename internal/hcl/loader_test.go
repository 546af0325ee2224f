package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/regbuild/internal/catalog"
	"github.com/vk/regbuild/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIndex_PreservesOrderAcrossFiles(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, dir, "b.hcl", `
category "其他" {
  identifiers = ["news", "cpi"]
}
category "宏观经济" {
  identifiers = ["shibor"]
}
`)
	writeFile(t, dir, "a.hcl", `
category "宏观经济" {
  identifiers = ["cn_gdp", "cpi"]
}
`)
	writeFile(t, dir, "notes.txt", "ignored")

	// --- Act ---
	index, err := NewLoader().LoadIndex(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	want := &model.Index{Categories: []model.Category{
		{Name: "宏观经济", Identifiers: []string{"cn_gdp", "cpi", "shibor"}},
		{Name: "其他", Identifiers: []string{"news", "cpi"}},
	}}
	if diff := cmp.Diff(want, index); diff != "" {
		t.Errorf("index mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadIndex_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "syntax error", src: `category "x" {`, wantErr: "failed to parse HCL file"},
		{name: "missing identifiers", src: `category "x" {}`, wantErr: "failed to decode HCL file"},
		{name: "unknown block", src: `thing "x" {}`, wantErr: "failed to decode HCL file"},
		{name: "not a list", src: `category "x" { identifiers = { a = 1 } }`, wantErr: "cannot convert"},
		{name: "empty identifier", src: `category "x" { identifiers = ["a", ""] }`, wantErr: "identifiers[1]: identifier must not be empty"},
		{name: "null element", src: `category "x" { identifiers = ["a", null] }`, wantErr: "must not be null"},
		{name: "empty name", src: `category "" { identifiers = ["a"] }`, wantErr: "category name must not be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "index.hcl", tc.src)
			_, err := NewLoader().LoadIndex(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Contains(t, err.Error(), path, "error must name the file")
		})
	}
}

func TestLoadIndex_PathErrors(t *testing.T) {
	_, err := NewLoader().LoadIndex(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing path")

	empty := t.TempDir()
	_, err = NewLoader().LoadIndex(context.Background(), empty)
	require.ErrorIs(t, err, ErrNoFiles)
}

func TestParseTemplates_EmbeddedDefaults(t *testing.T) {
	set, err := NewLoader().ParseTemplates(context.Background(), catalog.TemplatesFile, catalog.Templates())
	require.NoError(t, err)

	for _, name := range []string{"stock", "macro", "concept", "etf"} {
		tpl, ok := set.Templates[name]
		require.True(t, ok, "template %q missing", name)
		assert.NotEmpty(t, tpl.Parameters, name)
		assert.NotEmpty(t, tpl.OutputFields, name)
	}
	for _, id := range []string{"suspend", "top10_holders", "top10_floatholders"} {
		_, ok := set.Extensions[id]
		assert.True(t, ok, "extension %q missing", id)
	}

	stock := set.Templates["stock"]
	assert.Equal(t, model.Parameter{Name: "ts_code", Type: "str", Description: "股票代码"}, stock.Parameters[0])
	assert.Equal(t, model.OutputField{Name: "ts_code", Type: "str", DefaultShow: true, Description: "股票代码"}, stock.OutputFields[0])
	assert.Equal(t, "int", stock.Parameters[4].Type)
}

func TestParseTemplates_TypeForms(t *testing.T) {
	src := `
template "stock" {
  parameter "a" {
    type     = str
    required = true
  }
  parameter "b" {
    type = "date"
  }
  output_field "c" {
    type = bool
  }
}
`
	set, err := NewLoader().ParseTemplates(context.Background(), "inline.hcl", []byte(src))
	require.NoError(t, err)

	want := &model.Template{
		Name: "stock",
		Parameters: []model.Parameter{
			{Name: "a", Type: "str", Required: true},
			{Name: "b", Type: "date"},
		},
		OutputFields: []model.OutputField{{Name: "c", Type: "bool"}},
	}
	if diff := cmp.Diff(want, set.Templates["stock"]); diff != "" {
		t.Errorf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTemplates_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
		wantIs  error
	}{
		{
			name:    "unknown type",
			src:     `template "t" { parameter "p" { type = "string" } }`,
			wantErr: `parameter 'p'`,
			wantIs:  ErrInvalidType,
		},
		{
			name:    "missing type",
			src:     `template "t" { output_field "f" {} }`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "duplicate parameter",
			src:     `template "t" { parameter "p" { type = str } parameter "p" { type = int } }`,
			wantErr: `parameter "p" declared more than once`,
		},
		{
			name:    "duplicate output field in extension",
			src:     `extension "e" { output_field "f" { type = str } output_field "f" { type = str } }`,
			wantErr: `output field "f" declared more than once`,
		},
		{
			name:    "duplicate template",
			src:     `template "t" {} template "t" {}`,
			wantErr: `template "t" declared more than once`,
		},
		{
			name:    "duplicate extension",
			src:     `extension "e" {} extension "e" {}`,
			wantErr: `extension "e" declared more than once`,
		},
		{
			name:    "numeric type",
			src:     `template "t" { parameter "p" { type = 5 } }`,
			wantErr: `"5"`,
			wantIs:  ErrInvalidType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().ParseTemplates(context.Background(), "inline.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Contains(t, err.Error(), "inline.hcl")
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
		})
	}
}

func TestLoadTemplates_MergesFilesAndRejectsRedeclaration(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.hcl", `template "stock" { parameter "ts_code" { type = str } }`)
	writeFile(t, dir, "ext/suspend.hcl", `extension "suspend" { output_field "reason" { type = str } }`)

	set, err := NewLoader().LoadTemplates(context.Background(), dir)
	require.NoError(t, err)
	assert.Contains(t, set.Templates, "stock")
	assert.Contains(t, set.Extensions, "suspend")

	writeFile(t, dir, "zz.hcl", `template "stock" {}`)
	_, err = NewLoader().LoadTemplates(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `template "stock" declared more than once`)
}
