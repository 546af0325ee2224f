// Package schema declares the HCL block layout of index files and template
// files. The structs carry gohcl tags only; translation into the model
// package happens in the hcl package.
package schema

import "github.com/hashicorp/hcl/v2"

// --- Index Files ---

// Category represents a `category` block listing the identifiers that
// belong to one category.
type Category struct {
	Name        string         `hcl:"name,label"`
	Identifiers hcl.Expression `hcl:"identifiers"`
}

// IndexFile represents the top-level structure of an index file.
type IndexFile struct {
	Categories []*Category `hcl:"category,block"`
}

// --- Template Files ---

// Parameter represents a `parameter` block inside a template or extension.
type Parameter struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	Required    bool           `hcl:"required,optional"`
	Description string         `hcl:"description,optional"`
}

// OutputField represents an `output_field` block inside a template or
// extension.
type OutputField struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type"`
	DefaultShow bool           `hcl:"default_show,optional"`
	Description string         `hcl:"description,optional"`
}

// Template represents a `template` block: a named skeleton of parameters
// and output fields.
type Template struct {
	Name         string         `hcl:"name,label"`
	Parameters   []*Parameter   `hcl:"parameter,block"`
	OutputFields []*OutputField `hcl:"output_field,block"`
}

// Extension represents an `extension` block: extra specs for exactly one
// identifier.
type Extension struct {
	Identifier   string         `hcl:"identifier,label"`
	Parameters   []*Parameter   `hcl:"parameter,block"`
	OutputFields []*OutputField `hcl:"output_field,block"`
}

// TemplatesFile represents the top-level structure of a template file.
type TemplatesFile struct {
	Templates  []*Template  `hcl:"template,block"`
	Extensions []*Extension `hcl:"extension,block"`
}
