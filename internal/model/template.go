package model

// Template is a named parameter/output-field skeleton applied to records
// that have no enriched definition yet.
type Template struct {
	Name         string
	Parameters   []Parameter
	OutputFields []OutputField
}

// Extension holds the extra specs appended, after the template, to the
// synthesized record of a single identifier.
type Extension struct {
	Identifier   string
	Parameters   []Parameter
	OutputFields []OutputField
}

// TemplateSet is everything the synthesizer needs: templates keyed by name
// and extensions keyed by identifier.
type TemplateSet struct {
	Templates  map[string]*Template
	Extensions map[string]*Extension
}

// NewTemplateSet returns an empty, ready to use set.
func NewTemplateSet() *TemplateSet {
	return &TemplateSet{
		Templates:  make(map[string]*Template),
		Extensions: make(map[string]*Extension),
	}
}
