package model

// Parameter describes one input argument of an API.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// OutputField describes one column returned by an API.
type OutputField struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DefaultShow bool   `json:"defaultShow"`
	Description string `json:"description"`
}

// Definition is the metadata record stored under one identifier in the
// registry document.
type Definition struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	DocID        int           `json:"docId"`
	Parameters   []Parameter   `json:"parameters"`
	OutputFields []OutputField `json:"outputFields"`
	// RequiresPoints is nil when the access cost is unspecified, which is
	// not the same as zero.
	RequiresPoints *int `json:"requiresPoints"`
}

// Clone returns a deep copy of d.
func (d Definition) Clone() Definition {
	out := d
	out.Parameters = CloneParameters(d.Parameters)
	out.OutputFields = CloneOutputFields(d.OutputFields)
	if d.RequiresPoints != nil {
		p := *d.RequiresPoints
		out.RequiresPoints = &p
	}
	return out
}

// HasParameter reports whether a parameter named name is declared.
func (d Definition) HasParameter(name string) bool {
	for _, p := range d.Parameters {
		if p.Name == name {
			return true
		}
	}
	return false
}

// HasOutputField reports whether an output field named name is declared.
func (d Definition) HasOutputField(name string) bool {
	for _, f := range d.OutputFields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// CloneParameters copies a parameter list. A nil input yields an empty,
// non-nil slice so the JSON encoding is always an array.
func CloneParameters(in []Parameter) []Parameter {
	out := make([]Parameter, len(in))
	copy(out, in)
	return out
}

// CloneOutputFields copies an output field list. A nil input yields an
// empty, non-nil slice.
func CloneOutputFields(in []OutputField) []OutputField {
	out := make([]OutputField, len(in))
	copy(out, in)
	return out
}
