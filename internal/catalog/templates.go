package catalog

import _ "embed"

// TemplatesFile is the name reported in diagnostics for the embedded
// template source.
const TemplatesFile = "templates.hcl"

//go:embed templates.hcl
var templatesHCL []byte

// Templates returns the embedded default template source.
func Templates() []byte {
	out := make([]byte, len(templatesHCL))
	copy(out, templatesHCL)
	return out
}
