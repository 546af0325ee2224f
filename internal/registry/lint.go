package registry

import "fmt"

// Finding is a non-fatal problem spotted in a document.
type Finding struct {
	Key     string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Key, f.Message)
}

// Lint inspects every record and reports what a downstream client would
// trip over: records with neither parameters nor output fields (the client
// drops them) and names declared twice within one record.
func Lint(doc *Document) []Finding {
	var findings []Finding
	for _, key := range doc.keys {
		def, err := doc.Get(key)
		if err != nil {
			findings = append(findings, Finding{Key: key, Message: err.Error()})
			continue
		}

		if len(def.Parameters) == 0 && len(def.OutputFields) == 0 {
			findings = append(findings, Finding{Key: key, Message: "no parameters and no output fields"})
		}

		seen := make(map[string]struct{}, len(def.Parameters))
		for _, p := range def.Parameters {
			if _, dup := seen[p.Name]; dup {
				findings = append(findings, Finding{Key: key, Message: fmt.Sprintf("parameter %q declared more than once", p.Name)})
			}
			seen[p.Name] = struct{}{}
		}
		seen = make(map[string]struct{}, len(def.OutputFields))
		for _, f := range def.OutputFields {
			if _, dup := seen[f.Name]; dup {
				findings = append(findings, Finding{Key: key, Message: fmt.Sprintf("output field %q declared more than once", f.Name)})
			}
			seen[f.Name] = struct{}{}
		}
	}
	return findings
}
