package synth

import (
	"errors"
	"fmt"

	"github.com/vk/regbuild/internal/model"
)

// ErrUnknownTemplate is returned when a rule or the fallback refers to a
// template that is not in the set.
var ErrUnknownTemplate = errors.New("unknown template")

// Synthesizer builds placeholder definitions from a template set.
type Synthesizer struct {
	rules      []Rule
	templates  map[string]*model.Template
	extensions map[string]*model.Extension
}

// New creates a Synthesizer using DefaultRules.
func New(set *model.TemplateSet) (*Synthesizer, error) {
	return NewWithRules(set, DefaultRules)
}

// NewWithRules creates a Synthesizer with a custom rule table. Every rule
// template and the fallback must exist in set.
func NewWithRules(set *model.TemplateSet, rules []Rule) (*Synthesizer, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: template set is nil", ErrUnknownTemplate)
	}
	if _, ok := set.Templates[TemplateFallback]; !ok {
		return nil, fmt.Errorf("%w: fallback template %q is missing", ErrUnknownTemplate, TemplateFallback)
	}
	for _, r := range rules {
		if _, ok := set.Templates[r.Template]; !ok {
			return nil, fmt.Errorf("%w: rule %q refers to template %q", ErrUnknownTemplate, r.Name, r.Template)
		}
	}

	s := &Synthesizer{
		rules:      make([]Rule, len(rules)),
		templates:  make(map[string]*model.Template, len(set.Templates)),
		extensions: make(map[string]*model.Extension, len(set.Extensions)),
	}
	copy(s.rules, rules)
	for k, v := range set.Templates {
		s.templates[k] = v
	}
	for k, v := range set.Extensions {
		s.extensions[k] = v
	}
	return s, nil
}

// Rules returns the rule table in evaluation order.
func (s *Synthesizer) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Select returns the name of the template the identifier gets.
func (s *Synthesizer) Select(identifier, category string) string {
	for _, r := range s.rules {
		if r.Match(identifier, category) {
			return r.Template
		}
	}
	return TemplateFallback
}

// Synthesize builds the placeholder record for identifier.
func (s *Synthesizer) Synthesize(identifier, category string) model.Definition {
	tpl := s.templates[s.Select(identifier, category)]

	def := model.Definition{
		Name:         identifier,
		Description:  Placeholder(identifier),
		Category:     category,
		DocID:        0,
		Parameters:   model.CloneParameters(tpl.Parameters),
		OutputFields: model.CloneOutputFields(tpl.OutputFields),
	}

	if ext, ok := s.extensions[identifier]; ok {
		for _, p := range ext.Parameters {
			if !def.HasParameter(p.Name) {
				def.Parameters = append(def.Parameters, p)
			}
		}
		for _, f := range ext.OutputFields {
			if !def.HasOutputField(f.Name) {
				def.OutputFields = append(def.OutputFields, f)
			}
		}
	}
	return def
}

// Placeholder is the generic description given to synthesized records.
func Placeholder(identifier string) string {
	return identifier + " 接口"
}
