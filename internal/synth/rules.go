package synth

import "strings"

// Template names referenced by the rule table.
const (
	TemplateMacro   = "macro"
	TemplateConcept = "concept"
	TemplateETF     = "etf"
	// TemplateFallback is the generic tradable-instrument template.
	TemplateFallback = "stock"
)

// Rule pairs a predicate over an identifier with the template to apply
// when it matches.
type Rule struct {
	Name     string
	Template string
	Match    func(identifier, category string) bool
}

// macroKeywords mark macro-economic series.
var macroKeywords = []string{"cpi", "ppi", "gdp", "pmi"}

// macroSeries are macro-economic identifiers without a telltale keyword.
var macroSeries = map[string]struct{}{
	"cn_m":     {},
	"sf_month": {},
}

// DefaultRules is the rule table in evaluation order.
var DefaultRules = []Rule{
	{
		Name:     "macro keyword",
		Template: TemplateMacro,
		Match: func(id, _ string) bool {
			if _, ok := macroSeries[id]; ok {
				return true
			}
			for _, kw := range macroKeywords {
				if strings.Contains(id, kw) {
					return true
				}
			}
			return false
		},
	},
	{
		Name:     "concept grouping",
		Template: TemplateConcept,
		Match: func(id, _ string) bool {
			return strings.Contains(id, "concept")
		},
	},
	{
		Name:     "etf instrument",
		Template: TemplateETF,
		Match: func(id, _ string) bool {
			return strings.HasPrefix(id, "etf_")
		},
	},
}
