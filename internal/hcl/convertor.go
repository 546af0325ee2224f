package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeStringList evaluates expr without variables and converts the result
// to a Go string slice. Tuples of strings and lists of strings are accepted;
// numbers are converted to their string form as cty does.
func decodeStringList(expr hcl.Expression) ([]string, error) {
	if expr == nil {
		return nil, fmt.Errorf("value is required")
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, fmt.Errorf("value must not be null")
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value must be known")
	}

	listType := cty.List(cty.String)
	converted, err := convert.Convert(val, listType)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), listType.FriendlyName(), err)
	}

	out := []string{}
	if converted.LengthInt() == 0 {
		return out, nil
	}
	for it := converted.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("list elements must not be null")
		}
		var s string
		if err := gocty.FromCtyValue(elem, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
