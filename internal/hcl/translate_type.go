// This file contains the logic for reading the `type` attribute of parameter
// and output field blocks. Both `type = "str"` and the bare keyword form
// `type = str` are accepted.

package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/regbuild/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ErrInvalidType is returned for a type name outside KnownTypes.
var ErrInvalidType = errors.New("unknown field type")

// KnownTypes lists the type names a downstream client understands.
var KnownTypes = map[string]struct{}{
	"str":    {},
	"int":    {},
	"float":  {},
	"number": {},
	"bool":   {},
	"date":   {},
	"list":   {},
}

// typeExprToName resolves a type expression into one of KnownTypes.
func typeExprToName(ctx context.Context, expr hcl.Expression) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return "", fmt.Errorf("type is required")
	}

	name := hcl.ExprAsKeyword(expr)
	if name != "" {
		logger.Debug("Parsed type expression as a keyword.", "keyword", name)
	} else {
		val, diags := expr.Value(nil)
		if diags.HasErrors() {
			return "", diags
		}
		if val.IsNull() || !val.IsKnown() {
			return "", fmt.Errorf("type must be a known, non-null string")
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
		}
		name = str.AsString()
	}

	if _, ok := KnownTypes[name]; !ok {
		return "", fmt.Errorf("%w %q", ErrInvalidType, name)
	}
	return name, nil
}
