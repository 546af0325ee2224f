// This file contains the logic for translating HCL schema structs into the
// format-agnostic model package.

package hcl

import (
	"context"
	"fmt"

	"github.com/vk/regbuild/internal/model"
	"github.com/vk/regbuild/internal/schema"
)

func translateCategory(c *schema.Category) ([]string, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("category name must not be empty")
	}
	ids, err := decodeStringList(c.Identifiers)
	if err != nil {
		return nil, fmt.Errorf("category %q, identifiers: %w", c.Name, err)
	}
	for i, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("category %q, identifiers[%d]: identifier must not be empty", c.Name, i)
		}
	}
	return ids, nil
}

func translateTemplate(ctx context.Context, t *schema.Template) (*model.Template, error) {
	params, err := translateParameters(ctx, "template", t.Name, t.Parameters)
	if err != nil {
		return nil, err
	}
	fields, err := translateOutputFields(ctx, "template", t.Name, t.OutputFields)
	if err != nil {
		return nil, err
	}
	return &model.Template{Name: t.Name, Parameters: params, OutputFields: fields}, nil
}

func translateExtension(ctx context.Context, e *schema.Extension) (*model.Extension, error) {
	params, err := translateParameters(ctx, "extension", e.Identifier, e.Parameters)
	if err != nil {
		return nil, err
	}
	fields, err := translateOutputFields(ctx, "extension", e.Identifier, e.OutputFields)
	if err != nil {
		return nil, err
	}
	return &model.Extension{Identifier: e.Identifier, Parameters: params, OutputFields: fields}, nil
}

func translateParameters(ctx context.Context, ownerKind, ownerName string, in []*schema.Parameter) ([]model.Parameter, error) {
	out := make([]model.Parameter, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("in %s '%s': parameter %q declared more than once", ownerKind, ownerName, p.Name)
		}
		seen[p.Name] = struct{}{}

		typ, err := typeExprToName(ctx, p.Type)
		if err != nil {
			return nil, fmt.Errorf("in %s '%s', parameter '%s': %w", ownerKind, ownerName, p.Name, err)
		}
		out = append(out, model.Parameter{
			Name:        p.Name,
			Type:        typ,
			Required:    p.Required,
			Description: p.Description,
		})
	}
	return out, nil
}

func translateOutputFields(ctx context.Context, ownerKind, ownerName string, in []*schema.OutputField) ([]model.OutputField, error) {
	out := make([]model.OutputField, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, f := range in {
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("in %s '%s': output field %q declared more than once", ownerKind, ownerName, f.Name)
		}
		seen[f.Name] = struct{}{}

		typ, err := typeExprToName(ctx, f.Type)
		if err != nil {
			return nil, fmt.Errorf("in %s '%s', output field '%s': %w", ownerKind, ownerName, f.Name, err)
		}
		out = append(out, model.OutputField{
			Name:        f.Name,
			Type:        typ,
			DefaultShow: f.DefaultShow,
			Description: f.Description,
		})
	}
	return out, nil
}
