package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/regbuild/internal/model"
)

// Definitions writes a one-line-per-record listing.
func Definitions(w io.Writer, defs []model.Definition, format string) error {
	switch format {
	case FormatJSON:
		if defs == nil {
			defs = []model.Definition{}
		}
		return writeJSON(w, defs)
	case FormatText, "":
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}

	if len(defs) == 0 {
		_, err := io.WriteString(w, "No matching definitions.\n")
		return err
	}
	t := newTable().Headers("name", "category", "docId", "description")
	for _, d := range defs {
		t.Row(d.Name, d.Category, strconv.Itoa(d.DocID), d.Description)
	}
	_, err := fmt.Fprintf(w, "%s\n%d definition(s).\n", t.String(), len(defs))
	return err
}

// Definition writes the full detail of one record.
func Definition(w io.Writer, def model.Definition, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, def)
	case FormatText, "":
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}

	points := "unspecified"
	if def.RequiresPoints != nil {
		points = strconv.Itoa(*def.RequiresPoints)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(def.Name) + "\n")
	fmt.Fprintf(&b, "description: %s\n", def.Description)
	fmt.Fprintf(&b, "category:    %s\n", def.Category)
	fmt.Fprintf(&b, "docId:       %d\n", def.DocID)
	fmt.Fprintf(&b, "points:      %s\n", points)

	params := newTable().Headers("parameter", "type", "required", "description")
	for _, p := range def.Parameters {
		params.Row(p.Name, p.Type, yesNo(p.Required), p.Description)
	}
	fields := newTable().Headers("output field", "type", "shown", "description")
	for _, f := range def.OutputFields {
		fields.Row(f.Name, f.Type, yesNo(f.DefaultShow), f.Description)
	}
	b.WriteString(params.String() + "\n")
	b.WriteString(fields.String() + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
