package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vk/regbuild/internal/merge"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options control how a build summary is rendered.
type Options struct {
	Format string
	// Outputs lists the files the merged document was written to. Empty
	// for a dry run.
	Outputs []string
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// Build writes the summary of a merge.
func Build(w io.Writer, s *merge.Stats, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, buildJSON(s, opts))
	case FormatText, "":
		return buildText(w, s, opts)
	default:
		return fmt.Errorf("unsupported report format %q", opts.Format)
	}
}

func buildText(w io.Writer, s *merge.Stats, opts Options) error {
	totals := newTable().
		Row("total", strconv.Itoa(s.Total)).
		Row("from existing", strconv.Itoa(s.FromExisting)).
		Row("newly created", strconv.Itoa(s.Created)).
		Row("retained (not indexed)", strconv.Itoa(s.Retained)).
		Row("dropped (invalid key)", strconv.Itoa(s.Dropped)).
		Row("repeats skipped", strconv.Itoa(s.Duplicates))

	categories := newTable().Headers("category", "listed", "existing", "created")
	for _, c := range s.Categories {
		categories.Row(c.Name, strconv.Itoa(c.Listed), strconv.Itoa(c.FromExisting), strconv.Itoa(c.Created))
	}

	out := titleStyle.Render("Registry build summary") + "\n" +
		totals.String() + "\n" +
		titleStyle.Render("By category") + "\n" +
		categories.String() + "\n"
	if len(opts.Outputs) == 0 {
		out += "Dry run: nothing written.\n"
	}
	for _, p := range opts.Outputs {
		out += "Written: " + p + "\n"
	}

	_, err := io.WriteString(w, out)
	return err
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return cellStyle })
}

type categoryJSON struct {
	Name         string `json:"name"`
	Listed       int    `json:"listed"`
	FromExisting int    `json:"fromExisting"`
	Created      int    `json:"created"`
}

type summaryJSON struct {
	Total        int            `json:"total"`
	FromExisting int            `json:"fromExisting"`
	Created      int            `json:"created"`
	Retained     int            `json:"retained"`
	Dropped      int            `json:"dropped"`
	Duplicates   int            `json:"duplicates"`
	Categories   []categoryJSON `json:"categories"`
	Outputs      []string       `json:"outputs"`
}

func buildJSON(s *merge.Stats, opts Options) summaryJSON {
	out := summaryJSON{
		Total:        s.Total,
		FromExisting: s.FromExisting,
		Created:      s.Created,
		Retained:     s.Retained,
		Dropped:      s.Dropped,
		Duplicates:   s.Duplicates,
		Categories:   make([]categoryJSON, 0, len(s.Categories)),
		Outputs:      append([]string{}, opts.Outputs...),
	}
	for _, c := range s.Categories {
		out.Categories = append(out.Categories, categoryJSON(c))
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
