package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/regbuild/internal/merge"
	"github.com/vk/regbuild/internal/model"
)

func sampleStats() *merge.Stats {
	return &merge.Stats{
		Total:        5,
		FromExisting: 3,
		Created:      2,
		Retained:     1,
		Dropped:      1,
		Duplicates:   1,
		Categories: []merge.CategoryStats{
			{Name: "股票数据", Listed: 3, FromExisting: 2, Created: 0},
			{Name: "宏观经济", Listed: 2, FromExisting: 0, Created: 2},
		},
	}
}

func TestBuild_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Build(&buf, sampleStats(), Options{Outputs: []string{"full.json", "client.json"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Registry build summary")
	assert.Contains(t, out, "newly created")
	assert.Contains(t, out, "股票数据")
	assert.Contains(t, out, "宏观经济")
	assert.Contains(t, out, "Written: full.json\nWritten: client.json\n")
	assert.NotContains(t, out, "Dry run")
}

func TestBuild_TextDryRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build(&buf, sampleStats(), Options{Format: FormatText}))
	assert.Contains(t, buf.String(), "Dry run: nothing written.")
}

func TestBuild_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build(&buf, sampleStats(), Options{Format: FormatJSON}))

	var got summaryJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	want := summaryJSON{
		Total: 5, FromExisting: 3, Created: 2, Retained: 1, Dropped: 1, Duplicates: 1,
		Categories: []categoryJSON{
			{Name: "股票数据", Listed: 3, FromExisting: 2},
			{Name: "宏观经济", Listed: 2, Created: 2},
		},
		Outputs: []string{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, buf.String(), "股票数据", "non-ASCII must not be escaped")
}

func TestBuild_UnknownFormat(t *testing.T) {
	err := Build(&bytes.Buffer{}, sampleStats(), Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestDefinitions(t *testing.T) {
	defs := []model.Definition{
		{Name: "daily", Category: "股票数据", DocID: 27, Description: "日线行情"},
		{Name: "cpi", Category: "宏观经济", Description: "cpi 接口"},
	}

	var buf bytes.Buffer
	require.NoError(t, Definitions(&buf, defs, FormatText))
	assert.Contains(t, buf.String(), "daily")
	assert.Contains(t, buf.String(), "27")
	assert.Contains(t, buf.String(), "2 definition(s).")

	buf.Reset()
	require.NoError(t, Definitions(&buf, nil, FormatText))
	assert.Equal(t, "No matching definitions.\n", buf.String())

	buf.Reset()
	require.NoError(t, Definitions(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestDefinition(t *testing.T) {
	points := 120
	def := model.Definition{
		Name:           "daily",
		Description:    "日线行情",
		Category:       "股票数据",
		DocID:          27,
		Parameters:     []model.Parameter{{Name: "ts_code", Type: "str", Required: true, Description: "股票代码"}},
		OutputFields:   []model.OutputField{{Name: "close", Type: "float", Description: "收盘价"}},
		RequiresPoints: &points,
	}

	var buf bytes.Buffer
	require.NoError(t, Definition(&buf, def, FormatText))
	out := buf.String()
	assert.Contains(t, out, "description: 日线行情")
	assert.Contains(t, out, "points:      120")
	assert.Contains(t, out, "ts_code")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "close")

	buf.Reset()
	def.RequiresPoints = nil
	require.NoError(t, Definition(&buf, def, FormatText))
	assert.Contains(t, buf.String(), "points:      unspecified")

	buf.Reset()
	require.NoError(t, Definition(&buf, def, FormatJSON))
	var decoded model.Definition
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	if diff := cmp.Diff(def, decoded); diff != "" {
		t.Errorf("definition mismatch (-want +got):\n%s", diff)
	}
}
