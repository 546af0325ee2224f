package registry

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/regbuild/internal/model"
)

const sampleDocument = `{
  "daily": {
    "name": "daily",
    "description": "日线行情",
    "category": "股票数据",
    "docId": 27,
    "parameters": [{"name": "ts_code", "type": "str", "required": false, "description": "股票代码"}],
    "outputFields": [{"name": "close", "type": "float", "defaultShow": true, "description": "收盘价"}],
    "requiresPoints": 120,
    "extra": {"note": "<kept>"}
  },
  "股票数据": {"anything": "goes"},
  "cpi": {"name": "cpi", "description": "x", "category": "宏观经济", "docId": 0, "parameters": [], "outputFields": []}
}`

func TestDecode_KeepsKeyOrderAndRawRecords(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, []string{"daily", "股票数据", "cpi"}, doc.Keys())

	raw, err := doc.Raw("daily")
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"extra":{"note":"<kept>"}`, "unknown fields must survive")
	assert.Contains(t, string(raw), `"requiresPoints":120`)

	def, err := doc.Get("daily")
	require.NoError(t, err)
	require.NotNil(t, def.RequiresPoints)
	assert.Equal(t, 120, *def.RequiresPoints)
	assert.Equal(t, 27, def.DocID)
}

func TestDecode_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty input", input: "", wantErr: "document is empty"},
		{name: "top level array", input: `[]`, wantErr: "top level must be an object"},
		{name: "top level string", input: `"x"`, wantErr: "top level must be an object"},
		{name: "truncated", input: `{"a": {"name": "a"`, wantErr: "record \"a\""},
		{name: "duplicate key", input: `{"其他": {}, "其他": {}}`, wantErr: "duplicate key \"其他\""},
		{name: "record not an object", input: `{"daily": 5}`, wantErr: "record must be an object"},
		{name: "record null", input: `{"daily": null}`, wantErr: "record must be an object"},
		{
			name:    "missing outputFields",
			input:   `{"daily": {"name": "daily", "description": "", "category": "", "docId": 1, "parameters": []}}`,
			wantErr: `missing required field "outputFields"`,
		},
		{
			name:    "null parameters",
			input:   `{"daily": {"name": "daily", "description": "", "category": "", "docId": 1, "parameters": null, "outputFields": []}}`,
			wantErr: `missing required field "parameters"`,
		},
		{
			name:    "wrong field type",
			input:   `{"daily": {"name": "daily", "description": "", "category": "", "docId": "x", "parameters": [], "outputFields": []}}`,
			wantErr: `record "daily"`,
		},
		{name: "trailing data", input: `{} {}`, wantErr: "unexpected data after the top-level object"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDecode_InvalidKeysAreNotValidated(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"宏观经济": 42, "": "x"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"宏观经济", ""}, doc.Keys())
}

func TestLoadFile_MissingFileIsEmptyDocument(t *testing.T) {
	doc, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestLoadFile_ErrorNamesThePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), path)
}

func TestMarshal_EmptyDocument(t *testing.T) {
	b, err := Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(b))
}

func TestMarshal_FormatsSynthesizedRecords(t *testing.T) {
	doc := New()
	doc.Set("a&b", model.Definition{
		Name:         "a&b",
		Description:  "a&b 接口",
		Category:     "其他",
		Parameters:   []model.Parameter{{Name: "p", Type: "str"}},
		OutputFields: []model.OutputField{},
	})

	b, err := Marshal(doc)
	require.NoError(t, err)

	want := `{
  "a&b": {
    "name": "a&b",
    "description": "a&b 接口",
    "category": "其他",
    "docId": 0,
    "parameters": [
      {
        "name": "p",
        "type": "str",
        "required": false,
        "description": ""
      }
    ],
    "outputFields": [],
    "requiresPoints": null
  }
}
`
	assert.Equal(t, want, string(b))
}

func TestEncode_IsIdempotentThroughDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	var first bytes.Buffer
	require.NoError(t, Encode(&first, doc))

	again, err := Decode(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	var second bytes.Buffer
	require.NoError(t, Encode(&second, again))

	assert.Equal(t, first.String(), second.String())
	assert.True(t, doc.Equal(again))
	assert.Contains(t, first.String(), `"note": "<kept>"`, "HTML characters must not be escaped")
	assert.Contains(t, first.String(), `"description": "日线行情"`, "non-ASCII text must not be escaped")
}
