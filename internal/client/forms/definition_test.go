package forms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/models"
)

const yamlForm = `id: signup
name: Signup
store: https://tables.example.com/d/abcdefghij12/edit#tab=Responses
fields:
  - key: name
    label: Name
    type: text
  - key: plan
    label: Plan
    type: select
    options: [free, pro]
  - key: seats
    label: Seats
    type: number
    min: 1
`

const jsonForm = `{
  "id": "signup",
  "name": "Signup",
  "fields": [
    {"key": "name", "label": "Name", "type": "text"},
    {"key": "plan", "label": "Plan", "type": "select", "options": ["free", "pro"]},
    {"key": "seats", "label": "Seats", "type": "number", "min": 1}
  ]
}`

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()

	for name, body := range map[string]string{"form.yaml": yamlForm, "form.json": jsonForm} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

			def, err := LoadDefinition(path)
			require.NoError(t, err)

			assert.Equal(t, "signup", def.ID)
			assert.Equal(t, []string{"name", "plan", "seats"}, def.Fields.Keys())
			assert.Equal(t, models.FieldTypeSelect, def.Fields[1].Type())
			assert.Equal(t, []string{"free", "pro"}, def.Fields[1].Options())

			spec, ok := def.Fields[2].Spec.(models.NumericSpec)
			require.True(t, ok)
			require.NotNil(t, spec.Min)
			assert.InDelta(t, 1.0, *spec.Min, 0)
			assert.Nil(t, spec.Max)
		})
	}
}

func TestParseDefinition_Errors(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		body string
	}{
		{name: "bad form id", ext: ".json", body: `{"id": "Sign Up", "fields": []}`},
		{name: "unknown field type", ext: ".yaml", body: "id: signup\nfields:\n  - {key: a, label: A, type: slider}\n"},
		{name: "duplicate keys", ext: ".yml", body: "id: signup\nfields:\n  - {key: a, label: A, type: text}\n  - {key: a, label: B, type: text}\n"},
		{name: "options on text", ext: ".json", body: `{"id": "signup", "fields": [{"key": "a", "label": "A", "type": "text", "options": ["x"]}]}`},
		{name: "unknown attribute", ext: ".json", body: `{"id": "signup", "color": "red", "fields": []}`},
		{name: "bad store", ext: ".yaml", body: "id: signup\nstore: nope\nfields: []\n"},
		{name: "not yaml", ext: ".yaml", body: "id: [signup\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(tt.body), tt.ext)
			require.Error(t, err)
		})
	}

	_, err := LoadDefinition(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
