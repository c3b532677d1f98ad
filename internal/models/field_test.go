package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ptr(v float64) *float64 { return &v }

func TestNewField_Variants(t *testing.T) {
	text, err := NewTextField("name", "Name", FieldTypeText)
	require.NoError(t, err)
	assert.Equal(t, FieldTypeText, text.Type())
	assert.IsType(t, PlainSpec{}, text.Spec)
	assert.Nil(t, text.Options())

	choice, err := NewChoiceField("color", "Color", FieldTypeSelect, []string{"Red", "Green"})
	require.NoError(t, err)
	assert.IsType(t, ChoiceSpec{}, choice.Spec)
	assert.Equal(t, []string{"Red", "Green"}, choice.Options())

	num, err := NewNumericField("age", "Age", FieldTypeNumber, ptr(0), ptr(120))
	require.NoError(t, err)
	spec, ok := num.Spec.(NumericSpec)
	require.True(t, ok)
	assert.Equal(t, 0.0, *spec.Min)
	assert.Equal(t, 120.0, *spec.Max)
}

func TestNewField_RatingDefaults(t *testing.T) {
	f, err := NewNumericField("score", "Score", FieldTypeRating, nil, nil)
	require.NoError(t, err)

	spec := f.Spec.(NumericSpec)
	assert.Equal(t, 1.0, *spec.Min)
	assert.Equal(t, 5.0, *spec.Max)
}

func TestNewField_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		fieldType FieldType
		options   []string
		minValue  *float64
		maxValue  *float64
	}{
		{name: "bad key", key: "1x", fieldType: FieldTypeText},
		{name: "unknown type", key: "a", fieldType: "signature"},
		{name: "options on text", key: "a", fieldType: FieldTypeText, options: []string{"x"}},
		{name: "bounds on email", key: "a", fieldType: FieldTypeEmail, minValue: ptr(1)},
		{name: "choice without options", key: "a", fieldType: FieldTypeRadio},
		{name: "choice with bounds", key: "a", fieldType: FieldTypeRadio, options: []string{"x"}, maxValue: ptr(2)},
		{name: "numeric with options", key: "a", fieldType: FieldTypeNumber, options: []string{"x"}},
		{name: "min over max", key: "a", fieldType: FieldTypeNumber, minValue: ptr(5), maxValue: ptr(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewField(tt.key, "L", tt.fieldType, tt.options, tt.minValue, tt.maxValue)
			assert.Error(t, err)
		})
	}
}

func TestFieldSnapshot_OptionsAreCopied(t *testing.T) {
	opts := []string{"A", "B"}
	f, err := NewChoiceField("c", "C", FieldTypeCheckboxes, opts)
	require.NoError(t, err)

	opts[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, f.Options())

	got := f.Options()
	got[1] = "mutated"
	assert.Equal(t, []string{"A", "B"}, f.Options())
}

func TestFieldSnapshot_JSON(t *testing.T) {
	f, err := NewChoiceField("plan", "Plan", FieldTypeRadio, []string{"Free", "Pro"})
	require.NoError(t, err)

	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"plan","label":"Plan","type":"radio","options":["Free","Pro"]}`, string(data))

	var decoded FieldSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, f, decoded)
}

func TestFieldSnapshot_UnmarshalValidates(t *testing.T) {
	var f FieldSnapshot
	err := json.Unmarshal([]byte(`{"key":"plan","label":"Plan","type":"radio"}`), &f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one option")
}

func TestFieldList_YAML(t *testing.T) {
	src := `
- key: name
  label: Name
  type: text
- key: size
  label: Size
  type: select
  options: [S, M, L]
- key: qty
  label: Quantity
  type: number
  min: 1
`
	var list FieldList
	require.NoError(t, yaml.Unmarshal([]byte(src), &list))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"name", "size", "qty"}, list.Keys())
	assert.Equal(t, []string{"S", "M", "L"}, list[1].Options())
	assert.Equal(t, 1.0, *list[2].Spec.(NumericSpec).Min)
}

func TestFieldList_Validate(t *testing.T) {
	a, _ := NewTextField("a", "A", FieldTypeText)
	b, _ := NewTextField("b", "B", FieldTypeText)

	assert.NoError(t, FieldList{a, b}.Validate())

	err := FieldList{a, b, a}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateFieldKey))

	err = FieldList{{Key: "raw"}}.Validate()
	assert.Error(t, err)
}

func TestFieldList_Clone(t *testing.T) {
	c, _ := NewChoiceField("c", "C", FieldTypeSelect, []string{"x", "y"})
	list := FieldList{c}

	clone := list.Clone()
	clone[0].Label = "changed"
	clone[0].Spec.(ChoiceSpec).Options[0] = "z"

	assert.Equal(t, "C", list[0].Label)
	assert.Equal(t, []string{"x", "y"}, list[0].Options())
	assert.Nil(t, FieldList(nil).Clone())
}

func TestFieldList_Accessors(t *testing.T) {
	a, _ := NewTextField("a", "A", FieldTypeText)
	b, _ := NewTextField("b", "B", FieldTypeDate)
	list := FieldList{a, b}

	assert.Equal(t, []string{"a", "b"}, list.Keys())
	assert.Equal(t, []string{"A", "B"}, list.Labels())
	assert.Equal(t, 1, list.Index("b"))
	assert.Equal(t, -1, list.Index("zzz"))
}
