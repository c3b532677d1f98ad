package models

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/iudanet/formsync/internal/validation"
)

// FieldType тип поля формы
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeTextarea   FieldType = "textarea"
	FieldTypeEmail      FieldType = "email"
	FieldTypePhone      FieldType = "phone"
	FieldTypeURL        FieldType = "url"
	FieldTypeDate       FieldType = "date"
	FieldTypeTime       FieldType = "time"
	FieldTypeNumber     FieldType = "number"
	FieldTypeRating     FieldType = "rating"
	FieldTypeSelect     FieldType = "select"
	FieldTypeRadio      FieldType = "radio"
	FieldTypeCheckboxes FieldType = "checkboxes"
)

// IsChoice сообщает, несет ли тип список вариантов ответа
func (t FieldType) IsChoice() bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckboxes:
		return true
	}
	return false
}

// IsNumeric сообщает, несет ли тип числовые границы
func (t FieldType) IsNumeric() bool {
	return t == FieldTypeNumber || t == FieldTypeRating
}

// IsPlain сообщает, что тип не имеет дополнительных атрибутов
func (t FieldType) IsPlain() bool {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone,
		FieldTypeURL, FieldTypeDate, FieldTypeTime:
		return true
	}
	return false
}

// Valid reports whether t is one of the known field types.
func (t FieldType) Valid() bool {
	return t.IsPlain() || t.IsChoice() || t.IsNumeric()
}

// FieldSpec is the closed set of per-type attribute shapes.
// Only PlainSpec, ChoiceSpec and NumericSpec implement it.
type FieldSpec interface {
	Kind() FieldType
	isFieldSpec()
}

// PlainSpec описывает поля без атрибутов (текст, дата, email ...)
type PlainSpec struct {
	Type FieldType
}

func (s PlainSpec) Kind() FieldType { return s.Type }
func (PlainSpec) isFieldSpec()      {}

// ChoiceSpec описывает поля с вариантами ответа. Порядок вариантов значим.
type ChoiceSpec struct {
	Type    FieldType
	Options []string
}

func (s ChoiceSpec) Kind() FieldType { return s.Type }
func (ChoiceSpec) isFieldSpec()      {}

// NumericSpec описывает числовые поля с необязательными границами
type NumericSpec struct {
	Min  *float64
	Max  *float64
	Type FieldType
}

func (s NumericSpec) Kind() FieldType { return s.Type }
func (NumericSpec) isFieldSpec()      {}

// FieldSnapshot is one field definition as it was saved with the form.
// Key is the diff identity and never changes once the field is created.
// Values are built through the New* constructors or UnmarshalJSON, which
// validate the type/attribute combination.
type FieldSnapshot struct {
	Spec  FieldSpec
	Key   string
	Label string
}

// NewTextField создает поле без атрибутов
func NewTextField(key, label string, fieldType FieldType) (FieldSnapshot, error) {
	return NewField(key, label, fieldType, nil, nil, nil)
}

// NewChoiceField создает поле с вариантами ответа
func NewChoiceField(key, label string, fieldType FieldType, options []string) (FieldSnapshot, error) {
	return NewField(key, label, fieldType, options, nil, nil)
}

// NewNumericField создает числовое поле
func NewNumericField(key, label string, fieldType FieldType, minValue, maxValue *float64) (FieldSnapshot, error) {
	return NewField(key, label, fieldType, nil, minValue, maxValue)
}

// NewField validates the attribute combination for fieldType and builds the snapshot.
func NewField(key, label string, fieldType FieldType, options []string, minValue, maxValue *float64) (FieldSnapshot, error) {
	if err := validation.ValidateFieldKey(key); err != nil {
		return FieldSnapshot{}, fmt.Errorf("field %q: %w", key, err)
	}

	var spec FieldSpec

	switch {
	case fieldType.IsPlain():
		if len(options) > 0 {
			return FieldSnapshot{}, fmt.Errorf("field %q: type %s does not accept options", key, fieldType)
		}
		if minValue != nil || maxValue != nil {
			return FieldSnapshot{}, fmt.Errorf("field %q: type %s does not accept bounds", key, fieldType)
		}
		spec = PlainSpec{Type: fieldType}

	case fieldType.IsChoice():
		if minValue != nil || maxValue != nil {
			return FieldSnapshot{}, fmt.Errorf("field %q: type %s does not accept bounds", key, fieldType)
		}
		if err := validation.ValidateOptions(options); err != nil {
			return FieldSnapshot{}, fmt.Errorf("field %q: %w", key, err)
		}
		spec = ChoiceSpec{Type: fieldType, Options: slices.Clone(options)}

	case fieldType.IsNumeric():
		if len(options) > 0 {
			return FieldSnapshot{}, fmt.Errorf("field %q: type %s does not accept options", key, fieldType)
		}
		// Для рейтинга границы по умолчанию 1..5
		if fieldType == FieldTypeRating && minValue == nil && maxValue == nil {
			lo, hi := 1.0, 5.0
			minValue, maxValue = &lo, &hi
		}
		if minValue != nil && maxValue != nil && *minValue > *maxValue {
			return FieldSnapshot{}, fmt.Errorf("field %q: min %v is greater than max %v", key, *minValue, *maxValue)
		}
		spec = NumericSpec{Type: fieldType, Min: copyFloat(minValue), Max: copyFloat(maxValue)}

	default:
		return FieldSnapshot{}, fmt.Errorf("field %q: unknown field type %q", key, fieldType)
	}

	return FieldSnapshot{Key: key, Label: label, Spec: spec}, nil
}

// Type returns the field type, or "" for a zero snapshot.
func (f FieldSnapshot) Type() FieldType {
	if f.Spec == nil {
		return ""
	}
	return f.Spec.Kind()
}

// Options returns a copy of the choice options, nil for non-choice fields.
func (f FieldSnapshot) Options() []string {
	if s, ok := f.Spec.(ChoiceSpec); ok {
		return slices.Clone(s.Options)
	}
	return nil
}

// Clone возвращает глубокую копию снимка поля
func (f FieldSnapshot) Clone() FieldSnapshot {
	out := FieldSnapshot{Key: f.Key, Label: f.Label}
	switch s := f.Spec.(type) {
	case ChoiceSpec:
		out.Spec = ChoiceSpec{Type: s.Type, Options: slices.Clone(s.Options)}
	case NumericSpec:
		out.Spec = NumericSpec{Type: s.Type, Min: copyFloat(s.Min), Max: copyFloat(s.Max)}
	default:
		out.Spec = f.Spec
	}
	return out
}

// fieldJSON плоское представление поля для хранения и передачи
type fieldJSON struct {
	Min     *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Key     string    `json:"key" yaml:"key"`
	Label   string    `json:"label" yaml:"label"`
	Type    FieldType `json:"type" yaml:"type"`
	Options []string  `json:"options,omitempty" yaml:"options,omitempty"`
}

func (f FieldSnapshot) toJSON() fieldJSON {
	out := fieldJSON{Key: f.Key, Label: f.Label, Type: f.Type()}
	switch s := f.Spec.(type) {
	case ChoiceSpec:
		out.Options = s.Options
	case NumericSpec:
		out.Min, out.Max = s.Min, s.Max
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (f FieldSnapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.toJSON())
}

// UnmarshalJSON implements json.Unmarshaler and validates like NewField.
func (f *FieldSnapshot) UnmarshalJSON(data []byte) error {
	var raw fieldJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	field, err := NewField(raw.Key, raw.Label, raw.Type, raw.Options, raw.Min, raw.Max)
	if err != nil {
		return err
	}
	*f = field
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f FieldSnapshot) MarshalYAML() (interface{}, error) {
	return f.toJSON(), nil
}

// UnmarshalYAML decodes through the same validation as UnmarshalJSON.
func (f *FieldSnapshot) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw fieldJSON
	if err := unmarshal(&raw); err != nil {
		return err
	}
	field, err := NewField(raw.Key, raw.Label, raw.Type, raw.Options, raw.Min, raw.Max)
	if err != nil {
		return err
	}
	*f = field
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
