package models

import "fmt"

// FieldList упорядоченный список полей формы.
// Порядок определяет порядок колонок после системного префикса.
type FieldList []FieldSnapshot

// Keys returns the field keys in list order.
func (l FieldList) Keys() []string {
	keys := make([]string, len(l))
	for i, f := range l {
		keys[i] = f.Key
	}
	return keys
}

// Labels returns the field labels in list order.
func (l FieldList) Labels() []string {
	labels := make([]string, len(l))
	for i, f := range l {
		labels[i] = f.Label
	}
	return labels
}

// Clone создает глубокую копию списка
func (l FieldList) Clone() FieldList {
	if l == nil {
		return nil
	}
	out := make(FieldList, len(l))
	for i, f := range l {
		out[i] = f.Clone()
	}
	return out
}

// Validate checks that every field was built by a constructor and that keys are unique.
func (l FieldList) Validate() error {
	seen := make(map[string]int, len(l))
	for i, f := range l {
		if f.Spec == nil {
			return fmt.Errorf("field at position %d (%q) has no type", i, f.Key)
		}
		if prev, ok := seen[f.Key]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateFieldKey, f.Key, prev, i)
		}
		seen[f.Key] = i
	}
	return nil
}

// Index returns the position of key, or -1.
func (l FieldList) Index(key string) int {
	for i, f := range l {
		if f.Key == key {
			return i
		}
	}
	return -1
}
