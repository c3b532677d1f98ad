package forms

import (
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/formsync/internal/models"
)

// checkboxSeparator разделяет отмеченные варианты в одной ячейке
const checkboxSeparator = ", "

// SubmissionMeta системные данные ответа, попадают в префиксные колонки
type SubmissionMeta struct {
	SubmittedAt time.Time
	IP          string
	UserAgent   string
}

// Cells orders values by fields, one cell per field. Missing values are
// empty cells. Unknown keys and values that do not fit the field type are
// rejected; checkbox values are normalized to the option order.
func Cells(fields models.FieldList, values map[string]string) ([]string, error) {
	var unknown []string
	for key := range values {
		if fields.Index(key) < 0 {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
	}

	cells := make([]string, len(fields))
	for i, field := range fields {
		value := strings.TrimSpace(values[field.Key])
		if value == "" {
			continue
		}

		cell, err := normalize(field, value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidValue, field.Key, err)
		}
		cells[i] = cell
	}
	return cells, nil
}

func normalize(field models.FieldSnapshot, value string) (string, error) {
	switch spec := field.Spec.(type) {
	case models.ChoiceSpec:
		if spec.Type != models.FieldTypeCheckboxes {
			if !slices.Contains(spec.Options, value) {
				return "", fmt.Errorf("%q is not one of the options", value)
			}
			return value, nil
		}

		picked := make(map[string]bool)
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !slices.Contains(spec.Options, part) {
				return "", fmt.Errorf("%q is not one of the options", part)
			}
			picked[part] = true
		}

		out := make([]string, 0, len(picked))
		for _, opt := range spec.Options {
			if picked[opt] {
				out = append(out, opt)
			}
		}
		return strings.Join(out, checkboxSeparator), nil

	case models.NumericSpec:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", fmt.Errorf("%q is not a number", value)
		}
		if spec.Min != nil && n < *spec.Min {
			return "", fmt.Errorf("%v is below %v", n, *spec.Min)
		}
		if spec.Max != nil && n > *spec.Max {
			return "", fmt.Errorf("%v is above %v", n, *spec.Max)
		}
		return value, nil

	default:
		return value, nil
	}
}
