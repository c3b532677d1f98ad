// Package columns is the single place where field positions become
// spreadsheet-style column letters.
package columns

import (
	"fmt"
	"strings"

	"github.com/iudanet/formsync/internal/models"
)

// SystemPrefixWidth количество системных колонок перед колонками полей
const SystemPrefixWidth = 4

// SystemHeaders заголовки системных колонок в порядке записи
var SystemHeaders = []string{"Timestamp", "Form", "IP", "User Agent"}

// Letter converts an absolute zero-based column index to bijective
// base-26 notation: 0 → "A", 25 → "Z", 26 → "AA", 701 → "ZZ".
func Letter(index int) string {
	if index < 0 {
		panic(fmt.Sprintf("columns: negative column index %d", index))
	}

	var buf [16]byte
	i := len(buf)
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		i--
		buf[i] = byte('A' + (n-1)%26)
	}
	return string(buf[i:])
}

// Index is the inverse of Letter. Lowercase letters are accepted.
func Index(letter string) (int, error) {
	if letter == "" {
		return 0, fmt.Errorf("empty column letter")
	}
	if len(letter) > 7 {
		return 0, fmt.Errorf("column letter %q is too long", letter)
	}

	n := 0
	for _, r := range strings.ToUpper(letter) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column letter %q", letter)
		}
		n = n*26 + int(r-'A') + 1
	}
	return n - 1, nil
}

// Mapper maps field-list positions to column letters after a fixed prefix.
type Mapper struct {
	Prefix int
}

// Default возвращает Mapper с системным префиксом
func Default() Mapper {
	return Mapper{Prefix: SystemPrefixWidth}
}

// ColumnLetter returns the column of the field at position (0 → first column after the prefix).
func (m Mapper) ColumnLetter(position int) string {
	return Letter(m.Prefix + position)
}

// Position is the inverse of ColumnLetter. Prefix columns are rejected.
func (m Mapper) Position(letter string) (int, error) {
	idx, err := Index(letter)
	if err != nil {
		return 0, err
	}
	if idx < m.Prefix {
		return 0, fmt.Errorf("column %s belongs to the system prefix", strings.ToUpper(letter))
	}
	return idx - m.Prefix, nil
}

// MapFields возвращает ключ поля → буква колонки для текущего порядка
func (m Mapper) MapFields(list models.FieldList) map[string]string {
	out := make(map[string]string, len(list))
	for i, f := range list {
		out[f.Key] = m.ColumnLetter(i)
	}
	return out
}

// Order recovers the field order from a mapping produced by MapFields.
func (m Mapper) Order(mapping map[string]string) ([]string, error) {
	keys := make([]string, len(mapping))
	filled := make([]bool, len(mapping))

	for key, letter := range mapping {
		pos, err := m.Position(letter)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		if pos >= len(keys) {
			return nil, fmt.Errorf("field %q: column %s is outside of %d mapped fields", key, letter, len(keys))
		}
		if filled[pos] {
			return nil, fmt.Errorf("field %q: column %s is mapped twice", key, letter)
		}
		keys[pos] = key
		filled[pos] = true
	}
	return keys, nil
}

// Width returns the total number of columns for list, prefix included.
func (m Mapper) Width(list models.FieldList) int {
	return m.Prefix + len(list)
}

// Header возвращает строку заголовка: системные колонки + подписи полей.
// Если префикс шире списка системных заголовков, недостающие остаются пустыми.
func (m Mapper) Header(list models.FieldList) []string {
	header := make([]string, 0, m.Width(list))
	for i := 0; i < m.Prefix; i++ {
		if i < len(SystemHeaders) {
			header = append(header, SystemHeaders[i])
		} else {
			header = append(header, "")
		}
	}
	return append(header, list.Labels()...)
}

// HeaderRange returns the A1 range covering the header row, e.g. "A1:F1".
func (m Mapper) HeaderRange(list models.FieldList) string {
	width := m.Width(list)
	if width == 0 {
		return ""
	}
	return "A1:" + Letter(width-1) + "1"
}

// PrefixMatches reports whether header starts with the expected system columns.
func (m Mapper) PrefixMatches(header []string) bool {
	if len(header) < m.Prefix {
		return false
	}
	expected := m.Header(nil)
	for i := 0; i < m.Prefix; i++ {
		if !strings.EqualFold(strings.TrimSpace(header[i]), expected[i]) {
			return false
		}
	}
	return true
}
