package migration

import (
	"fmt"
)

// Kind вид миграции, необходимой для применения новой схемы
type Kind int

const (
	// KindNone: ничего делать не нужно
	KindNone Kind = iota
	// KindHeaderOnly: обновить только строку заголовка
	KindHeaderOnly
	// KindFull: перечитать, очистить и перезаписать строки данных
	KindFull
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindHeaderOnly:
		return "HEADER_ONLY"
	case KindFull:
		return "FULL"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "NONE":
		*k = KindNone
	case "HEADER_ONLY":
		*k = KindHeaderOnly
	case "FULL":
		*k = KindFull
	default:
		return fmt.Errorf("unknown migration kind %q", string(text))
	}
	return nil
}

// Decision is the migration verdict for one diff against the stored rows.
// Kind is FULL only for a structural change with existing rows; a pure
// reorder never yields FULL.
type Decision struct {
	Kind             Kind `json:"kind"`
	ExistingRowCount int  `json:"existing_row_count"`
	Required         bool `json:"required"`
}

// Decide applies the migration rules in priority order:
//  1. no stored rows → NONE;
//  2. added, removed or data-affecting change → FULL;
//  3. moves or label-only changes → HEADER_ONLY;
//  4. otherwise NONE.
func Decide(diff FieldDiff, existingRowCount int) Decision {
	kind := KindNone

	switch {
	case existingRowCount <= 0:
		kind = KindNone
	case diff.HasStructuralChange():
		kind = KindFull
	case len(diff.Moved) > 0 || len(diff.Changed) > 0:
		kind = KindHeaderOnly
	}

	return Decision{
		Required:         kind != KindNone,
		Kind:             kind,
		ExistingRowCount: existingRowCount,
	}
}
