package migration

import (
	"fmt"
	"slices"

	"github.com/iudanet/formsync/internal/columns"
	"github.com/iudanet/formsync/internal/models"
)

// Move описывает перемещение поля на другую позицию
type Move struct {
	FieldKey   string `json:"field_key"`
	FromColumn string `json:"from_column,omitempty"` // заполняется Annotate
	ToColumn   string `json:"to_column,omitempty"`   // заполняется Annotate
	FromIndex  int    `json:"from_index"`
	ToIndex    int    `json:"to_index"`
}

// Change описывает изменение подписи, типа или вариантов поля
type Change struct {
	FieldKey    string           `json:"field_key"`
	FromLabel   string           `json:"from_label"`
	ToLabel     string           `json:"to_label"`
	FromType    models.FieldType `json:"from_type"`
	ToType      models.FieldType `json:"to_type"`
	AffectsData bool             `json:"affects_data"`
}

// FieldDiff is the structural difference between two field lists.
// A key appears in at most one of Added/Removed and at most once in each of
// Moved and Changed. Added, Moved and Changed follow the order of the next
// list; Removed follows the order of the previous list.
type FieldDiff struct {
	Added   []models.FieldSnapshot `json:"added"`
	Removed []models.FieldSnapshot `json:"removed"`
	Moved   []Move                 `json:"moved"`
	Changed []Change               `json:"changed"`
}

// IsEmpty reports whether the lists were identical.
func (d FieldDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Moved) == 0 && len(d.Changed) == 0
}

// HasStructuralChange reports an added or removed field or a data-affecting change.
func (d FieldDiff) HasStructuralChange() bool {
	if len(d.Added) > 0 || len(d.Removed) > 0 {
		return true
	}
	for _, c := range d.Changed {
		if c.AffectsData {
			return true
		}
	}
	return false
}

// Diff compares two field lists by key. It is pure and never fails on
// well-formed input; duplicate keys are a programmer error and panic.
// Callers that accept lists from outside should run FieldList.Validate first.
func Diff(previous, next models.FieldList) FieldDiff {
	prevIndex := mustIndex(previous, "previous")
	nextIndex := mustIndex(next, "next")

	var diff FieldDiff

	for i, field := range next {
		j, ok := prevIndex[field.Key]
		if !ok {
			diff.Added = append(diff.Added, field.Clone())
			continue
		}

		old := previous[j]
		if i != j {
			diff.Moved = append(diff.Moved, Move{FieldKey: field.Key, FromIndex: j, ToIndex: i})
		}

		affects := dataAffecting(old, field)
		if affects || old.Label != field.Label {
			diff.Changed = append(diff.Changed, Change{
				FieldKey:    field.Key,
				FromLabel:   old.Label,
				ToLabel:     field.Label,
				FromType:    old.Type(),
				ToType:      field.Type(),
				AffectsData: affects,
			})
		}
	}

	for _, field := range previous {
		if _, ok := nextIndex[field.Key]; !ok {
			diff.Removed = append(diff.Removed, field.Clone())
		}
	}

	return diff
}

// Annotate заполняет буквы колонок для перемещений.
// Буквы вычисляются только через columns.Mapper.
func Annotate(diff FieldDiff, mapper columns.Mapper) FieldDiff {
	if len(diff.Moved) == 0 {
		return diff
	}
	moved := make([]Move, len(diff.Moved))
	for i, mv := range diff.Moved {
		mv.FromColumn = mapper.ColumnLetter(mv.FromIndex)
		mv.ToColumn = mapper.ColumnLetter(mv.ToIndex)
		moved[i] = mv
	}
	diff.Moved = moved
	return diff
}

// dataAffecting сравнивает тип и, для полей выбора, варианты с учетом порядка
func dataAffecting(old, next models.FieldSnapshot) bool {
	if old.Type() != next.Type() {
		return true
	}
	if next.Type().IsChoice() {
		return !slices.Equal(old.Options(), next.Options())
	}
	return false
}

func mustIndex(list models.FieldList, name string) map[string]int {
	index := make(map[string]int, len(list))
	for i, f := range list {
		if prev, ok := index[f.Key]; ok {
			panic(fmt.Sprintf("migration: %s field list has duplicate key %q at positions %d and %d", name, f.Key, prev, i))
		}
		index[f.Key] = i
	}
	return index
}
