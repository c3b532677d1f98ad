package migration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/models"
)

func TestDecide_Rules(t *testing.T) {
	a, b := text(t, "a", "A"), text(t, "b", "B")

	tests := []struct {
		name     string
		prev     models.FieldList
		next     models.FieldList
		rows     int
		expected Kind
	}{
		{name: "no rows, added", prev: models.FieldList{a}, next: models.FieldList{a, b}, rows: 0, expected: KindNone},
		{name: "no rows, removed", prev: models.FieldList{a, b}, next: models.FieldList{a}, rows: 0, expected: KindNone},
		{name: "no change", prev: models.FieldList{a, b}, next: models.FieldList{a, b}, rows: 3, expected: KindNone},
		{name: "added", prev: models.FieldList{a}, next: models.FieldList{a, b}, rows: 1, expected: KindFull},
		{name: "removed", prev: models.FieldList{a, b}, next: models.FieldList{b}, rows: 7, expected: KindFull},
		{name: "swap", prev: models.FieldList{a, b}, next: models.FieldList{b, a}, rows: 10, expected: KindHeaderOnly},
		{name: "label only", prev: models.FieldList{a}, next: models.FieldList{text(t, "a", "New")}, rows: 2, expected: KindHeaderOnly},
		{name: "type change", prev: models.FieldList{a}, next: models.FieldList{choice(t, "a", "A", "x")}, rows: 2, expected: KindFull},
		{name: "moved and relabeled", prev: models.FieldList{a, b}, next: models.FieldList{b, text(t, "a", "A2")}, rows: 4, expected: KindHeaderOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(Diff(tt.prev, tt.next), tt.rows)
			assert.Equal(t, tt.expected, d.Kind)
			assert.Equal(t, tt.expected != KindNone, d.Required)
			assert.Equal(t, tt.rows, d.ExistingRowCount)
		})
	}
}

func TestDecide_ReorderNeverFull(t *testing.T) {
	list := models.FieldList{text(t, "a", "A"), text(t, "b", "B"), text(t, "c", "C"), text(t, "d", "D")}

	// Любое перемещение одного поля на любую позицию
	for from := range list {
		for to := range list {
			next := make(models.FieldList, 0, len(list))
			moved := list[from]
			for i, f := range list {
				if i != from {
					next = append(next, f)
				}
			}
			next = append(next[:to], append(models.FieldList{moved}, next[to:]...)...)

			d := Decide(Diff(list, next), 100)
			assert.NotEqual(t, KindFull, d.Kind, "from %d to %d", from, to)
		}
	}
}

func TestDecide_RemovalWithRowsIsFull(t *testing.T) {
	list := models.FieldList{text(t, "a", "A"), text(t, "b", "B"), text(t, "c", "C")}
	for i := range list {
		next := append(list[:i:i], list[i+1:]...)
		for _, rows := range []int{1, 5, 1000} {
			assert.Equal(t, KindFull, Decide(Diff(list, next), rows).Kind)
		}
	}
}

func TestKind_Text(t *testing.T) {
	for _, k := range []Kind{KindNone, KindHeaderOnly, KindFull} {
		data, err := json.Marshal(k)
		require.NoError(t, err)

		var back Kind
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, k, back)
	}

	var k Kind
	assert.Error(t, k.UnmarshalText([]byte("PARTIAL")))
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
