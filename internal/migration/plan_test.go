package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/columns"
	"github.com/iudanet/formsync/internal/models"
)

func TestCompute_AddedField(t *testing.T) {
	prev := models.FieldList{text(t, "a", "A")}
	next := models.FieldList{text(t, "a", "A2"), text(t, "b", "B")}

	plan, err := Compute(prev, next, 5, columns.Default())
	require.NoError(t, err)

	assert.Equal(t, KindFull, plan.Decision.Kind)
	assert.True(t, plan.Decision.Required)
	assert.Equal(t, 5, plan.Decision.ExistingRowCount)
	assert.Equal(t, map[string]string{"a": "E", "b": "F"}, plan.Columns)
	assert.Equal(t, []string{"Timestamp", "Form", "IP", "User Agent", "A2", "B"}, plan.Header)
	assert.NotEmpty(t, plan.Fingerprint)
}

func TestCompute_Swap(t *testing.T) {
	a, b := text(t, "a", "A"), text(t, "b", "B")

	plan, err := Compute(models.FieldList{a, b}, models.FieldList{b, a}, 10, columns.Default())
	require.NoError(t, err)

	assert.Equal(t, KindHeaderOnly, plan.Decision.Kind)
	require.Len(t, plan.Diff.Moved, 2)
	assert.Equal(t, Move{FieldKey: "b", FromIndex: 1, ToIndex: 0, FromColumn: "F", ToColumn: "E"}, plan.Diff.Moved[0])
	assert.Equal(t, Move{FieldKey: "a", FromIndex: 0, ToIndex: 1, FromColumn: "E", ToColumn: "F"}, plan.Diff.Moved[1])
}

func TestCompute_EmptyStore(t *testing.T) {
	plan, err := Compute(nil, models.FieldList{text(t, "a", "A")}, 0, columns.Default())
	require.NoError(t, err)

	assert.Equal(t, KindNone, plan.Decision.Kind)
	assert.False(t, plan.Decision.Required)
	require.Len(t, plan.Diff.Added, 1)
}

func TestCompute_Errors(t *testing.T) {
	a := text(t, "a", "A")

	_, err := Compute(models.FieldList{a, a}, nil, 1, columns.Default())
	require.ErrorIs(t, err, models.ErrDuplicateFieldKey)

	_, err = Compute(nil, models.FieldList{a, a}, 1, columns.Default())
	require.ErrorIs(t, err, models.ErrDuplicateFieldKey)

	_, err = Compute(nil, models.FieldList{{Key: "raw"}}, 1, columns.Default())
	require.Error(t, err)
}

func TestCompute_IsolatedFromCaller(t *testing.T) {
	prev := models.FieldList{text(t, "a", "A")}
	next := models.FieldList{text(t, "a", "A"), text(t, "b", "B")}

	plan, err := Compute(prev, next, 1, columns.Default())
	require.NoError(t, err)

	next[1].Label = "changed"
	prev[0].Key = "zzz"

	assert.Equal(t, "B", plan.Next[1].Label)
	assert.Equal(t, "a", plan.Previous[0].Key)
}

func TestCompute_Fingerprint(t *testing.T) {
	prev := models.FieldList{text(t, "a", "A")}
	next := models.FieldList{text(t, "a", "A"), text(t, "b", "B")}

	p1, err := Compute(prev, next, 1, columns.Default())
	require.NoError(t, err)
	p2, err := Compute(prev.Clone(), next.Clone(), 99, columns.Default())
	require.NoError(t, err)
	p3, err := Compute(prev, models.FieldList{text(t, "b", "B"), text(t, "a", "A")}, 1, columns.Default())
	require.NoError(t, err)

	// Отпечаток зависит только от схем, не от количества строк
	assert.Equal(t, p1.Fingerprint, p2.Fingerprint)
	assert.NotEqual(t, p1.Fingerprint, p3.Fingerprint)
}

func TestPlan_RemapRow(t *testing.T) {
	a, b, c, d := text(t, "a", "A"), text(t, "b", "B"), text(t, "c", "C"), text(t, "d", "D")

	// a,b,c → c,a,d (b удалено, d добавлено)
	plan, err := Compute(models.FieldList{a, b, c}, models.FieldList{c, a, d}, 1, columns.Default())
	require.NoError(t, err)
	require.Equal(t, KindFull, plan.Decision.Kind)

	tests := []struct {
		name string
		row  []string
		want []string
	}{
		{
			name: "full row",
			row:  []string{"ts", "f", "ip", "ua", "va", "vb", "vc"},
			want: []string{"ts", "f", "ip", "ua", "vc", "va", ""},
		},
		{
			name: "short row",
			row:  []string{"ts", "f", "ip", "ua", "va"},
			want: []string{"ts", "f", "ip", "ua", "", "va", ""},
		},
		{
			name: "prefix only",
			row:  []string{"ts", "f"},
			want: []string{"ts", "f", "", "", "", "", ""},
		},
		{
			name: "extra trailing cells dropped",
			row:  []string{"ts", "f", "ip", "ua", "va", "vb", "vc", "junk"},
			want: []string{"ts", "f", "ip", "ua", "vc", "va", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plan.RemapRow(tt.row))
		})
	}
}

func TestPlan_RemapRowsKeepsChangedTypeValues(t *testing.T) {
	prev := models.FieldList{text(t, "a", "A")}
	next := models.FieldList{choice(t, "a", "A", "yes", "no"), text(t, "b", "B")}

	plan, err := Compute(prev, next, 2, columns.Default())
	require.NoError(t, err)

	rows := plan.RemapRows([][]string{
		{"t1", "f", "ip", "ua", "yes"},
		{"t2", "f", "ip", "ua", "maybe"},
	})

	assert.Equal(t, [][]string{
		{"t1", "f", "ip", "ua", "yes", ""},
		{"t2", "f", "ip", "ua", "maybe", ""},
	}, rows)
}
