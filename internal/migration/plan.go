package migration

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/iudanet/formsync/internal/columns"
	"github.com/iudanet/formsync/internal/models"
)

// Plan is the previewable result of computing a migration. It carries
// private copies of both lists so later edits by the caller cannot change it.
type Plan struct {
	Columns     map[string]string `json:"columns"`
	Fingerprint string            `json:"fingerprint"`
	Previous    models.FieldList  `json:"previous"`
	Next        models.FieldList  `json:"next"`
	Header      []string          `json:"header"`
	Diff        FieldDiff         `json:"diff"`
	Decision    Decision          `json:"decision"`
	Mapper      columns.Mapper    `json:"-"`
}

// Compute validates both lists, diffs them, annotates the diff with column
// letters and decides the migration kind for existingRowCount stored rows.
func Compute(previous, next models.FieldList, existingRowCount int, mapper columns.Mapper) (*Plan, error) {
	if err := previous.Validate(); err != nil {
		return nil, fmt.Errorf("previous field list: %w", err)
	}
	if err := next.Validate(); err != nil {
		return nil, fmt.Errorf("next field list: %w", err)
	}

	prev := previous.Clone()
	nxt := next.Clone()

	diff := Annotate(Diff(prev, nxt), mapper)

	return &Plan{
		Previous:    prev,
		Next:        nxt,
		Diff:        diff,
		Decision:    Decide(diff, existingRowCount),
		Columns:     mapper.MapFields(nxt),
		Header:      mapper.Header(nxt),
		Fingerprint: fingerprint(prev, nxt),
		Mapper:      mapper,
	}, nil
}

// fingerprint стабильный хеш пары схем, ключ журнала миграции
func fingerprint(previous, next models.FieldList) string {
	payload, _ := json.Marshal(struct {
		Previous models.FieldList `json:"p"`
		Next     models.FieldList `json:"n"`
	}{previous, next})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// RemapRow moves one stored row from the previous column layout to the next
// one. System prefix cells are kept, surviving fields keep their values at
// their new position, removed fields are dropped and added fields are empty.
func (p *Plan) RemapRow(row []string) []string {
	prefix := p.Mapper.Prefix
	out := make([]string, p.Mapper.Width(p.Next))

	copy(out[:prefix], row[:min(prefix, len(row))])

	for i, field := range p.Next {
		j := p.Previous.Index(field.Key)
		if j < 0 {
			continue
		}
		if src := prefix + j; src < len(row) {
			out[prefix+i] = row[src]
		}
	}

	return out
}

// RemapRows применяет RemapRow ко всем строкам
func (p *Plan) RemapRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = p.RemapRow(row)
	}
	return out
}
