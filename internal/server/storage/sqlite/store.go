package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/iudanet/formsync/internal/server/storage"
)

// CreateStore saves a new store with its header
func (s *Storage) CreateStore(ctx context.Context, store *storage.Store) error {
	header, err := encodeCells(store.Header)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := checkStore(ctx, tx, store.ID); err == nil {
		return storage.ErrStoreExists
	} else if !errors.Is(err, storage.ErrStoreNotFound) {
		return err
	}

	query := `
		INSERT INTO stores (id, name, tab, header, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query, store.ID, store.Name, store.Tab, header, store.CreatedAt); err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetStore returns the store with its current row count
func (s *Storage) GetStore(ctx context.Context, id string) (*storage.Store, error) {
	query := `
		SELECT s.id, s.name, s.tab, s.header, s.created_at,
		       (SELECT COUNT(*) FROM store_rows r WHERE r.store_id = s.id)
		FROM stores s
		WHERE s.id = ?
	`

	store, err := scanStore(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return store, nil
}

// ListStores returns all stores ordered by creation time
func (s *Storage) ListStores(ctx context.Context) ([]storage.Store, error) {
	query := `
		SELECT s.id, s.name, s.tab, s.header, s.created_at,
		       (SELECT COUNT(*) FROM store_rows r WHERE r.store_id = s.id)
		FROM stores s
		ORDER BY s.created_at, s.id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var stores []storage.Store
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, *store)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stores: %w", err)
	}
	return stores, nil
}

// SetHeader replaces the header row
func (s *Storage) SetHeader(ctx context.Context, id string, header []string) error {
	raw, err := encodeCells(header)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `UPDATE stores SET header = ? WHERE id = ?`, raw, id)
	if err != nil {
		return fmt.Errorf("failed to set header: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrStoreNotFound
	}
	return nil
}

// GetRows returns data rows in insertion order
func (s *Storage) GetRows(ctx context.Context, id string) ([][]string, error) {
	if err := checkStore(ctx, s.db, id); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT cells FROM store_rows WHERE store_id = ? ORDER BY row_no`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query rows: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := [][]string{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		cells, err := decodeCells(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}

// ClearRows deletes all data rows
func (s *Storage) ClearRows(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := checkStore(ctx, tx, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM store_rows WHERE store_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AppendRows appends rows in one transaction and returns the new row count.
// See storage.StoreStorage for the offset check.
func (s *Storage) AppendRows(ctx context.Context, id string, offset int, rows [][]string) (int, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := checkStore(ctx, tx, id); err != nil {
		return 0, false, err
	}

	var count, last int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(row_no), 0) FROM store_rows WHERE store_id = ?`, id).Scan(&count, &last)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read last row: %w", err)
	}

	if offset >= 0 && count != offset {
		if len(rows) > 0 && count == offset+len(rows) {
			same, err := endsWith(ctx, tx, id, rows)
			if err != nil {
				return 0, false, err
			}
			if same {
				return count, false, nil
			}
		}
		return 0, false, fmt.Errorf("%w: store %s has %d rows, expected %d", storage.ErrRowOffset, id, count, offset)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO store_rows (store_id, row_no, cells) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, false, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, row := range rows {
		raw, err := encodeCells(row)
		if err != nil {
			return 0, false, err
		}
		if _, err := stmt.ExecContext(ctx, id, last+i+1, raw); err != nil {
			return 0, false, fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return count + len(rows), true, nil
}

// endsWith сравнивает последние len(rows) строк хранилища с rows
func endsWith(ctx context.Context, tx *sql.Tx, id string, rows [][]string) (bool, error) {
	res, err := tx.QueryContext(ctx,
		`SELECT cells FROM store_rows WHERE store_id = ? ORDER BY row_no DESC LIMIT ?`, id, len(rows))
	if err != nil {
		return false, fmt.Errorf("failed to query last rows: %w", err)
	}
	defer func() {
		_ = res.Close()
	}()

	i := len(rows) - 1
	for res.Next() {
		var raw string
		if err := res.Scan(&raw); err != nil {
			return false, fmt.Errorf("failed to scan row: %w", err)
		}
		cells, err := decodeCells(raw)
		if err != nil {
			return false, err
		}
		if i < 0 || !slices.Equal(cells, rows[i]) {
			return false, nil
		}
		i--
	}
	if err := res.Err(); err != nil {
		return false, fmt.Errorf("error iterating rows: %w", err)
	}
	return i < 0, nil
}

// querier общий интерфейс *sql.DB и *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func checkStore(ctx context.Context, q querier, id string) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM stores WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrStoreNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check store: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStore(row scanner) (*storage.Store, error) {
	var (
		store  storage.Store
		header string
	)
	if err := row.Scan(&store.ID, &store.Name, &store.Tab, &header, &store.CreatedAt, &store.RowCount); err != nil {
		return nil, err
	}

	cells, err := decodeCells(header)
	if err != nil {
		return nil, err
	}
	store.Header = cells
	return &store, nil
}

func encodeCells(cells []string) (string, error) {
	if cells == nil {
		cells = []string{}
	}
	raw, err := json.Marshal(cells)
	if err != nil {
		return "", fmt.Errorf("failed to encode cells: %w", err)
	}
	return string(raw), nil
}

func decodeCells(raw string) ([]string, error) {
	var cells []string
	if err := json.Unmarshal([]byte(raw), &cells); err != nil {
		return nil, fmt.Errorf("failed to decode cells: %w", err)
	}
	return cells, nil
}
