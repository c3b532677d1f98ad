package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/client/connector"
	"github.com/iudanet/formsync/internal/client/forms"
	"github.com/iudanet/formsync/internal/client/migrate"
	"github.com/iudanet/formsync/internal/client/storage/boltdb"
	"github.com/iudanet/formsync/internal/client/tablestore"
	"github.com/iudanet/formsync/internal/columns"
	"github.com/iudanet/formsync/internal/migration"
	"github.com/iudanet/formsync/internal/models"
	"github.com/iudanet/formsync/pkg/api"
)

// TestFormLifecycle проходит путь formsync -> tablestore по HTTP:
// создание хранилища, первая схема, ответ, удаление поля с переносом строк.
func TestFormLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, nil)

	srv := httptest.NewServer(e.handler)
	t.Cleanup(srv.Close)

	token, _, err := e.tokens.Mint("e2e")
	require.NoError(t, err)

	metrics := connector.NewMemoryMetrics()
	conn, err := connector.New(
		connector.Config{BaseURL: srv.URL + LegacyExecPath, RequestTimeout: 5 * time.Second},
		connector.WithTokenSource(connector.StaticToken(token)),
		connector.WithCache(connector.NewMemoryCache(time.Minute)),
		connector.WithMetrics(metrics),
		connector.WithLogger(setupTestLogger()),
	)
	require.NoError(t, err)

	db, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "formsync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	backend := tablestore.New(conn)
	svc := forms.NewService(backend, db, db, conn, columns.Default(), setupTestLogger())

	const formID = "signup"

	info, err := svc.CreateStore(ctx, formID, "Signups", "")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", info.Tab)
	assert.Equal(t, columns.SystemHeaders, info.Header)

	// запрос ушел на /exec и был перенаправлен
	assert.Equal(t, srv.URL+api.ExecPath, conn.LearnedEndpoint())

	name, err := models.NewTextField("name", "Name", models.FieldTypeText)
	require.NoError(t, err)
	email, err := models.NewTextField("email", "Email", models.FieldTypeEmail)
	require.NoError(t, err)

	plan, err := svc.Preview(ctx, formID, models.FieldList{name, email})
	require.NoError(t, err)
	res, err := svc.Commit(ctx, formID, plan, migrate.ApplyOptions{})
	require.NoError(t, err)
	assert.True(t, res.Applied)

	ref := models.StoreReference{ID: info.ID, Tab: info.Tab}
	described, err := backend.Describe(ctx, ref, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Timestamp", "Form", "IP", "User Agent", "Name", "Email"}, described.Header)

	submitted := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	appended, err := svc.Submit(ctx, formID,
		map[string]string{"name": "Ada", "email": "ada@example.com"},
		forms.SubmissionMeta{SubmittedAt: submitted, IP: "10.0.0.1", UserAgent: "e2e"})
	require.NoError(t, err)
	assert.Equal(t, 1, appended.RowCount)

	// удаление поля при непустом хранилище переписывает строки
	plan, err = svc.Preview(ctx, formID, models.FieldList{email})
	require.NoError(t, err)
	require.Equal(t, migration.KindFull, plan.Decision.Kind)

	_, err = svc.Commit(ctx, formID, plan, migrate.ApplyOptions{})
	require.ErrorIs(t, err, models.ErrConfirmationRequired)

	res, err = svc.Commit(ctx, formID, plan, migrate.ApplyOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.RowsMigrated)

	described, err = backend.Describe(ctx, ref, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Timestamp", "Form", "IP", "User Agent", "Email"}, described.Header)

	rows, err := backend.ReadRows(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"2026-05-01T10:00:00Z", formID, "10.0.0.1", "e2e", "ada@example.com"},
	}, rows)

	snapshots, err := svc.Forms(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, []string{"email"}, snapshots[0].Fields.Keys())

	assert.Positive(t, svc.Metrics().TotalRequests)
}

// Ответ на appendRows теряется после записи: повтор коннектора не дублирует строки
func TestAppendRowsRetryAfterLostResponse(t *testing.T) {
	ctx := context.Background()
	e := newTestEnv(t, nil)

	var lost atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get(api.ParamOp) != api.OpAppendRows || !lost.CompareAndSwap(false, true) {
			e.handler.ServeHTTP(w, r)
			return
		}
		e.handler.ServeHTTP(httptest.NewRecorder(), r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(api.Response{Error: &api.ErrorBody{Code: api.CodeTransient, Message: "upstream reset"}})
	}))
	t.Cleanup(srv.Close)

	token, _, err := e.tokens.Mint("e2e")
	require.NoError(t, err)

	metrics := connector.NewMemoryMetrics()
	conn, err := connector.New(
		connector.Config{
			BaseURL:        srv.URL + api.ExecPath,
			RequestTimeout: 5 * time.Second,
			Retry:          connector.RetryConfig{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond, Multiplier: 2},
		},
		connector.WithTokenSource(connector.StaticToken(token)),
		connector.WithCache(connector.NewMemoryCache(time.Minute)),
		connector.WithMetrics(metrics),
	)
	require.NoError(t, err)
	backend := tablestore.New(conn)

	info, err := backend.CreateStore(ctx, "Retries", "", append(slices.Clone(columns.SystemHeaders), "A"))
	require.NoError(t, err)
	ref := models.StoreReference{ID: info.ID, Tab: info.Tab}

	rows := [][]string{
		{"2026-05-01T10:00:00Z", "f", "", "", "1"},
		{"2026-05-01T10:01:00Z", "f", "", "", "2"},
	}
	require.NoError(t, backend.AppendRows(ctx, ref, 0, rows))
	assert.True(t, lost.Load())
	assert.Equal(t, int64(1), metrics.Snapshot().Retries)

	stored, err := backend.ReadRows(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, rows, stored)
}
