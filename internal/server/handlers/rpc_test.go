package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/formsync/internal/server/storage"
	"github.com/iudanet/formsync/internal/server/storage/sqlite"
	"github.com/iudanet/formsync/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupRPC(t *testing.T, disabled ...string) *RPCHandler {
	t.Helper()
	st, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	h := NewRPCHandler(setupTestLogger(), st, disabled)
	h.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return h
}

// exec вызывает операцию так же, как коннектор: op и параметры в query, тело в конверте
func exec(t *testing.T, h http.Handler, op string, params map[string]string, body any) (int, api.Response) {
	t.Helper()

	q := url.Values{api.ParamOp: {op}}
	for k, v := range params {
		q.Set(k, v)
	}

	req := api.Request{Operation: op, Params: params}
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req.Body = raw
	}
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, api.ExecPath+"?"+q.Encode(), bytes.NewReader(payload))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var env api.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return w.Code, env
}

func decodeData[T any](t *testing.T, env api.Response) T {
	t.Helper()
	require.True(t, env.OK, "envelope error: %+v", env.Error)
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func createStore(t *testing.T, h http.Handler, header ...string) api.StoreInfo {
	t.Helper()
	code, env := exec(t, h, api.OpCreateStore, nil, api.CreateStoreRequest{Name: "Signups", Header: header})
	require.Equal(t, http.StatusOK, code)
	return decodeData[api.StoreInfo](t, env)
}

func TestRPC_CreateAndMeta(t *testing.T) {
	h := setupRPC(t)
	created := createStore(t, h, "Timestamp", "Form", "IP", "User Agent", "Name")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, DefaultTab, created.Tab)
	assert.Equal(t, []string{DefaultTab}, created.Tabs)

	code, env := exec(t, h, api.OpMeta, map[string]string{api.ParamID: created.ID}, nil)
	require.Equal(t, http.StatusOK, code)
	info := decodeData[api.StoreInfo](t, env)
	assert.Equal(t, created.Header, info.Header)
	assert.Zero(t, info.RowCount)

	code, env = exec(t, h, api.OpListStores, nil, nil)
	require.Equal(t, http.StatusOK, code)
	list := decodeData[api.StoreList](t, env)
	require.Len(t, list.Stores, 1)
	assert.Equal(t, created.ID, list.Stores[0].ID)
}

func TestRPC_Rows(t *testing.T) {
	h := setupRPC(t)
	store := createStore(t, h, "A", "B", "C")
	ref := map[string]string{api.ParamID: store.ID, api.ParamTab: DefaultTab}

	code, env := exec(t, h, api.OpAppendRows, ref, api.RowsPayload{Rows: [][]string{{"1", "2", "3"}, {"4", "5"}}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.AppendResult{Appended: 2, RowCount: 2}, decodeData[api.AppendResult](t, env))

	_, env = exec(t, h, api.OpGetRows, ref, nil)
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5"}}, decodeData[api.RowsPayload](t, env).Rows)

	ranged := map[string]string{api.ParamID: store.ID, api.ParamRange: "b:c"}
	_, env = exec(t, h, api.OpGetRows, ranged, nil)
	assert.Equal(t, [][]string{{"2", "3"}, {"5"}}, decodeData[api.RowsPayload](t, env).Rows)

	code, _ = exec(t, h, api.OpSetHeader, ref, api.HeaderPayload{Header: []string{"C", "B", "A"}})
	require.Equal(t, http.StatusOK, code)

	code, _ = exec(t, h, api.OpClearRows, ref, nil)
	require.Equal(t, http.StatusOK, code)

	_, env = exec(t, h, api.OpMeta, ref, nil)
	info := decodeData[api.StoreInfo](t, env)
	assert.Equal(t, []string{"C", "B", "A"}, info.Header)
	assert.Zero(t, info.RowCount)
}

func TestRPC_AppendResponse(t *testing.T) {
	h := setupRPC(t)
	store := createStore(t, h, "Timestamp", "Form", "IP", "User Agent", "Name", "Email")
	ref := map[string]string{api.ParamID: store.ID}

	code, env := exec(t, h, api.OpAppendResponse, ref, api.ResponseRow{
		FormID: "signup",
		IP:     "10.0.0.1",
		Cells:  []string{"Ann", "ann@example.com"},
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.AppendResult{Appended: 1, RowCount: 1}, decodeData[api.AppendResult](t, env))

	_, env = exec(t, h, api.OpGetRows, ref, nil)
	assert.Equal(t,
		[][]string{{"2026-03-01T12:00:00Z", "signup", "10.0.0.1", "", "Ann", "ann@example.com"}},
		decodeData[api.RowsPayload](t, env).Rows)

	// ячеек больше, чем колонок в заголовке
	code, env = exec(t, h, api.OpAppendResponse, ref, api.ResponseRow{
		FormID: "signup",
		Cells:  []string{"Ann", "ann@example.com", "extra"},
	})
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeSchemaConflict, env.Error.Code)

	code, env = exec(t, h, api.OpAppendResponse, ref, api.ResponseRow{FormID: "Bad Form", Cells: []string{"x"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, api.CodeBadRequest, env.Error.Code)
}

func TestRPC_Errors(t *testing.T) {
	h := setupRPC(t, api.OpClearRows)
	store := createStore(t, h, "A")

	tests := []struct {
		params     map[string]string
		body       any
		name       string
		op         string
		wantCode   string
		wantStatus int
	}{
		{
			name:       "unknown store",
			op:         api.OpMeta,
			params:     map[string]string{api.ParamID: "missing-store-id"},
			wantStatus: http.StatusNotFound,
			wantCode:   api.CodeNotFound,
		},
		{
			name:       "unknown tab",
			op:         api.OpMeta,
			params:     map[string]string{api.ParamID: store.ID, api.ParamTab: "Other"},
			wantStatus: http.StatusNotFound,
			wantCode:   api.CodeNotFound,
		},
		{
			name:       "missing id",
			op:         api.OpGetRows,
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeInvalidReference,
		},
		{
			name:       "disabled operation",
			op:         api.OpClearRows,
			params:     map[string]string{api.ParamID: store.ID},
			wantStatus: http.StatusNotImplemented,
			wantCode:   api.CodeUnsupported,
		},
		{
			name:       "unknown operation",
			op:         "dropStore",
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
		{
			name:       "missing body",
			op:         api.OpSetHeader,
			params:     map[string]string{api.ParamID: store.ID},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
		{
			name:       "row wider than header",
			op:         api.OpAppendRows,
			params:     map[string]string{api.ParamID: store.ID},
			body:       api.RowsPayload{Rows: [][]string{{"1", "2"}}},
			wantStatus: http.StatusConflict,
			wantCode:   api.CodeSchemaConflict,
		},
		{
			name:       "bad range",
			op:         api.OpGetRows,
			params:     map[string]string{api.ParamID: store.ID, api.ParamRange: "C:A"},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
		{
			name:       "empty store name",
			op:         api.OpCreateStore,
			body:       api.CreateStoreRequest{Name: ""},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := exec(t, h, tt.op, tt.params, tt.body)
			assert.Equal(t, tt.wantStatus, code)
			assert.False(t, env.OK)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestRPC_AppendRowsAtOffset(t *testing.T) {
	h := setupRPC(t)
	store := createStore(t, h, "A")
	ref := map[string]string{api.ParamID: store.ID}
	offset := func(n int) *int { return &n }

	batch := api.RowsPayload{Offset: offset(0), Rows: [][]string{{"1"}, {"2"}}}
	code, env := exec(t, h, api.OpAppendRows, ref, batch)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.AppendResult{Appended: 2, RowCount: 2}, decodeData[api.AppendResult](t, env))

	// повтор после потерянного ответа
	code, env = exec(t, h, api.OpAppendRows, ref, batch)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, api.AppendResult{RowCount: 2}, decodeData[api.AppendResult](t, env))

	code, env = exec(t, h, api.OpAppendRows, ref, api.RowsPayload{Offset: offset(1), Rows: [][]string{{"3"}}})
	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeSchemaConflict, env.Error.Code)

	code, _ = exec(t, h, api.OpAppendRows, ref, api.RowsPayload{Offset: offset(-1), Rows: [][]string{{"3"}}})
	assert.Equal(t, http.StatusBadRequest, code)

	_, env = exec(t, h, api.OpGetRows, ref, nil)
	assert.Equal(t, [][]string{{"1"}, {"2"}}, decodeData[api.RowsPayload](t, env).Rows)
}

func TestRPC_OperationFromBody(t *testing.T) {
	h := setupRPC(t)
	createStore(t, h, "A")

	r := httptest.NewRequest(http.MethodPost, api.ExecPath, bytes.NewReader([]byte(`{"operation":"listStores"}`)))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var env api.Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	assert.Len(t, decodeData[api.StoreList](t, env).Stores, 1)
}

func TestRPC_MethodNotAllowed(t *testing.T) {
	h := setupRPC(t)

	r := httptest.NewRequest(http.MethodDelete, api.ExecPath+"?op=meta", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

// Внутренние ошибки хранилища не раскрываются клиенту
func TestRPC_InternalError(t *testing.T) {
	st := &storage.StoreStorageMock{
		ListStoresFunc: func(context.Context) ([]storage.Store, error) {
			return nil, errors.New("disk I/O error")
		},
	}
	h := NewRPCHandler(setupTestLogger(), st, nil)

	code, env := exec(t, h, api.OpListStores, nil, nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, api.CodeInternal, env.Error.Code)
	assert.NotContains(t, env.Error.Message, "disk")
}
