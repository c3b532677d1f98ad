package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/formsync/internal/columns"
	"github.com/iudanet/formsync/internal/server/storage"
	"github.com/iudanet/formsync/internal/validation"
	"github.com/iudanet/formsync/pkg/api"
)

// DefaultTab имя вкладки нового хранилища, если клиент его не задал
const DefaultTab = "Sheet1"

// lookup находит хранилище по параметрам id и tab
func (h *RPCHandler) lookup(ctx context.Context, c call) (*storage.Store, error) {
	id := c.params[api.ParamID]
	if id == "" {
		return nil, &rpcError{status: http.StatusBadRequest, code: api.CodeInvalidReference, message: "store id is required"}
	}

	store, err := h.storage.GetStore(ctx, id)
	if err != nil {
		return nil, err
	}

	if tab := c.params[api.ParamTab]; tab != "" && tab != store.Tab {
		return nil, &rpcError{
			status:  http.StatusNotFound,
			code:    api.CodeNotFound,
			message: fmt.Sprintf("tab %q not found in store %s", tab, id),
		}
	}
	return store, nil
}

func storeInfo(store *storage.Store) api.StoreInfo {
	return api.StoreInfo{
		ID:        store.ID,
		Name:      store.Name,
		Tab:       store.Tab,
		Tabs:      []string{store.Tab},
		Header:    store.Header,
		RowCount:  store.RowCount,
		CreatedAt: store.CreatedAt,
	}
}

func (h *RPCHandler) meta(ctx context.Context, c call) (any, error) {
	store, err := h.lookup(ctx, c)
	if err != nil {
		return nil, err
	}
	return storeInfo(store), nil
}

func (h *RPCHandler) listStores(ctx context.Context, _ call) (any, error) {
	stores, err := h.storage.ListStores(ctx)
	if err != nil {
		return nil, err
	}

	out := api.StoreList{Stores: make([]api.StoreInfo, 0, len(stores))}
	for i := range stores {
		out.Stores = append(out.Stores, storeInfo(&stores[i]))
	}
	return out, nil
}

func (h *RPCHandler) getRows(ctx context.Context, c call) (any, error) {
	store, err := h.lookup(ctx, c)
	if err != nil {
		return nil, err
	}

	rows, err := h.storage.GetRows(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	if raw := c.params[api.ParamRange]; raw != "" {
		from, to, err := parseColumnRange(raw)
		if err != nil {
			return nil, err
		}
		rows = sliceColumns(rows, from, to)
	}
	return api.RowsPayload{Rows: rows}, nil
}

func (h *RPCHandler) setHeader(ctx context.Context, c call) (any, error) {
	store, err := h.lookup(ctx, c)
	if err != nil {
		return nil, err
	}

	var payload api.HeaderPayload
	if err := c.decode(&payload); err != nil {
		return nil, err
	}
	if err := h.storage.SetHeader(ctx, store.ID, payload.Header); err != nil {
		return nil, err
	}
	return payload, nil
}

func (h *RPCHandler) clearRows(ctx context.Context, c call) (any, error) {
	store, err := h.lookup(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := h.storage.ClearRows(ctx, store.ID); err != nil {
		return nil, err
	}
	return api.AppendResult{}, nil
}

func (h *RPCHandler) appendRows(ctx context.Context, c call) (any, error) {
	store, err := h.lookup(ctx, c)
	if err != nil {
		return nil, err
	}

	var payload api.RowsPayload
	if err := c.decode(&payload); err != nil {
		return nil, err
	}
	for _, row := range payload.Rows {
		if err := checkWidth(store, row); err != nil {
			return nil, err
		}
	}

	offset := storage.AnyOffset
	if payload.Offset != nil {
		if *payload.Offset < 0 {
			return nil, badRequest("offset must not be negative")
		}
		offset = *payload.Offset
	}

	count, written, err := h.storage.AppendRows(ctx, store.ID, offset, payload.Rows)
	if err != nil {
		return nil, err
	}
	if !written {
		h.logger.InfoContext(ctx, "batch already appended", "store", store.ID, "offset", offset, "rows", len(payload.Rows))
		return api.AppendResult{RowCount: count}, nil
	}
	return api.AppendResult{Appended: len(payload.Rows), RowCount: count}, nil
}

func (h *RPCHandler) createStore(ctx context.Context, c call) (any, error) {
	var req api.CreateStoreRequest
	if err := c.decode(&req); err != nil {
		return nil, err
	}
	if err := validation.ValidateStoreName(req.Name); err != nil {
		return nil, badRequest(err.Error())
	}

	tab := strings.TrimSpace(req.Tab)
	if tab == "" {
		tab = DefaultTab
	}

	store := &storage.Store{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Tab:       tab,
		Header:    req.Header,
		CreatedAt: h.now().UTC(),
	}
	if err := h.storage.CreateStore(ctx, store); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "store created", "id", store.ID, "name", store.Name, "tab", store.Tab)
	return storeInfo(store), nil
}

// appendResponse пишет системные колонки (время, форма, IP, user agent) и ячейки полей
func (h *RPCHandler) appendResponse(ctx context.Context, c call) (any, error) {
	store, err := h.lookup(ctx, c)
	if err != nil {
		return nil, err
	}

	var resp api.ResponseRow
	if err := c.decode(&resp); err != nil {
		return nil, err
	}
	if err := validation.ValidateFormID(resp.FormID); err != nil {
		return nil, badRequest(err.Error())
	}

	submitted := resp.SubmittedAt
	if submitted.IsZero() {
		submitted = h.now()
	}

	row := make([]string, 0, columns.SystemPrefixWidth+len(resp.Cells))
	row = append(row, submitted.UTC().Format(time.RFC3339), resp.FormID, resp.IP, resp.UserAgent)
	row = append(row, resp.Cells...)
	if err := checkWidth(store, row); err != nil {
		return nil, err
	}

	count, _, err := h.storage.AppendRows(ctx, store.ID, storage.AnyOffset, [][]string{row})
	if err != nil {
		return nil, err
	}
	return api.AppendResult{Appended: 1, RowCount: count}, nil
}

// checkWidth отклоняет строку шире заголовка. Хранилище без заголовка принимает любые строки.
func checkWidth(store *storage.Store, row []string) error {
	width := len(store.Header)
	if width == 0 || len(row) <= width {
		return nil
	}
	return &rpcError{
		status:  http.StatusConflict,
		code:    api.CodeSchemaConflict,
		message: fmt.Sprintf("row has %d cells but the header of %s has %d", len(row), store.ID, width),
	}
}

// parseColumnRange разбирает "E:G" или "E" в индексы колонок включительно
func parseColumnRange(raw string) (int, int, error) {
	fromRaw, toRaw, found := strings.Cut(strings.ToUpper(strings.TrimSpace(raw)), ":")
	if !found {
		toRaw = fromRaw
	}

	from, err := columns.Index(fromRaw)
	if err != nil {
		return 0, 0, badRequest(fmt.Sprintf("invalid range %q: %v", raw, err))
	}
	to, err := columns.Index(toRaw)
	if err != nil {
		return 0, 0, badRequest(fmt.Sprintf("invalid range %q: %v", raw, err))
	}
	if to < from {
		return 0, 0, badRequest(fmt.Sprintf("invalid range %q: end before start", raw))
	}
	return from, to, nil
}

// sliceColumns оставляет колонки from..to; короткие строки не дополняются
func sliceColumns(rows [][]string, from, to int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		switch {
		case from >= len(row):
			out[i] = []string{}
		case to >= len(row):
			out[i] = row[from:]
		default:
			out[i] = row[from : to+1]
		}
	}
	return out
}
