// Package tablestore is the typed façade over the connector's operations.
package tablestore

import (
	"context"
	"fmt"

	"github.com/iudanet/formsync/internal/client/connector"
	"github.com/iudanet/formsync/internal/models"
	"github.com/iudanet/formsync/pkg/api"
)

//go:generate moq -out backend_mock.go . Backend

// Backend операции табличного хранилища, которые нужны миграции и формам
type Backend interface {
	Describe(ctx context.Context, ref models.StoreReference, force bool) (*api.StoreInfo, error)
	ReadRows(ctx context.Context, ref models.StoreReference) ([][]string, error)
	WriteHeader(ctx context.Context, ref models.StoreReference, header []string) error
	ClearRows(ctx context.Context, ref models.StoreReference) error
	AppendRows(ctx context.Context, ref models.StoreReference, offset int, rows [][]string) error
	CreateStore(ctx context.Context, name, tab string, header []string) (*api.StoreInfo, error)
	AppendResponse(ctx context.Context, ref models.StoreReference, row api.ResponseRow) (*api.AppendResult, error)
	ListStores(ctx context.Context) ([]api.StoreInfo, error)
}

// Fetcher is the subset of *connector.Connector used here.
type Fetcher interface {
	Fetch(ctx context.Context, operation string, params map[string]string, opts ...connector.FetchOption) (*connector.Result, error)
}

// Client реализует Backend поверх коннектора
type Client struct {
	fetcher Fetcher
}

// New создает клиента хранилища
func New(fetcher Fetcher) *Client {
	return &Client{fetcher: fetcher}
}

func refParams(ref models.StoreReference) map[string]string {
	params := map[string]string{api.ParamID: ref.ID}
	if ref.Tab != "" {
		params[api.ParamTab] = ref.Tab
	}
	return params
}

// Describe returns the header, row count and tabs of the store.
// force bypasses the connector cache.
func (c *Client) Describe(ctx context.Context, ref models.StoreReference, force bool) (*api.StoreInfo, error) {
	var opts []connector.FetchOption
	if force {
		opts = append(opts, connector.WithForce())
	}

	res, err := c.fetcher.Fetch(ctx, api.OpMeta, refParams(ref), opts...)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", ref, err)
	}

	var info api.StoreInfo
	if err := res.Decode(&info); err != nil {
		return nil, fmt.Errorf("describe %s: %w", ref, err)
	}
	return &info, nil
}

// ReadRows читает все строки данных (без заголовка) в обход кеша
func (c *Client) ReadRows(ctx context.Context, ref models.StoreReference) ([][]string, error) {
	res, err := c.fetcher.Fetch(ctx, api.OpGetRows, refParams(ref), connector.WithForce())
	if err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", ref, err)
	}

	var payload api.RowsPayload
	if err := res.Decode(&payload); err != nil {
		return nil, fmt.Errorf("read rows of %s: %w", ref, err)
	}
	return payload.Rows, nil
}

// WriteHeader заменяет строку заголовка
func (c *Client) WriteHeader(ctx context.Context, ref models.StoreReference, header []string) error {
	_, err := c.fetcher.Fetch(ctx, api.OpSetHeader, refParams(ref), connector.WithBody(api.HeaderPayload{Header: header}))
	if err != nil {
		return fmt.Errorf("write header of %s: %w", ref, err)
	}
	return nil
}

// ClearRows удаляет все строки данных, заголовок остается
func (c *Client) ClearRows(ctx context.Context, ref models.StoreReference) error {
	if _, err := c.fetcher.Fetch(ctx, api.OpClearRows, refParams(ref)); err != nil {
		return fmt.Errorf("clear rows of %s: %w", ref, err)
	}
	return nil
}

// AppendRows дописывает строки в хранилище, где сейчас ровно offset строк.
// Повтор пачки, которую бэкенд уже записал, ничего не дублирует.
func (c *Client) AppendRows(ctx context.Context, ref models.StoreReference, offset int, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	body := api.RowsPayload{Offset: &offset, Rows: rows}
	_, err := c.fetcher.Fetch(ctx, api.OpAppendRows, refParams(ref), connector.WithBody(body))
	if err != nil {
		return fmt.Errorf("append %d rows to %s: %w", len(rows), ref, err)
	}
	return nil
}

// CreateStore создает новое хранилище с заголовком
func (c *Client) CreateStore(ctx context.Context, name, tab string, header []string) (*api.StoreInfo, error) {
	res, err := c.fetcher.Fetch(ctx, api.OpCreateStore, nil,
		connector.WithBody(api.CreateStoreRequest{Name: name, Tab: tab, Header: header}))
	if err != nil {
		return nil, fmt.Errorf("create store %q: %w", name, err)
	}

	var info api.StoreInfo
	if err := res.Decode(&info); err != nil {
		return nil, fmt.Errorf("create store %q: %w", name, err)
	}
	return &info, nil
}

// AppendResponse записывает один ответ на форму
func (c *Client) AppendResponse(ctx context.Context, ref models.StoreReference, row api.ResponseRow) (*api.AppendResult, error) {
	res, err := c.fetcher.Fetch(ctx, api.OpAppendResponse, refParams(ref), connector.WithBody(row))
	if err != nil {
		return nil, fmt.Errorf("append response to %s: %w", ref, err)
	}

	var out api.AppendResult
	if err := res.Decode(&out); err != nil {
		return nil, fmt.Errorf("append response to %s: %w", ref, err)
	}
	return &out, nil
}

// ListStores возвращает все хранилища
func (c *Client) ListStores(ctx context.Context) ([]api.StoreInfo, error) {
	res, err := c.fetcher.Fetch(ctx, api.OpListStores, nil)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	var list api.StoreList
	if err := res.Decode(&list); err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return list.Stores, nil
}
