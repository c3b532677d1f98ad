package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/formsync/internal/server/storage"
	"github.com/iudanet/formsync/pkg/api"
)

// maxRequestSize ограничение тела запроса
const maxRequestSize = 32 << 20

// call разобранный вызов операции
type call struct {
	params map[string]string
	body   json.RawMessage
}

// decode разбирает тело операции; пустое тело считается ошибкой запроса
func (c call) decode(v any) error {
	if len(c.body) == 0 {
		return badRequest("request body is required")
	}
	dec := json.NewDecoder(bytes.NewReader(c.body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid request body: " + err.Error())
	}
	return nil
}

// rpcError ошибка с HTTP статусом и кодом конверта
type rpcError struct {
	code    string
	message string
	status  int
}

func (e *rpcError) Error() string {
	return e.message
}

func badRequest(message string) error {
	return &rpcError{status: http.StatusBadRequest, code: api.CodeBadRequest, message: message}
}

type operation func(ctx context.Context, c call) (any, error)

// RPCHandler обрабатывает POST /v1/exec?op=<operation>
type RPCHandler struct {
	logger   *slog.Logger
	storage  storage.StoreStorage
	ops      map[string]operation
	disabled map[string]bool
	now      func() time.Time
}

// NewRPCHandler creates the operation handler. Operations in disabledOps
// answer 501 UNSUPPORTED.
func NewRPCHandler(logger *slog.Logger, st storage.StoreStorage, disabledOps []string) *RPCHandler {
	h := &RPCHandler{
		logger:   logger,
		storage:  st,
		disabled: make(map[string]bool, len(disabledOps)),
		now:      time.Now,
	}
	for _, op := range disabledOps {
		h.disabled[op] = true
	}

	h.ops = map[string]operation{
		api.OpMeta:           h.meta,
		api.OpListStores:     h.listStores,
		api.OpGetRows:        h.getRows,
		api.OpSetHeader:      h.setHeader,
		api.OpClearRows:      h.clearRows,
		api.OpAppendRows:     h.appendRows,
		api.OpCreateStore:    h.createStore,
		api.OpAppendResponse: h.appendResponse,
	}
	return h
}

func (h *RPCHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		SendError(w, h.logger, http.StatusMethodNotAllowed, api.CodeBadRequest, "method not allowed")
		return
	}

	name, c, err := h.parse(r)
	if err != nil {
		h.fail(w, r, name, err)
		return
	}

	op, ok := h.ops[name]
	if !ok {
		h.fail(w, r, name, badRequest(fmt.Sprintf("unknown operation %q", name)))
		return
	}
	if h.disabled[name] {
		h.fail(w, r, name, &rpcError{
			status:  http.StatusNotImplemented,
			code:    api.CodeUnsupported,
			message: fmt.Sprintf("operation %s is disabled", name),
		})
		return
	}

	data, err := op(ctx, c)
	if err != nil {
		h.fail(w, r, name, err)
		return
	}

	h.logger.DebugContext(ctx, "operation completed", slog.String("op", name), slog.String("id", c.params[api.ParamID]))
	SendJSON(w, h.logger, data)
}

// parse собирает операцию и параметры: query string важнее тела
func (h *RPCHandler) parse(r *http.Request) (string, call, error) {
	c := call{params: map[string]string{}}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestSize))
	if err != nil {
		return "", c, badRequest("failed to read request body")
	}

	var req api.Request
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			return "", c, badRequest("invalid request envelope: " + err.Error())
		}
	}
	for k, v := range req.Params {
		c.params[k] = v
	}
	c.body = req.Body

	name := req.Operation
	for k, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		if k == api.ParamOp {
			name = values[0]
			continue
		}
		c.params[k] = values[0]
	}

	if name == "" {
		return "", c, badRequest("operation is required")
	}
	return name, c, nil
}

// fail переводит ошибку в статус и код конверта
func (h *RPCHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var rpcErr *rpcError
	switch {
	case errors.As(err, &rpcErr):
	case errors.Is(err, storage.ErrStoreNotFound):
		rpcErr = &rpcError{status: http.StatusNotFound, code: api.CodeNotFound, message: err.Error()}
	case errors.Is(err, storage.ErrRowOffset):
		rpcErr = &rpcError{status: http.StatusConflict, code: api.CodeSchemaConflict, message: err.Error()}
	case errors.Is(err, context.Canceled):
		rpcErr = &rpcError{status: http.StatusRequestTimeout, code: api.CodeTransient, message: "request canceled"}
	default:
		h.logger.ErrorContext(r.Context(), "operation failed", slog.String("op", op), slog.Any("error", err))
		rpcErr = &rpcError{status: http.StatusInternalServerError, code: api.CodeInternal, message: "internal server error"}
	}

	if rpcErr.status < http.StatusInternalServerError {
		h.logger.WarnContext(r.Context(), "operation rejected",
			slog.String("op", op),
			slog.String("code", rpcErr.code),
			slog.String("message", rpcErr.message))
	}
	SendError(w, h.logger, rpcErr.status, rpcErr.code, rpcErr.message)
}
