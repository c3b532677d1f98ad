// Package api описывает протокол обмена между коннектором и табличным хранилищем.
package api

import (
	"encoding/json"
	"slices"
)

// Коды ошибок в конверте ответа
const (
	CodeTransient        = "TRANSIENT"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeNotFound         = "NOT_FOUND"
	CodeUnsupported      = "UNSUPPORTED"
	CodeSchemaConflict   = "SCHEMA_CONFLICT"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeBadRequest       = "BAD_REQUEST"
	CodeInternal         = "INTERNAL"
)

// Имена операций
const (
	OpMeta           = "meta"
	OpListStores     = "listStores"
	OpGetRows        = "getRows"
	OpSetHeader      = "setHeader"
	OpClearRows      = "clearRows"
	OpAppendRows     = "appendRows"
	OpCreateStore    = "createStore"
	OpAppendResponse = "appendResponse"
)

// Operations все известные операции
var Operations = []string{
	OpMeta, OpListStores, OpGetRows, OpSetHeader,
	OpClearRows, OpAppendRows, OpCreateStore, OpAppendResponse,
}

// KnownOperation reports whether op is one of Operations.
func KnownOperation(op string) bool {
	return slices.Contains(Operations, op)
}

// Параметры операций
const (
	ParamID  = "id"
	ParamTab = "tab"
	ParamOp  = "op"
	// ParamRange ограничивает getRows колонками, например "E:G"
	ParamRange = "range"
)

// ExecPath путь, по которому хранилище принимает операции
const ExecPath = "/v1/exec"

// Request тело запроса к хранилищу.
// Operation и Params дублируют query string.
type Request struct {
	Params    map[string]string `json:"params,omitempty"`
	Operation string            `json:"operation"`
	Body      json.RawMessage   `json:"body,omitempty"`
}

// Response конверт ответа хранилища
type Response struct {
	Error *ErrorBody      `json:"error,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	OK    bool            `json:"ok"`
}

// ErrorBody описание ошибки в конверте
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
