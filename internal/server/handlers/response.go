package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/formsync/pkg/api"
)

// SendJSON отправляет конверт {"ok":true,"data":...}
func SendJSON(w http.ResponseWriter, logger *slog.Logger, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to encode response data", slog.Any("error", err))
		SendError(w, logger, http.StatusInternalServerError, api.CodeInternal, "internal server error")
		return
	}
	send(w, logger, http.StatusOK, api.Response{OK: true, Data: raw})
}

// SendError отправляет конверт с ошибкой. Код клиент переводит в вид ошибки.
func SendError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	send(w, logger, status, api.Response{Error: &api.ErrorBody{Code: code, Message: message}})
}

func send(w http.ResponseWriter, logger *slog.Logger, status int, resp api.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}
