package connector

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/formsync/internal/models"
	"github.com/iudanet/formsync/pkg/api"
)

// ErrMalformedResponse ответ хранилища не удалось разобрать даже частично
var ErrMalformedResponse = errors.New("malformed backend response")

// ErrRejected хранилище отклонило запрос без более точной классификации
var ErrRejected = errors.New("request rejected by backend")

// Kind классифицирует ошибку обращения к хранилищу
type Kind int

const (
	KindTransient Kind = iota
	KindPermissionDenied
	KindNotFound
	KindUnsupported
	KindSchemaConflict
	KindInvalidReference
	KindMalformed
	KindRejected
)

// String returns a short name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNotFound:
		return "not_found"
	case KindUnsupported:
		return "unsupported"
	case KindSchemaConflict:
		return "schema_conflict"
	case KindInvalidReference:
		return "invalid_reference"
	case KindMalformed:
		return "malformed"
	case KindRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// sentinel возвращает ошибку из таксономии models, соответствующую виду
func (k Kind) sentinel() error {
	switch k {
	case KindTransient:
		return models.ErrTransient
	case KindPermissionDenied:
		return models.ErrPermissionDenied
	case KindNotFound:
		return models.ErrNotFound
	case KindUnsupported:
		return models.ErrUnsupported
	case KindSchemaConflict:
		return models.ErrSchemaConflict
	case KindInvalidReference:
		return models.ErrInvalidReference
	case KindMalformed:
		return ErrMalformedResponse
	default:
		return ErrRejected
	}
}

// BackendError is a classified failure of one backend operation.
// errors.Is matches both another *BackendError of the same Kind and the
// matching models sentinel (models.ErrNotFound and so on).
type BackendError struct {
	Err        error
	Operation  string
	Message    string
	StatusCode int
	RetryAfter time.Duration
	Kind       Kind
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: HTTP %d (%s): %s", e.Operation, e.StatusCode, e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Operation, e.Kind, msg)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is сравнивает по виду ошибки либо с sentinel-ошибкой models
func (e *BackendError) Is(target error) bool {
	if t, ok := target.(*BackendError); ok {
		return e.Kind == t.Kind
	}
	return target == e.Kind.sentinel()
}

// Retryable reports whether another attempt may succeed.
func (e *BackendError) Retryable() bool {
	return e.Kind == KindTransient
}

// kindForStatus определяет вид ошибки по HTTP статусу.
// Порядок: rate limit, авторизация, отсутствие, затем общие диапазоны.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusTooManyRequests, status == http.StatusRequestTimeout:
		return KindTransient
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindPermissionDenied
	case status == http.StatusNotFound, status == http.StatusGone:
		return KindNotFound
	case status == http.StatusNotImplemented:
		return KindUnsupported
	case status == http.StatusConflict:
		return KindSchemaConflict
	case status >= 500:
		return KindTransient
	default:
		return KindRejected
	}
}

// kindForCode переводит код из конверта ответа; ok=false для неизвестных кодов
func kindForCode(code string) (Kind, bool) {
	switch code {
	case api.CodeTransient:
		return KindTransient, true
	case api.CodePermissionDenied:
		return KindPermissionDenied, true
	case api.CodeNotFound:
		return KindNotFound, true
	case api.CodeUnsupported:
		return KindUnsupported, true
	case api.CodeSchemaConflict:
		return KindSchemaConflict, true
	case api.CodeInvalidReference:
		return KindInvalidReference, true
	case api.CodeBadRequest:
		return KindRejected, true
	}
	return KindRejected, false
}

// parseRetryAfter extracts the Retry-After header value (RFC 7231).
// Returns 0 if the header is missing or invalid.
func parseRetryAfter(headers http.Header) time.Duration {
	value := headers.Get("Retry-After")
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(value); err == nil {
		if delay := time.Until(t); delay > 0 {
			return delay
		}
	}

	return 0
}

// newStatusError builds the error for a non-2xx reply. A known envelope
// code takes precedence over the status class.
func newStatusError(op string, status int, headers http.Header, env *api.Response, raw []byte) *BackendError {
	kind := kindForStatus(status)
	msg := http.StatusText(status)

	if env != nil && env.Error != nil {
		if k, ok := kindForCode(env.Error.Code); ok {
			kind = k
		}
		if env.Error.Message != "" {
			msg = env.Error.Message
		}
	} else if len(raw) > 0 && len(raw) < 200 {
		msg = string(raw)
	}

	return &BackendError{
		Kind:       kind,
		Operation:  op,
		StatusCode: status,
		Message:    msg,
		RetryAfter: parseRetryAfter(headers),
	}
}

// newEnvelopeError builds the error for a 2xx reply carrying ok:false.
func newEnvelopeError(op string, body *api.ErrorBody) *BackendError {
	e := &BackendError{Kind: KindRejected, Operation: op, Message: "backend returned ok=false"}
	if body == nil {
		return e
	}
	if k, ok := kindForCode(body.Code); ok {
		e.Kind = k
	}
	if body.Message != "" {
		e.Message = body.Message
	}
	return e
}

// asBackendError достает *BackendError из цепочки
func asBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
