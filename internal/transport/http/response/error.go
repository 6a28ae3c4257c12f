package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shelbymodels/auth-service/internal/domain"
)

type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteError converts a domain error into a consistent JSON HTTP error response.
// Non-domain errors are treated as internal errors (500) without leaking details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err, statusFromKind)
}

// WriteCredentialError is the error writer for the register and login
// endpoints. Their public contract knows exactly two failure statuses:
// 401 for bad credentials and bad tokens, 400 for everything else,
// store and signing trouble included.
func WriteCredentialError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err, credentialStatus)
}

func writeError(w http.ResponseWriter, r *http.Request, err error, statusFn func(domain.ErrKind) int) {
	code := "internal_error"
	message := "internal error"
	kind := domain.KindInternal
	var meta map[string]string

	var de *domain.Error
	if errors.As(err, &de) {
		kind = de.Kind
		code = de.Code
		message = de.Message
		meta = de.Meta
	}
	status := statusFn(kind)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorBody{
		Error: ErrorPayload{
			Code:      code,
			Message:   message,
			Meta:      meta,
			RequestID: RequestIDFromContext(r),
		},
	})
}

func credentialStatus(kind domain.ErrKind) int {
	if kind == domain.KindAuth {
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

// statusFromKind maps domain error kinds to HTTP status codes.
// Conflict maps to 400: the public contract treats a duplicate email as a
// bad request, not a 409.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
