package response

import (
	"net/http"

	appctx "github.com/shelbymodels/auth-service/internal/pkg/context"
)

// RequestIDFromContext extracts the request id set by the RequestID middleware.
func RequestIDFromContext(r *http.Request) string {
	if r == nil {
		return ""
	}
	return appctx.GetRequestID(r.Context())
}
