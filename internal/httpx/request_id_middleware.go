package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// headerRequestID is echoed on every response so clients can quote the id
// when reporting a failure.
const headerRequestID = "X-Request-Id"

// RequestIDMiddleware tags the request with the caller's id, minting one
// when none was sent.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)

		next.ServeHTTP(w, r.WithContext(ContextWithRequestID(r.Context(), id)))
	})
}
