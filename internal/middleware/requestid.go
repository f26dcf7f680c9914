package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a custom type used for keys in the context.
type ContextKey string

// RequestIDKey is the key under which the request id is stored in the context.
const RequestIDKey ContextKey = "requestID"

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-Id"

// WithRequestID assigns every request a uuid, exposes it in the response
// headers and makes it available to downstream handlers via the context.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
