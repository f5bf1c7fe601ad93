package middleware

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// RequestIDKey is the context key for the per-call request ID.
const RequestIDKey contextKey = "request_id"

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// RequestID returns a Connect interceptor that tags every call with a request ID.
// A well-formed UUID sent by the client in X-Request-Id is reused; anything
// else is replaced with a fresh one. The ID is echoed back on success and on
// error responses.
func RequestID() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			id := req.Header().Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			ctx = context.WithValue(ctx, RequestIDKey, id)

			resp, err := next(ctx, req)
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(RequestIDHeader, id)
				}
				return resp, err
			}
			resp.Header().Set(RequestIDHeader, id)
			return resp, nil
		}
	}
}
