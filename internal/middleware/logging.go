package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs one line per RPC
// with the procedure, request ID, peer address and duration. Failures carrying
// a Connect code log at WARN with that code; any other error logs at ERROR.
// A nil logger means slog.Default().
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			log := logger
			if log == nil {
				log = slog.Default()
			}
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("request_id", GetRequestID(ctx)),
				slog.String("peer", req.Peer().Addr),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				log.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
			case errors.As(err, &connectErr):
				attrs = append(attrs,
					slog.String("code", connectErr.Code().String()),
					slog.String("error", connectErr.Message()),
				)
				log.LogAttrs(ctx, slog.LevelWarn, "RPC error", attrs...)
			default:
				attrs = append(attrs, slog.Any("error", err))
				log.LogAttrs(ctx, slog.LevelError, "RPC error", attrs...)
			}

			return resp, err
		}
	}
}
