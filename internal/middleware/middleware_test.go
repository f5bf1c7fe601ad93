package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nehank20/billsplit/pkg/api"
	"github.com/nehank20/billsplit/pkg/api/apiconnect"
)

// stubTipService answers Calculate and leaves AdjustPersonCount unimplemented.
type stubTipService struct {
	apiconnect.UnimplementedTipServiceHandler
	seenRequestID string
}

func (s *stubTipService) Calculate(ctx context.Context, _ *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	s.seenRequestID = GetRequestID(ctx)
	return connect.NewResponse(&api.CalculateResponse{TipAmount: "0.00"}), nil
}

func newTestClient(t *testing.T, svc apiconnect.TipServiceHandler, logger *slog.Logger) apiconnect.TipServiceClient {
	t.Helper()
	path, handler := apiconnect.NewTipServiceHandler(svc,
		connect.WithInterceptors(RequestID(), LoggingInterceptor(logger)),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return apiconnect.NewTipServiceClient(http.DefaultClient, server.URL)
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}
	return lines
}

func TestGetRequestIDMissing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestRequestIDReachesHandler(t *testing.T) {
	svc := &stubTipService{}
	client := newTestClient(t, svc, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

	resp, err := client.Calculate(context.Background(), connect.NewRequest(&api.CalculateRequest{}))
	require.NoError(t, err)
	assert.NotEmpty(t, svc.seenRequestID)
	assert.Equal(t, svc.seenRequestID, resp.Header().Get(RequestIDHeader))
}

func TestRequestIDRejectsMalformedHeader(t *testing.T) {
	svc := &stubTipService{}
	client := newTestClient(t, svc, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)))

	req := connect.NewRequest(&api.CalculateRequest{})
	req.Header().Set(RequestIDHeader, "not-a-uuid")
	_, err := client.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", svc.seenRequestID)
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := newTestClient(t, &stubTipService{}, logger)

	_, err := client.Calculate(context.Background(), connect.NewRequest(&api.CalculateRequest{}))
	require.NoError(t, err)
	_, err = client.AdjustPersonCount(context.Background(), connect.NewRequest(&api.AdjustPersonCountRequest{}))
	require.Error(t, err)

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "RPC ok", lines[0]["msg"])
	assert.Equal(t, apiconnect.TipServiceCalculateProcedure, lines[0]["procedure"])
	assert.NotEmpty(t, lines[0]["request_id"])

	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, "RPC error", lines[1]["msg"])
	assert.Equal(t, apiconnect.TipServiceAdjustPersonCountProcedure, lines[1]["procedure"])
	assert.Equal(t, "unimplemented", lines[1]["code"])
}
