// Package apiconnect wires the billsplit.v1.TipService messages in package api
// to Connect handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/nehank20/billsplit/pkg/api"
)

// TipServiceName is the fully-qualified name of the TipService service.
const TipServiceName = "billsplit.v1.TipService"

const (
	// TipServiceCalculateProcedure is the path of the TipService.Calculate RPC.
	TipServiceCalculateProcedure = "/billsplit.v1.TipService/Calculate"
	// TipServiceAdjustPersonCountProcedure is the path of the TipService.AdjustPersonCount RPC.
	TipServiceAdjustPersonCountProcedure = "/billsplit.v1.TipService/AdjustPersonCount"
)

// TipServiceClient is a client for the billsplit.v1.TipService service.
type TipServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	AdjustPersonCount(context.Context, *connect.Request[api.AdjustPersonCountRequest]) (*connect.Response[api.AdjustPersonCountResponse], error)
}

// NewTipServiceClient constructs a client for the billsplit.v1.TipService service.
// The JSON codec is always used; options may add interceptors and the like.
func NewTipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &tipServiceClient{
		calculate: connect.NewClient[api.CalculateRequest, api.CalculateResponse](
			httpClient,
			baseURL+TipServiceCalculateProcedure,
			opts...,
		),
		adjustPersonCount: connect.NewClient[api.AdjustPersonCountRequest, api.AdjustPersonCountResponse](
			httpClient,
			baseURL+TipServiceAdjustPersonCountProcedure,
			opts...,
		),
	}
}

type tipServiceClient struct {
	calculate         *connect.Client[api.CalculateRequest, api.CalculateResponse]
	adjustPersonCount *connect.Client[api.AdjustPersonCountRequest, api.AdjustPersonCountResponse]
}

func (c *tipServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *tipServiceClient) AdjustPersonCount(ctx context.Context, req *connect.Request[api.AdjustPersonCountRequest]) (*connect.Response[api.AdjustPersonCountResponse], error) {
	return c.adjustPersonCount.CallUnary(ctx, req)
}

// TipServiceHandler is implemented by the server side of billsplit.v1.TipService.
type TipServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	AdjustPersonCount(context.Context, *connect.Request[api.AdjustPersonCountRequest]) (*connect.Response[api.AdjustPersonCountResponse], error)
}

// NewTipServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTipServiceHandler(svc TipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	calculateHandler := connect.NewUnaryHandler(
		TipServiceCalculateProcedure,
		svc.Calculate,
		opts...,
	)
	adjustPersonCountHandler := connect.NewUnaryHandler(
		TipServiceAdjustPersonCountProcedure,
		svc.AdjustPersonCount,
		opts...,
	)
	return "/" + TipServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TipServiceCalculateProcedure:
			calculateHandler.ServeHTTP(w, r)
		case TipServiceAdjustPersonCountProcedure:
			adjustPersonCountHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedTipServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedTipServiceHandler struct{}

func (UnimplementedTipServiceHandler) Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billsplit.v1.TipService.Calculate is not implemented"))
}

func (UnimplementedTipServiceHandler) AdjustPersonCount(context.Context, *connect.Request[api.AdjustPersonCountRequest]) (*connect.Response[api.AdjustPersonCountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billsplit.v1.TipService.AdjustPersonCount is not implemented"))
}
