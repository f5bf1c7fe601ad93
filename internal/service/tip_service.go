package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"connectrpc.com/connect"

	"github.com/nehank20/billsplit/internal/calculator"
	"github.com/nehank20/billsplit/internal/metrics"
	"github.com/nehank20/billsplit/internal/middleware"
	"github.com/nehank20/billsplit/internal/models"
	"github.com/nehank20/billsplit/pkg/api"
	"github.com/nehank20/billsplit/pkg/api/apiconnect"
)

// TipService implements the Connect TipService on top of the calculator.
// It holds no per-user state: every request carries the full input.
type TipService struct {
	apiconnect.UnimplementedTipServiceHandler
	currencyLabel string
	metrics       *metrics.Metrics
}

// NewTipService creates a TipService that labels amounts with currencyLabel
// and records outcomes in m.
func NewTipService(currencyLabel string, m *metrics.Metrics) *TipService {
	return &TipService{currencyLabel: currencyLabel, metrics: m}
}

// Calculate derives the tip, total and per-person amounts for one state.
func (s *TipService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	if err := calculator.ValidateTipPercentage(req.Msg.TipPercentage); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	state := models.TipState{
		Amount:        req.Msg.Amount,
		PersonCount:   int(req.Msg.PersonCount),
		TipPercentage: req.Msg.TipPercentage,
	}

	split, err := calculator.Derive(state)
	if err != nil {
		return nil, toConnectError(err)
	}
	s.metrics.ObserveCalculation(split)

	if split.HasAmount && !split.AmountValid {
		slog.Debug("Amount not parseable, using zero",
			"request_id", middleware.GetRequestID(ctx),
			"amount", req.Msg.Amount,
		)
	}

	formatted := calculator.FormatSplit(split)
	slog.Debug("Split derived",
		"request_id", middleware.GetRequestID(ctx),
		"person_count", state.PersonCount,
		"tip_percentage", state.TipPercentage,
		"tip", formatted.TipAmount,
		"total", formatted.TotalAmount,
		"per_person", formatted.PerPersonAmount,
	)

	return connect.NewResponse(&api.CalculateResponse{
		TipAmount:       formatted.TipAmount,
		TotalAmount:     formatted.TotalAmount,
		PerPersonAmount: formatted.PerPersonAmount,
		TipPercentage:   calculator.FormatPercentage(state.TipPercentage),
		HasAmount:       split.HasAmount,
		AmountValid:     split.AmountValid,
		CurrencyLabel:   s.currencyLabel,
	}), nil
}

// AdjustPersonCount steps the person count up or down by one, never below 1.
func (s *TipService) AdjustPersonCount(ctx context.Context, req *connect.Request[api.AdjustPersonCountRequest]) (*connect.Response[api.AdjustPersonCountResponse], error) {
	if req.Msg.Delta != -1 && req.Msg.Delta != 1 {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("delta must be -1 or 1, got %d", req.Msg.Delta))
	}

	next := calculator.AdjustPersonCount(int(req.Msg.PersonCount), int(req.Msg.Delta))
	if next > math.MaxInt32 {
		return nil, connect.NewError(connect.CodeOutOfRange,
			fmt.Errorf("person count %d cannot be increased further", req.Msg.PersonCount))
	}
	return connect.NewResponse(&api.AdjustPersonCountResponse{
		PersonCount: int32(next),
	}), nil
}

// toConnectError maps calculator errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrInvalidPersonCount):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		slog.Error("Calculation failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
