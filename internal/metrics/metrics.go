// Package metrics exposes Prometheus collectors for the tip calculator service.
package metrics

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nehank20/billsplit/internal/models"
)

const namespace = "billsplit"

// Calculation outcomes used as the "outcome" label.
const (
	OutcomeOK            = "ok"
	OutcomeBlank         = "blank"
	OutcomeInvalidAmount = "invalid_amount"
)

// Metrics holds the service collectors. All methods are safe for concurrent use.
type Metrics struct {
	calculations  *prometheus.CounterVec
	parseFailures prometheus.Counter
	rpcRequests   *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Bill splits derived, by outcome.",
		}, []string{"outcome"}),
		parseFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "amount_parse_failures_total",
			Help:      "Non-blank amounts that could not be parsed and fell back to zero.",
		}),
		rpcRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Connect RPCs handled, by procedure and code.",
		}, []string{"procedure", "code"}),
		rpcDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"procedure"}),
	}
}

// ObserveCalculation records the outcome of one derived split.
func (m *Metrics) ObserveCalculation(split models.TipSplit) {
	switch {
	case !split.HasAmount:
		m.calculations.WithLabelValues(OutcomeBlank).Inc()
	case !split.AmountValid:
		m.calculations.WithLabelValues(OutcomeInvalidAmount).Inc()
		m.parseFailures.Inc()
	default:
		m.calculations.WithLabelValues(OutcomeOK).Inc()
	}
}

// Interceptor returns a Connect interceptor that counts and times every RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure
			start := time.Now()

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.rpcRequests.WithLabelValues(procedure, code).Inc()
			m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}
