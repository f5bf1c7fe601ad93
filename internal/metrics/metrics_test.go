package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nehank20/billsplit/internal/models"
)

func TestObserveCalculation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCalculation(models.TipSplit{HasAmount: true, AmountValid: true, TotalAmount: 10})
	m.ObserveCalculation(models.TipSplit{HasAmount: true, AmountValid: true})
	m.ObserveCalculation(models.TipSplit{})
	m.ObserveCalculation(models.TipSplit{HasAmount: true})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeBlank)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculations.WithLabelValues(OutcomeInvalidAmount)))

	expected := `
# HELP billsplit_amount_parse_failures_total Non-blank amounts that could not be parsed and fell back to zero.
# TYPE billsplit_amount_parse_failures_total counter
billsplit_amount_parse_failures_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "billsplit_amount_parse_failures_total"))
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
