package calculator

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nehank20/billsplit/internal/models"
)

// MaxTipPercentage is the upper bound of the tip slider.
const MaxTipPercentage = 100.0

// amountPattern accepts plain decimal literals with '.' as the separator:
// "12", "12.5", "12.", ".5". Signs, exponents and grouping are rejected.
var amountPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// ParseAmount interprets raw as a non-negative decimal amount.
// Surrounding whitespace is ignored. On failure it returns 0 together with
// an error wrapping ErrInvalidAmount, so callers that only want the value can
// ignore the error and keep computing with zero.
func ParseAmount(raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if !amountPattern.MatchString(text) {
		return 0, fmt.Errorf("parse amount %q: %w", raw, ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, ErrInvalidAmount)
	}
	amount := d.InexactFloat64()
	// A 100% tip doubles the amount; that total must still be finite.
	if math.IsInf(amount*2, 0) {
		return 0, fmt.Errorf("parse amount %q: out of range: %w", raw, ErrInvalidAmount)
	}
	return amount, nil
}

// AmountOrZero is ParseAmount with the error replaced by a zero amount.
func AmountOrZero(raw string) float64 {
	amount, _ := ParseAmount(raw)
	return amount
}

// TipAmount returns amount × tipPercentage / 100.
// The rate is scaled first so the product cannot overflow for tips up to 100%.
func TipAmount(amount, tipPercentage float64) float64 {
	return amount * (tipPercentage / 100)
}

// TotalAmount returns the amount plus its tip.
func TotalAmount(amount, tipPercentage float64) float64 {
	return amount + TipAmount(amount, tipPercentage)
}

// PerPersonAmount divides the total (amount plus tip) evenly by personCount.
// A personCount below 1 is a caller bug and is reported as ErrInvalidPersonCount.
func PerPersonAmount(amount, tipPercentage float64, personCount int) (float64, error) {
	if personCount < 1 {
		return 0, fmt.Errorf("split between %d people: %w", personCount, ErrInvalidPersonCount)
	}
	return TotalAmount(amount, tipPercentage) / float64(personCount), nil
}

// FormatTwoDecimalPlaces renders value with exactly two fractional digits.
//
// Rounding is half up (half away from zero) on the shortest decimal
// representation of value, so 3.005 renders as "3.01" and 2.675 as "2.68"
// even though neither is exactly representable as a float64.
// NaN and infinities render as "0.00".
func FormatTwoDecimalPlaces(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero.StringFixed(2)
	}
	return decimal.NewFromFloat(value).StringFixed(2)
}

// FormatPercentage renders a tip percentage the way the slider label shows it, e.g. "12.50 %".
func FormatPercentage(tipPercentage float64) string {
	return FormatTwoDecimalPlaces(tipPercentage) + " %"
}

// AdjustPersonCount applies delta to current and never lets the result drop below 1.
// There is no upper bound beyond saturating at math.MaxInt.
func AdjustPersonCount(current, delta int) int {
	if current < 1 {
		current = 1
	}
	if delta > 0 && current > math.MaxInt-delta {
		return math.MaxInt
	}
	next := current + delta
	if next < 1 {
		return 1
	}
	return next
}

// ClampTipPercentage pins p to [0, MaxTipPercentage]. NaN becomes 0.
func ClampTipPercentage(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > MaxTipPercentage:
		return MaxTipPercentage
	default:
		return p
	}
}

// ValidateTipPercentage reports whether p lies in [0, MaxTipPercentage].
func ValidateTipPercentage(p float64) error {
	if math.IsNaN(p) || p < 0 || p > MaxTipPercentage {
		return fmt.Errorf("tip percentage %v: %w", p, ErrInvalidTipPercentage)
	}
	return nil
}

// Derive computes the split for state.
//
// A blank or malformed amount is treated as zero: the returned split has all
// amounts at zero and HasAmount/AmountValid tell the caller why. The tip is
// clamped to [0, 100]. The only error is a PersonCount below 1.
func Derive(state models.TipState) (models.TipSplit, error) {
	amount, parseErr := ParseAmount(state.Amount)
	tip := ClampTipPercentage(state.TipPercentage)

	perPerson, err := PerPersonAmount(amount, tip, state.PersonCount)
	if err != nil {
		return models.TipSplit{}, err
	}

	return models.TipSplit{
		TipAmount:       TipAmount(amount, tip),
		TotalAmount:     TotalAmount(amount, tip),
		PerPersonAmount: perPerson,
		HasAmount:       strings.TrimSpace(state.Amount) != "",
		AmountValid:     parseErr == nil,
	}, nil
}

// FormatSplit renders every amount of split to two decimal places.
func FormatSplit(split models.TipSplit) models.FormattedSplit {
	return models.FormattedSplit{
		TipAmount:       FormatTwoDecimalPlaces(split.TipAmount),
		TotalAmount:     FormatTwoDecimalPlaces(split.TotalAmount),
		PerPersonAmount: FormatTwoDecimalPlaces(split.PerPersonAmount),
	}
}
