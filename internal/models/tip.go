package models

// TipState holds the user-adjustable inputs of a bill split.
type TipState struct {
	// Amount is the raw bill amount as typed by the user.
	// It may be empty or not a number at all; the calculator treats
	// anything it cannot parse as zero.
	Amount string

	// PersonCount is the number of people sharing the bill. Minimum 1.
	PersonCount int

	// TipPercentage is the gratuity rate in the range [0, 100].
	TipPercentage float64
}

// NewTipState returns the state a fresh screen starts with:
// no amount, one person, no tip.
func NewTipState() TipState {
	return TipState{PersonCount: 1}
}

// TipSplit is the result derived from a TipState.
type TipSplit struct {
	// TipAmount is Amount × TipPercentage / 100.
	TipAmount float64

	// TotalAmount is the base amount plus the tip.
	TotalAmount float64

	// PerPersonAmount is TotalAmount divided evenly by PersonCount.
	PerPersonAmount float64

	// HasAmount reports whether any amount text was entered.
	// Callers hide the tip and split rows while this is false.
	HasAmount bool

	// AmountValid reports whether the entered text parsed as an amount.
	// When false every amount above is zero.
	AmountValid bool
}

// FormattedSplit is a TipSplit with every amount rendered to two decimal places.
type FormattedSplit struct {
	TipAmount       string
	TotalAmount     string
	PerPersonAmount string
}
