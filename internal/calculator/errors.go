package calculator

import "errors"

var (
	// ErrInvalidAmount is returned when the amount text is not a non-negative decimal number.
	ErrInvalidAmount = errors.New("amount must be a non-negative decimal number")

	// ErrInvalidPersonCount is returned when a split is requested for fewer than one person.
	ErrInvalidPersonCount = errors.New("person count must be at least 1")

	// ErrInvalidTipPercentage is returned when a tip percentage falls outside [0, 100].
	ErrInvalidTipPercentage = errors.New("tip percentage must be between 0 and 100")
)
