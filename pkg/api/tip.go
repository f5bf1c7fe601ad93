package api

// CalculateRequest carries the full calculator state on every call.
type CalculateRequest struct {
	// Amount is the raw text from the amount field, unparsed.
	Amount        string  `json:"amount"`
	PersonCount   int32   `json:"person_count"`
	TipPercentage float64 `json:"tip_percentage"`
}

// CalculateResponse holds the derived amounts, already formatted to two decimal places.
type CalculateResponse struct {
	TipAmount       string `json:"tip_amount"`
	TotalAmount     string `json:"total_amount"`
	PerPersonAmount string `json:"per_person_amount"`

	// TipPercentage is the slider label, e.g. "10.00 %".
	TipPercentage string `json:"tip_percentage"`

	// HasAmount is false while the amount field is blank; clients hide
	// the tip and split rows in that case.
	HasAmount bool `json:"has_amount"`

	// AmountValid is false when the amount text could not be parsed
	// and every amount above is zero.
	AmountValid bool `json:"amount_valid"`

	// CurrencyLabel is the prefix clients render before each amount.
	CurrencyLabel string `json:"currency_label"`
}

// AdjustPersonCountRequest moves the person count one step up or down.
type AdjustPersonCountRequest struct {
	PersonCount int32 `json:"person_count"`
	Delta       int32 `json:"delta"` // -1 or +1
}

// AdjustPersonCountResponse returns the new person count, never below 1.
type AdjustPersonCountResponse struct {
	PersonCount int32 `json:"person_count"`
}
