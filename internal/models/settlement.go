package models

// Transfer represents one settlement instruction: From pays Amount to To.
// Transfers are derived by the settlement engine and never persisted.
type Transfer struct {
	// From is the name of the debtor making the payment.
	From string `json:"from"`

	// To is the name of the creditor receiving the payment.
	To string `json:"to"`

	// Amount is the payment amount, rounded to 2 decimal places for display.
	Amount float64 `json:"amount"`
}

// Summary is the full snapshot served to the UI: the persisted collections
// plus the balances and settlement plan recomputed from them.
type Summary struct {
	People    []Person           `json:"people"`
	Bills     []Bill             `json:"bills"`
	Balances  map[string]float64 `json:"balances"`
	Transfers []Transfer         `json:"transfers"`
}
