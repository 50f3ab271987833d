package models

// Bill represents a shared expense split equally among its included
// participants.
//
// Payer and Included reference people by name. These are soft references:
// a bill may name someone who was never registered, and the settlement
// engine still accounts for them.
type Bill struct {
	// ID is the auto-generated integer identifier, assigned by the store.
	ID int64 `json:"id"`

	// Purpose is the human-readable description of the expense.
	Purpose string `json:"purpose"`

	// Amount is the full expense amount. Always > 0.
	Amount float64 `json:"amount"`

	// Payer is the name of the person who paid the full amount.
	// The payer does not have to be in Included.
	Payer string `json:"payer"`

	// Included is the non-empty list of names the amount is split among.
	// Order is irrelevant for computation but preserved for display.
	Included []string `json:"included"`

	// CreatedAt is the Unix timestamp captured at submission. Display only.
	CreatedAt int64 `json:"created_at"`
}
