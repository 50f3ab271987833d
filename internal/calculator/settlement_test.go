package calculator

import (
	"math"
	"testing"

	"github.com/tabsplit/tabsplit/internal/models"
)

func TestComputeSettlement(t *testing.T) {
	tests := []struct {
		name         string
		people       []string
		bills        []models.Bill
		validateFunc func(t *testing.T, balances *Balances, transfers []models.Transfer)
	}{
		{
			name:   "two people one bill",
			people: []string{"A", "B"},
			bills: []models.Bill{
				{Purpose: "Dinner", Amount: 100, Payer: "A", Included: []string{"A", "B"}},
			},
			validateFunc: func(t *testing.T, balances *Balances, transfers []models.Transfer) {
				if got := balances.Get("A"); math.Abs(got-50) > Epsilon {
					t.Errorf("A balance = %v, want 50", got)
				}
				if got := balances.Get("B"); math.Abs(got+50) > Epsilon {
					t.Errorf("B balance = %v, want -50", got)
				}
				if len(transfers) != 1 {
					t.Fatalf("got %d transfers, want 1", len(transfers))
				}
				want := models.Transfer{From: "B", To: "A", Amount: 50.00}
				if transfers[0] != want {
					t.Errorf("transfer = %+v, want %+v", transfers[0], want)
				}
			},
		},
		{
			name:   "three people one payer",
			people: []string{"A", "B", "C"},
			bills: []models.Bill{
				{Purpose: "Groceries", Amount: 90, Payer: "A", Included: []string{"A", "B", "C"}},
			},
			validateFunc: func(t *testing.T, balances *Balances, transfers []models.Transfer) {
				if got := balances.Get("A"); math.Abs(got-60) > Epsilon {
					t.Errorf("A balance = %v, want 60", got)
				}
				for _, name := range []string{"B", "C"} {
					if got := balances.Get(name); math.Abs(got+30) > Epsilon {
						t.Errorf("%s balance = %v, want -30", name, got)
					}
				}
				if len(transfers) != 2 {
					t.Fatalf("got %d transfers, want 2", len(transfers))
				}
				for _, tr := range transfers {
					if tr.To != "A" {
						t.Errorf("transfer to %s, want A", tr.To)
					}
					if math.Abs(tr.Amount-30) > Epsilon {
						t.Errorf("transfer amount = %v, want 30.00", tr.Amount)
					}
				}
				if transfers[0].From == transfers[1].From {
					t.Errorf("both transfers from %s", transfers[0].From)
				}
			},
		},
		{
			name:   "payer only included person is a no-op",
			people: []string{"A", "B"},
			bills: []models.Bill{
				{Purpose: "Solo lunch", Amount: 25, Payer: "A", Included: []string{"A"}},
			},
			validateFunc: func(t *testing.T, balances *Balances, transfers []models.Transfer) {
				for _, name := range balances.Names() {
					if got := balances.Get(name); got != 0 {
						t.Errorf("%s balance = %v, want 0", name, got)
					}
				}
				if len(transfers) != 0 {
					t.Errorf("got %d transfers, want 0", len(transfers))
				}
			},
		},
		{
			name:   "payer outside included set",
			people: []string{"A", "B", "C"},
			bills: []models.Bill{
				{Purpose: "Taxi", Amount: 30, Payer: "C", Included: []string{"A", "B"}},
			},
			validateFunc: func(t *testing.T, balances *Balances, transfers []models.Transfer) {
				if got := balances.Get("C"); math.Abs(got-30) > Epsilon {
					t.Errorf("C balance = %v, want 30", got)
				}
				for _, name := range []string{"A", "B"} {
					if got := balances.Get(name); math.Abs(got+15) > Epsilon {
						t.Errorf("%s balance = %v, want -15", name, got)
					}
				}
			},
		},
		{
			name:   "balance map grows for unregistered names",
			people: []string{"A"},
			bills: []models.Bill{
				{Purpose: "Drinks", Amount: 40, Payer: "A", Included: []string{"A", "Guest"}},
			},
			validateFunc: func(t *testing.T, balances *Balances, transfers []models.Transfer) {
				if got := balances.Get("Guest"); math.Abs(got+20) > Epsilon {
					t.Errorf("Guest balance = %v, want -20", got)
				}
				if len(transfers) != 1 || transfers[0].From != "Guest" || transfers[0].To != "A" {
					t.Errorf("unexpected transfers: %+v", transfers)
				}
			},
		},
		{
			name:   "empty inputs produce empty outputs",
			people: nil,
			bills:  nil,
			validateFunc: func(t *testing.T, balances *Balances, transfers []models.Transfer) {
				if len(balances.Names()) != 0 {
					t.Errorf("got %d balances, want 0", len(balances.Names()))
				}
				if len(transfers) != 0 {
					t.Errorf("got %d transfers, want 0", len(transfers))
				}
			},
		},
		{
			name:   "largest debtor matched with largest creditor first",
			people: []string{"A", "B", "C", "D"},
			bills: []models.Bill{
				{Purpose: "Hotel", Amount: 120, Payer: "A", Included: []string{"B", "C"}},
				{Purpose: "Gas", Amount: 20, Payer: "D", Included: []string{"C"}},
			},
			validateFunc: func(t *testing.T, balances *Balances, transfers []models.Transfer) {
				// Balances: A +120, D +20, B -60, C -80.
				// C (80) pays A (120) first, then B pays A 40, then B pays D 20.
				if len(transfers) != 3 {
					t.Fatalf("got %d transfers, want 3: %+v", len(transfers), transfers)
				}
				first := transfers[0]
				if first.From != "C" || first.To != "A" || math.Abs(first.Amount-80) > Epsilon {
					t.Errorf("first transfer = %+v, want C pays 80.00 to A", first)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, transfers := ComputeSettlement(tt.people, tt.bills)
			tt.validateFunc(t, balances, transfers)
		})
	}
}

// TestBalanceConservation checks that every split is zero-sum: the balances
// over all names always sum to zero.
func TestBalanceConservation(t *testing.T) {
	people := []string{"A", "B", "C", "D"}
	bills := []models.Bill{
		{Purpose: "Rent", Amount: 1234.56, Payer: "A", Included: []string{"A", "B", "C"}},
		{Purpose: "Pizza", Amount: 33.33, Payer: "B", Included: []string{"A", "B", "C", "D"}},
		{Purpose: "Tickets", Amount: 77.7, Payer: "C", Included: []string{"D"}},
		{Purpose: "Coffee", Amount: 9.99, Payer: "D", Included: []string{"A", "Eve"}},
	}

	balances, _ := ComputeSettlement(people, bills)

	var sum float64
	for _, name := range balances.Names() {
		sum += balances.Get(name)
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("balances sum to %v, want 0", sum)
	}
}

// TestSettlementZeroesBalances applies every transfer in the plan back to the
// computed balances and checks everyone ends up within Epsilon of zero.
func TestSettlementZeroesBalances(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E"}
	bills := []models.Bill{
		{Purpose: "Dinner", Amount: 100, Payer: "A", Included: []string{"A", "B", "C"}},
		{Purpose: "Drinks", Amount: 60.5, Payer: "B", Included: []string{"B", "C", "D", "E"}},
		{Purpose: "Cab", Amount: 27.8, Payer: "E", Included: []string{"A", "D"}},
		{Purpose: "Brunch", Amount: 45.99, Payer: "C", Included: []string{"A", "B", "C", "D", "E"}},
	}

	balances, transfers := ComputeSettlement(people, bills)

	remaining := balances.Map()
	for _, tr := range transfers {
		remaining[tr.From] += tr.Amount
		remaining[tr.To] -= tr.Amount
	}
	for name, bal := range remaining {
		// Transfers are rounded to 2 dp, so allow twice the threshold.
		if math.Abs(bal) > 2*Epsilon {
			t.Errorf("%s left with balance %v after settlement", name, bal)
		}
	}
}

// TestSettlementTransferBound checks the standard greedy bound: no more than
// debtors + creditors - 1 transfers.
func TestSettlementTransferBound(t *testing.T) {
	people := []string{"A", "B", "C", "D", "E", "F"}
	bills := []models.Bill{
		{Purpose: "One", Amount: 91, Payer: "A", Included: []string{"B", "C", "D"}},
		{Purpose: "Two", Amount: 53, Payer: "B", Included: []string{"D", "E", "F"}},
		{Purpose: "Three", Amount: 17, Payer: "F", Included: []string{"A", "B"}},
	}

	balances, transfers := ComputeSettlement(people, bills)

	var debtors, creditors int
	for _, name := range balances.Names() {
		switch bal := balances.Get(name); {
		case bal < -Epsilon:
			debtors++
		case bal > Epsilon:
			creditors++
		}
	}

	if max := debtors + creditors - 1; len(transfers) > max {
		t.Errorf("got %d transfers, greedy bound is %d", len(transfers), max)
	}
}

func TestComputeSettlementDeterministic(t *testing.T) {
	people := []string{"A", "B", "C"}
	bills := []models.Bill{
		{Purpose: "Dinner", Amount: 90, Payer: "A", Included: []string{"A", "B", "C"}},
	}

	_, first := ComputeSettlement(people, bills)
	for i := 0; i < 10; i++ {
		_, again := ComputeSettlement(people, bills)
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d transfers, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: transfer %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestRoundDisplay(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{33.333333333333336, 33.33},
		{16.666666666666668, 16.67},
		{50.0, 50.0},
		{0.005, 0.01},
	}
	for _, tt := range tests {
		if got := roundDisplay(tt.in); got != tt.want {
			t.Errorf("roundDisplay(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
