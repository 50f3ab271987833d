// Package calculator implements the settlement engine: a pure function from
// (people, bills) to net balances and a greedy minimum-transfer settlement
// plan. It performs no I/O and never fails.
package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tabsplit/tabsplit/internal/models"
)

// party is one side of the settlement matching: a person together with their
// outstanding (always positive) amount.
type party struct {
	name   string
	amount float64
}

// ComputeSettlement computes each person's net balance and a greedy
// largest-first settlement plan.
//
// Algorithm:
//   - For each bill: share = amount / |included|, split equally
//   - Each included person except the payer owes the payer one share
//   - Partition balances at ±Epsilon into debtors and creditors
//   - Repeatedly match the largest debtor with the largest creditor until
//     one side is exhausted
//
// The greedy matching is deliberately largest-first, not globally
// transaction-count-optimal. Both sets are re-sorted on every iteration
// because outstanding amounts change as transfers are recorded; the sort is
// stable so ties break by first-seen order.
func ComputeSettlement(people []string, bills []models.Bill) (*Balances, []models.Transfer) {
	balances := NewBalances(people)

	for _, bill := range bills {
		if len(bill.Included) == 0 {
			continue
		}
		share := bill.Amount / float64(len(bill.Included))
		for _, name := range bill.Included {
			if name == bill.Payer {
				continue
			}
			balances.Add(name, -share)
			balances.Add(bill.Payer, share)
		}
	}

	var debtors, creditors []party
	for _, name := range balances.Names() {
		switch bal := balances.Get(name); {
		case bal < -Epsilon:
			debtors = append(debtors, party{name: name, amount: -bal})
		case bal > Epsilon:
			creditors = append(creditors, party{name: name, amount: bal})
		}
	}

	var transfers []models.Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		sort.SliceStable(debtors, func(i, j int) bool {
			return debtors[i].amount > debtors[j].amount
		})
		sort.SliceStable(creditors, func(i, j int) bool {
			return creditors[i].amount > creditors[j].amount
		})

		debtor := &debtors[0]
		creditor := &creditors[0]

		pay := debtor.amount
		if creditor.amount < pay {
			pay = creditor.amount
		}

		transfers = append(transfers, models.Transfer{
			From:   debtor.name,
			To:     creditor.name,
			Amount: roundDisplay(pay),
		})

		// Decrement by the unrounded amount; rounding is display-only.
		debtor.amount -= pay
		creditor.amount -= pay

		if debtor.amount < Epsilon {
			debtors = debtors[1:]
		}
		if creditor.amount < Epsilon {
			creditors = creditors[1:]
		}
	}

	return balances, transfers
}

// roundDisplay rounds an amount to 2 decimal places for presentation.
func roundDisplay(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}
