// Package service orchestrates mutations and reads over the persistence
// store and the settlement engine.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tabsplit/tabsplit/internal/calculator"
	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/storage"
)

// The only two recognized domain error kinds. Everything else is an
// infrastructure failure and propagates unwrapped.
var (
	// ErrDuplicatePerson is returned when adding an already-registered name.
	ErrDuplicatePerson = errors.New("person already exists")

	// ErrInvalidBill is returned when bill input fails validation.
	ErrInvalidBill = errors.New("invalid bill")
)

// LedgerService handles person and bill registration and serves the
// recomputed settlement snapshot.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// AddPerson registers a new person by trimmed name.
//
// An empty (or all-whitespace) name is a silent no-op, not an error.
// A duplicate name returns ErrDuplicatePerson and leaves the store unchanged.
func (s *LedgerService) AddPerson(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	person := &models.Person{Name: name, CreatedAt: time.Now().Unix()}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		if errors.Is(err, storage.ErrDuplicatePerson) {
			return fmt.Errorf("%w: %q", ErrDuplicatePerson, name)
		}
		return fmt.Errorf("failed to add person: %w", err)
	}

	slog.Info("Person added", "name", name)
	return nil
}

// AddBill validates and persists a new bill. The creation timestamp is
// captured at submission. On validation failure nothing is written.
func (s *LedgerService) AddBill(ctx context.Context, purpose string, amount float64, payer string, included []string) (*models.Bill, error) {
	purpose = strings.TrimSpace(purpose)
	payer = strings.TrimSpace(payer)

	switch {
	case purpose == "":
		return nil, fmt.Errorf("%w: purpose must not be empty", ErrInvalidBill)
	case amount <= 0:
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidBill)
	case payer == "":
		return nil, fmt.Errorf("%w: payer must be set", ErrInvalidBill)
	case len(included) == 0:
		return nil, fmt.Errorf("%w: at least one participant must be included", ErrInvalidBill)
	}

	bill := &models.Bill{
		Purpose:   purpose,
		Amount:    amount,
		Payer:     payer,
		Included:  included,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.store.CreateBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to add bill: %w", err)
	}

	slog.Info("Bill added",
		"id", bill.ID,
		"purpose", bill.Purpose,
		"amount", bill.Amount,
		"payer", bill.Payer,
		"included", len(bill.Included),
	)
	return bill, nil
}

// People returns every registered person in insertion order.
func (s *LedgerService) People(ctx context.Context) ([]models.Person, error) {
	return s.store.ListPeople(ctx)
}

// Bills returns every bill in insertion order.
func (s *LedgerService) Bills(ctx context.Context) ([]models.Bill, error) {
	return s.store.ListBills(ctx)
}

// Summary re-reads both collections and recomputes balances and the
// settlement plan from scratch. There is no incremental update path.
func (s *LedgerService) Summary(ctx context.Context) (*models.Summary, error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read people: %w", err)
	}
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bills: %w", err)
	}

	names := make([]string, len(people))
	for i, p := range people {
		names[i] = p.Name
	}

	balances, transfers := calculator.ComputeSettlement(names, bills)

	return &models.Summary{
		People:    people,
		Bills:     bills,
		Balances:  balances.Map(),
		Transfers: transfers,
	}, nil
}
