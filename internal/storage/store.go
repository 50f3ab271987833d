// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/tabsplit/tabsplit/internal/models"
)

// ErrDuplicatePerson is returned when inserting a person whose name is
// already registered.
var ErrDuplicatePerson = errors.New("person already exists")

// Store defines the interface for people and bill storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreatePerson persists a new person.
	// Returns ErrDuplicatePerson if the name is already registered.
	CreatePerson(ctx context.Context, person *models.Person) error

	// ListPeople returns every registered person in insertion order.
	ListPeople(ctx context.Context) ([]models.Person, error)

	// CreateBill persists a new bill and its participant list.
	// The bill.ID field will be populated by the store.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// ListBills returns every bill with its participants in insertion order.
	ListBills(ctx context.Context) ([]models.Bill, error)

	// Close releases any resources held by the store.
	Close() error
}
