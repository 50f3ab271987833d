package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/storage"
)

// CreatePerson inserts a new person into the database.
// Returns storage.ErrDuplicatePerson if the name is already registered.
func (s *SQLiteStore) CreatePerson(ctx context.Context, person *models.Person) error {
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO people (name, created_at) VALUES (?, ?)",
		person.Name, person.CreatedAt,
	)
	if err != nil {
		// modernc.org/sqlite reports constraint violations by message only
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: %s", storage.ErrDuplicatePerson, person.Name)
		}
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

// ListPeople returns every registered person in insertion order.
func (s *SQLiteStore) ListPeople(ctx context.Context) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, created_at FROM people ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}
