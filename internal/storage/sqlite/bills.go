package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/tabsplit/tabsplit/internal/models"
)

// CreateBill persists a new bill and its participant list in one transaction.
// The auto-generated integer ID is populated on the model.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO bills (purpose, amount, payer, created_at) VALUES (?, ?, ?, ?)",
		bill.Purpose, bill.Amount, bill.Payer, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get bill id: %w", err)
	}
	bill.ID = id

	for i, name := range bill.Included {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO bill_participants (bill_id, name, position) VALUES (?, ?, ?)",
			bill.ID, name, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bill participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListBills returns every bill with its participants in insertion order.
// Participants keep the order they were submitted with (display order).
func (s *SQLiteStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, purpose, amount, payer, created_at FROM bills ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		var b models.Bill
		if err := rows.Scan(&b.ID, &b.Purpose, &b.Amount, &b.Payer, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for i := range bills {
		included, err := s.billParticipants(ctx, bills[i].ID)
		if err != nil {
			return nil, err
		}
		bills[i].Included = included
	}

	return bills, nil
}

func (s *SQLiteStore) billParticipants(ctx context.Context, billID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM bill_participants WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill participants: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan bill participant: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bill participants: %w", err)
	}

	return names, nil
}
