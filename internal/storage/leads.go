package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hardhatlabs/hardhat/internal/common"
	"github.com/hardhatlabs/hardhat/internal/model"
)

// ReplaceLeads swaps the stored snapshot for the given one inside a single
// transaction. Position records input order, which is what stable sorting
// uses for tie-breaking, so GetLeads can reproduce the exact normalizer
// output ordering. An empty slice is a valid snapshot.
func (s *SQLiteStorage) ReplaceLeads(ctx context.Context, leads []model.Lead) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateLeads(leads); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM leads"); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO leads (
			id, position, cost, category, description,
			street_number, street_name, contact_name, contact_type,
			issued_at, status, total_fee, zip
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, lead := range leads {
		var issuedAt any
		if lead.HasIssueDate() {
			issuedAt = lead.IssuedAt
		}

		if _, err := stmt.ExecContext(ctx,
			lead.ID, i, lead.Cost, lead.Category, lead.Description,
			lead.StreetNumber, lead.StreetName, lead.ContactName, lead.ContactType,
			issuedAt, lead.Status, lead.TotalFee, lead.Zip,
		); err != nil {
			return fmt.Errorf("failed to insert lead %s: %w", lead.ID, err)
		}
	}

	return tx.Commit()
}

const leadColumns = `id, cost, category, description,
	street_number, street_name, contact_name, contact_type,
	issued_at, status, total_fee, zip`

// GetLeads returns the full stored snapshot in original import order.
func (s *SQLiteStorage) GetLeads(ctx context.Context) ([]model.Lead, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+leadColumns+" FROM leads ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var leads []model.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leads: %w", err)
	}

	return leads, nil
}

// GetLeadByID returns a single lead from the snapshot.
func (s *SQLiteStorage) GetLeadByID(ctx context.Context, id string) (*model.Lead, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT "+leadColumns+" FROM leads WHERE id = ?", id)

	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lead %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// CountLeads returns the number of rows in the stored snapshot.
func (s *SQLiteStorage) CountLeads(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM leads").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (model.Lead, error) {
	var lead model.Lead
	var issuedAt sql.NullTime

	err := row.Scan(
		&lead.ID, &lead.Cost, &lead.Category, &lead.Description,
		&lead.StreetNumber, &lead.StreetName, &lead.ContactName, &lead.ContactType,
		&issuedAt, &lead.Status, &lead.TotalFee, &lead.Zip,
	)
	if err == sql.ErrNoRows {
		return lead, err
	}
	if err != nil {
		return lead, fmt.Errorf("failed to scan lead: %w", err)
	}

	if issuedAt.Valid {
		lead.IssuedAt = issuedAt.Time
	}
	return lead, nil
}
