// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/ivrprompts/internal/ports/secondary"
)

// CampaignRepository implements secondary.CampaignRepository with SQLite.
type CampaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new SQLite campaign repository.
func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// ReplaceAll replaces every stored association with records in one transaction.
func (r *CampaignRepository) ReplaceAll(ctx context.Context, records []*secondary.CampaignRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM campaign_associations"); err != nil {
		return fmt.Errorf("failed to clear campaign associations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO campaign_associations (campaign, flow_file) VALUES (?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Campaign, rec.FlowFile); err != nil {
			return fmt.Errorf("failed to insert campaign association: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit campaign associations: %w", err)
	}
	return nil
}

// List retrieves all stored associations in import order.
func (r *CampaignRepository) List(ctx context.Context) ([]*secondary.CampaignRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT campaign, flow_file, imported_at FROM campaign_associations ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign associations: %w", err)
	}
	defer rows.Close()

	var records []*secondary.CampaignRecord
	for rows.Next() {
		var importedAt time.Time
		record := &secondary.CampaignRecord{}
		if err := rows.Scan(&record.Campaign, &record.FlowFile, &importedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign association: %w", err)
		}
		record.ImportedAt = importedAt.Format(time.RFC3339)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate campaign associations: %w", err)
	}

	return records, nil
}

// Ensure CampaignRepository implements the interface.
var _ secondary.CampaignRepository = (*CampaignRepository)(nil)
