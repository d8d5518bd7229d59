package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/ivrprompts/internal/ports/secondary"
)

// PromptIndexRepository implements secondary.PromptIndexRepository with SQLite.
type PromptIndexRepository struct {
	db *sql.DB
}

// NewPromptIndexRepository creates a new SQLite prompt index repository.
func NewPromptIndexRepository(db *sql.DB) *PromptIndexRepository {
	return &PromptIndexRepository{db: db}
}

// CreateRun persists a new index run.
func (r *PromptIndexRepository) CreateRun(ctx context.Context, run *secondary.IndexRunRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO index_runs (id, flows_indexed, flows_failed) VALUES (?, ?, ?)",
		run.ID, run.FlowsIndexed, run.FlowsFailed,
	)
	if err != nil {
		return fmt.Errorf("failed to create index run: %w", err)
	}
	return nil
}

// FinishRun stores the final counters of a run.
func (r *PromptIndexRepository) FinishRun(ctx context.Context, run *secondary.IndexRunRecord) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE index_runs SET flows_indexed = ?, flows_failed = ? WHERE id = ?",
		run.FlowsIndexed, run.FlowsFailed, run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish index run: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("index run %s not found", run.ID)
	}
	return nil
}

// ReplaceFlow replaces the indexed occurrences of one flow file. Records keep
// their slice order as scan order.
func (r *PromptIndexRepository) ReplaceFlow(ctx context.Context, runID, flowFile string, records []*secondary.PromptOccurrenceRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM prompt_occurrences WHERE flow_file = ?", flowFile); err != nil {
		return fmt.Errorf("failed to clear occurrences for %s: %w", flowFile, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO prompt_occurrences
			(run_id, flow_file, seq, prompt_id, prompt_name, module, prompt_type, status, audio_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.ExecContext(ctx,
			runID, flowFile, i, rec.PromptID, rec.PromptName, rec.Module, rec.PromptType, rec.Status, rec.AudioFile,
		)
		if err != nil {
			return fmt.Errorf("failed to insert occurrence of prompt %s: %w", rec.PromptID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit occurrences for %s: %w", flowFile, err)
	}
	return nil
}

// ListDuplicates returns the distinct locations of every prompt ID cited from more
// than one flow/module location.
func (r *PromptIndexRepository) ListDuplicates(ctx context.Context) ([]*secondary.PromptOccurrenceRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT prompt_id, MIN(prompt_name), flow_file, module
		FROM prompt_occurrences
		WHERE prompt_id IN (
			SELECT prompt_id FROM prompt_occurrences
			GROUP BY prompt_id
			HAVING COUNT(DISTINCT flow_file || char(31) || module) > 1
		)
		GROUP BY prompt_id, flow_file, module
		ORDER BY prompt_id ASC, flow_file ASC, module ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list duplicate prompts: %w", err)
	}
	defer rows.Close()

	var records []*secondary.PromptOccurrenceRecord
	for rows.Next() {
		record := &secondary.PromptOccurrenceRecord{}
		if err := rows.Scan(&record.PromptID, &record.PromptName, &record.FlowFile, &record.Module); err != nil {
			return nil, fmt.Errorf("failed to scan duplicate prompt: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate duplicate prompts: %w", err)
	}

	return records, nil
}

// Ensure PromptIndexRepository implements the interface.
var _ secondary.PromptIndexRepository = (*PromptIndexRepository)(nil)
