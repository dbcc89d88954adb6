package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/pkg/apperrors"
)

// SyncBatchRepository handles sync batch database operations
type SyncBatchRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSyncBatchRepository creates a new SyncBatchRepository
func NewSyncBatchRepository(db *pgxpool.Pool) *SyncBatchRepository {
	return &SyncBatchRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a started batch row
func (r *SyncBatchRepository) Create(ctx context.Context, batch *models.SyncBatch) error {
	sql, args, err := r.sb.Insert("sync_batches").
		Columns("id", "kind", "started_at", "total", "imported", "failed", "profile_failures").
		Values(batch.ID, batch.Kind, batch.StartedAt, batch.Total, batch.Imported, batch.Failed, batch.ProfileFailures).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build create batch query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating sync batch: %w", err)
	}

	return nil
}

// Finish records the final counts of a batch
func (r *SyncBatchRepository) Finish(ctx context.Context, batch *models.SyncBatch) error {
	sql, args, err := r.sb.Update("sync_batches").
		SetMap(map[string]interface{}{
			"finished_at":      batch.FinishedAt,
			"total":            batch.Total,
			"imported":         batch.Imported,
			"failed":           batch.Failed,
			"profile_failures": batch.ProfileFailures,
		}).
		Where(squirrel.Eq{"id": batch.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("failed to build finish batch query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error finishing sync batch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}

	return nil
}

// GetByID retrieves a batch by its uuid
func (r *SyncBatchRepository) GetByID(ctx context.Context, id string) (*models.SyncBatch, error) {
	sql, args, err := r.sb.Select("id", "kind", "started_at", "finished_at", "total", "imported", "failed", "profile_failures").
		From("sync_batches").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get batch query: %w", err)
	}

	batch := &models.SyncBatch{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&batch.ID, &batch.Kind, &batch.StartedAt, &batch.FinishedAt,
		&batch.Total, &batch.Imported, &batch.Failed, &batch.ProfileFailures)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("error getting sync batch: %w", err)
	}

	return batch, nil
}

// List retrieves batches, most recent first
func (r *SyncBatchRepository) List(ctx context.Context, limit int) ([]*models.SyncBatch, error) {
	sql, args, err := r.sb.Select("id", "kind", "started_at", "finished_at", "total", "imported", "failed", "profile_failures").
		From("sync_batches").
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list batches query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying sync batches: %w", err)
	}
	defer rows.Close()

	batches := []*models.SyncBatch{}
	for rows.Next() {
		batch := &models.SyncBatch{}
		if err := rows.Scan(&batch.ID, &batch.Kind, &batch.StartedAt, &batch.FinishedAt,
			&batch.Total, &batch.Imported, &batch.Failed, &batch.ProfileFailures); err != nil {
			return nil, fmt.Errorf("error scanning sync batch row: %w", err)
		}
		batches = append(batches, batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sync batch rows: %w", err)
	}

	return batches, nil
}
