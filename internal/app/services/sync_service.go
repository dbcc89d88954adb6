package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/omniport/acadsync/internal/acad"
	"github.com/omniport/acadsync/internal/app/models"
)

// recordFetcher pulls raw records from the ACAD API.
type recordFetcher interface {
	FetchStudents(ctx context.Context) ([]acad.Record, error)
	FetchFaculty(ctx context.Context) ([]acad.Record, error)
}

// batchStore persists sync batch reports.
type batchStore interface {
	Create(ctx context.Context, batch *models.SyncBatch) error
	Finish(ctx context.Context, batch *models.SyncBatch) error
	GetByID(ctx context.Context, id string) (*models.SyncBatch, error)
	List(ctx context.Context, limit int) ([]*models.SyncBatch, error)
}

// SyncService pulls full record sets from ACAD and imports them record by
// record. A record that fails hard is counted and logged, never allowed to
// abort the rest of the batch.
type SyncService struct {
	fetcher  recordFetcher
	batches  batchStore
	importer *ImportService
	logger   zerolog.Logger

	now func() time.Time
}

// NewSyncService creates a new sync service instance
func NewSyncService(fetcher recordFetcher, batches batchStore, importer *ImportService, lgr zerolog.Logger) *SyncService {
	return &SyncService{
		fetcher:  fetcher,
		batches:  batches,
		importer: importer,
		logger:   lgr,
		now:      time.Now,
	}
}

// RunStudentSync pulls and imports all student records.
func (s *SyncService) RunStudentSync(ctx context.Context) (*models.SyncBatch, error) {
	return s.run(ctx, models.SyncKindStudents, s.fetcher.FetchStudents, s.importer.ImportStudentRecord)
}

// RunFacultySync pulls and imports all faculty records.
func (s *SyncService) RunFacultySync(ctx context.Context) (*models.SyncBatch, error) {
	return s.run(ctx, models.SyncKindFaculty, s.fetcher.FetchFaculty, s.importer.ImportFacultyRecord)
}

func (s *SyncService) run(
	ctx context.Context,
	kind string,
	fetch func(context.Context) ([]acad.Record, error),
	importRecord func(context.Context, acad.Record) (*ImportResult, error),
) (*models.SyncBatch, error) {
	batch := &models.SyncBatch{
		ID:        uuid.New().String(),
		Kind:      kind,
		StartedAt: s.now(),
	}

	records, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s records: %w", kind, err)
	}

	batch.Total = len(records)
	if err := s.batches.Create(ctx, batch); err != nil {
		return nil, fmt.Errorf("error recording sync batch: %w", err)
	}

	s.logger.Info().Str("batchID", batch.ID).Str("kind", kind).Int("total", batch.Total).Msg("Starting sync batch")

	for _, record := range records {
		result, err := importRecord(ctx, record)
		if err != nil {
			batch.Failed++
			s.logger.Warn().Err(err).Str("batchID", batch.ID).Str("kind", kind).Msg("Record import failed")
			continue
		}

		batch.Imported++
		batch.ProfileFailures += len(result.ProfileFailures)
		if len(result.ProfileFailures) > 0 {
			s.logger.Warn().
				Str("batchID", batch.ID).
				Str("username", result.Username).
				Strs("profiles", result.ProfileFailures).
				Msg("Record imported with sub-profile failures")
		}
	}

	finishedAt := s.now()
	batch.FinishedAt = &finishedAt
	if err := s.batches.Finish(ctx, batch); err != nil {
		return nil, fmt.Errorf("error finishing sync batch: %w", err)
	}

	s.logger.Info().
		Str("batchID", batch.ID).
		Str("kind", kind).
		Int("imported", batch.Imported).
		Int("failed", batch.Failed).
		Int("profileFailures", batch.ProfileFailures).
		Msg("Sync batch finished")

	return batch, nil
}

// GetBatch retrieves a single batch report by its id.
func (s *SyncService) GetBatch(ctx context.Context, id string) (*models.SyncBatch, error) {
	return s.batches.GetByID(ctx, id)
}

// ListBatches retrieves recent batch reports.
func (s *SyncService) ListBatches(ctx context.Context, limit int) ([]*models.SyncBatch, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.batches.List(ctx, limit)
}
