package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/omniport/acadsync/internal/acad"
	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/pkg/apperrors"
)

type fakeFetcher struct {
	students []acad.Record
	faculty  []acad.Record
	err      error
}

func (f *fakeFetcher) FetchStudents(context.Context) ([]acad.Record, error) {
	return f.students, f.err
}

func (f *fakeFetcher) FetchFaculty(context.Context) ([]acad.Record, error) {
	return f.faculty, f.err
}

type fakeBatchStore struct {
	created  *models.SyncBatch
	finished *models.SyncBatch
}

func (s *fakeBatchStore) Create(_ context.Context, batch *models.SyncBatch) error {
	copied := *batch
	s.created = &copied
	return nil
}

func (s *fakeBatchStore) Finish(_ context.Context, batch *models.SyncBatch) error {
	copied := *batch
	s.finished = &copied
	return nil
}

func (s *fakeBatchStore) GetByID(_ context.Context, id string) (*models.SyncBatch, error) {
	if s.finished != nil && s.finished.ID == id {
		return s.finished, nil
	}
	return nil, apperrors.ErrBatchNotFound
}

func (s *fakeBatchStore) List(context.Context, int) ([]*models.SyncBatch, error) {
	if s.finished == nil {
		return []*models.SyncBatch{}, nil
	}
	return []*models.SyncBatch{s.finished}, nil
}

func studentRecord(enrolment, semester string) acad.Record {
	return acad.Record{
		"EnrollmentNo": enrolment,
		"Name":         "Some Student",
		"SemesterID":   semester,
		"ProgramID":    "BT-CSE",
		"EmailID":      enrolment + "@example.com",
	}
}

func TestRunStudentSyncCountsOutcomes(t *testing.T) {
	f := newImportFixture()
	fetcher := &fakeFetcher{students: []acad.Record{
		studentRecord("21114001", "110"),
		studentRecord("21114002", "bad"),
		studentRecord("21114003", "121"),
	}}
	batches := &fakeBatchStore{}

	syncService := NewSyncService(fetcher, batches, f.service, zerolog.Nop())
	syncService.now = func() time.Time {
		return time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	}

	batch, err := syncService.RunStudentSync(context.Background())
	if err != nil {
		t.Fatalf("RunStudentSync returned error: %v", err)
	}

	if batch.Kind != models.SyncKindStudents {
		t.Errorf("kind = %q, want %q", batch.Kind, models.SyncKindStudents)
	}
	if batch.Total != 3 || batch.Imported != 2 || batch.Failed != 1 {
		t.Errorf("total/imported/failed = %d/%d/%d, want 3/2/1", batch.Total, batch.Imported, batch.Failed)
	}
	if batch.FinishedAt == nil {
		t.Error("batch has no finish time")
	}
	if batches.created == nil || batches.finished == nil {
		t.Fatal("batch was not persisted on both create and finish")
	}
	if batches.finished.Imported != 2 {
		t.Errorf("persisted imported = %d, want 2", batches.finished.Imported)
	}
	if len(f.students.students) != 2 {
		t.Errorf("created %d students, want 2", len(f.students.students))
	}
}

func TestRunStudentSyncCountsProfileFailures(t *testing.T) {
	f := newImportFixture()
	f.profiles.failContact = true
	fetcher := &fakeFetcher{students: []acad.Record{
		studentRecord("21114001", "110"),
	}}
	batches := &fakeBatchStore{}

	syncService := NewSyncService(fetcher, batches, f.service, zerolog.Nop())

	batch, err := syncService.RunStudentSync(context.Background())
	if err != nil {
		t.Fatalf("RunStudentSync returned error: %v", err)
	}

	if batch.Imported != 1 {
		t.Errorf("imported = %d, want 1", batch.Imported)
	}
	if batch.ProfileFailures != 1 {
		t.Errorf("profile failures = %d, want 1", batch.ProfileFailures)
	}
}

func TestRunFacultySyncFetchErrorAborts(t *testing.T) {
	f := newImportFixture()
	fetcher := &fakeFetcher{err: apperrors.ErrAcadRequest}
	batches := &fakeBatchStore{}

	syncService := NewSyncService(fetcher, batches, f.service, zerolog.Nop())

	if _, err := syncService.RunFacultySync(context.Background()); err == nil {
		t.Fatal("RunFacultySync succeeded despite fetch error")
	}
	if batches.created != nil {
		t.Error("batch row was created for an aborted pull")
	}
}
