package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/pkg/apperrors"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByEnrolmentNumber retrieves a student by enrolment number
func (r *StudentRepository) GetByEnrolmentNumber(ctx context.Context, enrolmentNumber int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, person_id, enrolment_number, branch_id, current_year, current_semester, start_date
		FROM students
		WHERE enrolment_number = $1`,
		enrolmentNumber).Scan(
		&student.ID, &student.PersonID, &student.EnrolmentNumber, &student.BranchID,
		&student.CurrentYear, &student.CurrentSemester, &student.StartDate)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// GetOrCreate returns the student with the given enrolment number, creating
// the row when absent. The second return reports whether a row was created.
func (r *StudentRepository) GetOrCreate(ctx context.Context, student *models.Student) (*models.Student, bool, error) {
	existing, err := r.GetByEnrolmentNumber(ctx, student.EnrolmentNumber)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, false, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO students (person_id, enrolment_number, branch_id, current_year, current_semester, start_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		student.PersonID, student.EnrolmentNumber, student.BranchID,
		student.CurrentYear, student.CurrentSemester, student.StartDate).Scan(&student.ID)

	if err != nil {
		return nil, false, fmt.Errorf("error creating student: %w", err)
	}

	return student, true, nil
}
