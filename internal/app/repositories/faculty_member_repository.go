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

// FacultyMemberRepository handles faculty member database operations
type FacultyMemberRepository struct {
	db *pgxpool.Pool
}

// NewFacultyMemberRepository creates a new FacultyMemberRepository
func NewFacultyMemberRepository(db *pgxpool.Pool) *FacultyMemberRepository {
	return &FacultyMemberRepository{
		db: db,
	}
}

// GetByEmployeeID retrieves a faculty member by employee ID
func (r *FacultyMemberRepository) GetByEmployeeID(ctx context.Context, employeeID int64) (*models.FacultyMember, error) {
	faculty := &models.FacultyMember{}
	err := r.db.QueryRow(ctx, `
		SELECT id, person_id, employee_id, department_id, designation, start_date
		FROM faculty_members
		WHERE employee_id = $1`,
		employeeID).Scan(
		&faculty.ID, &faculty.PersonID, &faculty.EmployeeID,
		&faculty.DepartmentID, &faculty.Designation, &faculty.StartDate)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyMemberNotFound
		}
		return nil, fmt.Errorf("error getting faculty member: %w", err)
	}

	return faculty, nil
}

// GetOrCreate returns the faculty member with the given employee ID,
// creating the row when absent. The second return reports whether a row was
// created.
func (r *FacultyMemberRepository) GetOrCreate(ctx context.Context, faculty *models.FacultyMember) (*models.FacultyMember, bool, error) {
	existing, err := r.GetByEmployeeID(ctx, faculty.EmployeeID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrFacultyMemberNotFound) {
		return nil, false, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO faculty_members (person_id, employee_id, department_id, designation, start_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		faculty.PersonID, faculty.EmployeeID, faculty.DepartmentID,
		faculty.Designation, faculty.StartDate).Scan(&faculty.ID)

	if err != nil {
		return nil, false, fmt.Errorf("error creating faculty member: %w", err)
	}

	return faculty, true, nil
}
