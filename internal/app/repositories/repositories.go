package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omniport/acadsync/internal/pkg/apperrors"
)

// ErrNotFound is the shared not-found sentinel used across repositories.
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	PersonRepository        *PersonRepository
	StudentRepository       *StudentRepository
	FacultyMemberRepository *FacultyMemberRepository
	ProfileRepository       *ProfileRepository
	DepartmentRepository    *DepartmentRepository
	CentreRepository        *CentreRepository
	ResidenceRepository     *ResidenceRepository
	BranchRepository        *BranchRepository
	SyncBatchRepository     *SyncBatchRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		PersonRepository:        NewPersonRepository(db),
		StudentRepository:       NewStudentRepository(db),
		FacultyMemberRepository: NewFacultyMemberRepository(db),
		ProfileRepository:       NewProfileRepository(db),
		DepartmentRepository:    NewDepartmentRepository(db),
		CentreRepository:        NewCentreRepository(db),
		ResidenceRepository:     NewResidenceRepository(db),
		BranchRepository:        NewBranchRepository(db),
		SyncBatchRepository:     NewSyncBatchRepository(db),
	}
}
