package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/pkg/apperrors"
	"github.com/omniport/acadsync/internal/pkg/dberrors"
)

// CentreRepository handles centre database operations
type CentreRepository struct {
	db *pgxpool.Pool
}

// NewCentreRepository creates a new CentreRepository
func NewCentreRepository(db *pgxpool.Pool) *CentreRepository {
	return &CentreRepository{db: db}
}

// GetByCode retrieves a centre by its choice code
func (r *CentreRepository) GetByCode(ctx context.Context, code string) (*models.Centre, error) {
	centre := &models.Centre{}
	err := r.db.QueryRow(ctx, `
		SELECT id, code FROM centres WHERE code = $1`,
		code).Scan(&centre.ID, &centre.Code)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCentreNotFound
		}
		return nil, fmt.Errorf("error getting centre by code: %w", err)
	}

	return centre, nil
}

// GetAll retrieves all centres ordered by code
func (r *CentreRepository) GetAll(ctx context.Context) ([]*models.Centre, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code FROM centres ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying centres: %w", err)
	}
	defer rows.Close()

	centres := []*models.Centre{}
	for rows.Next() {
		centre := &models.Centre{}
		if err := rows.Scan(&centre.ID, &centre.Code); err != nil {
			return nil, fmt.Errorf("error scanning centre row: %w", err)
		}
		centres = append(centres, centre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating centre rows: %w", err)
	}

	return centres, nil
}

// CreateIfAbsent inserts a centre row for a code unless it already exists
func (r *CentreRepository) CreateIfAbsent(ctx context.Context, code string) error {
	if _, ok := models.CentreChoices[code]; !ok {
		return fmt.Errorf("%w: centre %q", apperrors.ErrUnknownCode, code)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO centres (code) VALUES ($1) ON CONFLICT (code) DO NOTHING`,
		code)
	if err != nil && !dberrors.IsUniqueViolation(err) {
		return fmt.Errorf("error creating centre: %w", err)
	}

	return nil
}

// ResidenceRepository handles residence database operations
type ResidenceRepository struct {
	db *pgxpool.Pool
}

// NewResidenceRepository creates a new ResidenceRepository
func NewResidenceRepository(db *pgxpool.Pool) *ResidenceRepository {
	return &ResidenceRepository{db: db}
}

// GetOrCreateByCode returns the residence with the given code, creating the
// row when absent.
func (r *ResidenceRepository) GetOrCreateByCode(ctx context.Context, code string) (*models.Residence, error) {
	if _, ok := models.ResidenceChoices[code]; !ok {
		return nil, fmt.Errorf("%w: residence %q", apperrors.ErrUnknownCode, code)
	}

	residence := &models.Residence{}
	err := r.db.QueryRow(ctx, `
		SELECT id, code FROM residences WHERE code = $1`,
		code).Scan(&residence.ID, &residence.Code)

	if err == nil {
		return residence, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error getting residence: %w", err)
	}

	residence = &models.Residence{Code: code}
	err = r.db.QueryRow(ctx, `
		INSERT INTO residences (code) VALUES ($1) RETURNING id`,
		code).Scan(&residence.ID)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return r.GetOrCreateByCode(ctx, code)
		}
		return nil, fmt.Errorf("error creating residence: %w", err)
	}

	return residence, nil
}

// BranchRepository handles branch database operations
type BranchRepository struct {
	db *pgxpool.Pool
}

// NewBranchRepository creates a new BranchRepository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{db: db}
}

// GetByCode retrieves a branch by its ACAD programme code
func (r *BranchRepository) GetByCode(ctx context.Context, code string) (*models.Branch, error) {
	branch := &models.Branch{}
	err := r.db.QueryRow(ctx, `
		SELECT id, code, name FROM branches WHERE code = $1`,
		code).Scan(&branch.ID, &branch.Code, &branch.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error getting branch by code: %w", err)
	}

	return branch, nil
}

// CreateIfAbsent inserts a branch row unless the code already exists
func (r *BranchRepository) CreateIfAbsent(ctx context.Context, branch *models.Branch) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO branches (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
		branch.Code, branch.Name)
	if err != nil && !dberrors.IsUniqueViolation(err) {
		return fmt.Errorf("error creating branch: %w", err)
	}

	return nil
}
