package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omniport/acadsync/internal/app/models"
	"github.com/omniport/acadsync/internal/pkg/apperrors"
)

// PersonRepository handles person database operations
type PersonRepository struct {
	db *pgxpool.Pool
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(db *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{
		db: db,
	}
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	person := &models.Person{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, full_name, created_at, updated_at
		FROM persons
		WHERE id = $1`,
		id).Scan(&person.ID, &person.UserID, &person.FullName, &person.CreatedAt, &person.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("error getting person by ID: %w", err)
	}

	return person, nil
}

// GetOrCreate returns the person linked to the given user with the given
// full name, creating the row when absent. The second return reports whether
// a row was created.
func (r *PersonRepository) GetOrCreate(ctx context.Context, userID int64, fullName string) (*models.Person, bool, error) {
	person := &models.Person{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, full_name, created_at, updated_at
		FROM persons
		WHERE user_id = $1 AND full_name = $2`,
		userID, fullName).Scan(&person.ID, &person.UserID, &person.FullName, &person.CreatedAt, &person.UpdatedAt)

	if err == nil {
		return person, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("error getting person: %w", err)
	}

	person = &models.Person{UserID: &userID, FullName: fullName}
	err = r.db.QueryRow(ctx, `
		INSERT INTO persons (user_id, full_name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`,
		userID, fullName).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)

	if err != nil {
		return nil, false, fmt.Errorf("error creating person: %w", err)
	}

	return person, true, nil
}

// Create creates a person with no linked user. Used for guardians.
func (r *PersonRepository) Create(ctx context.Context, fullName string) (*models.Person, error) {
	person := &models.Person{FullName: fullName}
	err := r.db.QueryRow(ctx, `
		INSERT INTO persons (full_name)
		VALUES ($1)
		RETURNING id, created_at, updated_at`,
		fullName).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error creating person: %w", err)
	}

	return person, nil
}

// AddParent links a parent person to a person
func (r *PersonRepository) AddParent(ctx context.Context, personID, parentID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO person_parents (person_id, parent_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		personID, parentID)

	if err != nil {
		return fmt.Errorf("error adding parent: %w", err)
	}

	return nil
}

// GetParents retrieves the parents linked to a person
func (r *PersonRepository) GetParents(ctx context.Context, personID int64) ([]*models.Person, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.user_id, p.full_name, p.created_at, p.updated_at
		FROM persons p
		JOIN person_parents pp ON pp.parent_id = p.id
		WHERE pp.person_id = $1
		ORDER BY p.id`,
		personID)
	if err != nil {
		return nil, fmt.Errorf("error querying parents: %w", err)
	}
	defer rows.Close()

	parents := []*models.Person{}
	for rows.Next() {
		parent := &models.Person{}
		if err := rows.Scan(&parent.ID, &parent.UserID, &parent.FullName, &parent.CreatedAt, &parent.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning parent row: %w", err)
		}
		parents = append(parents, parent)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating parent rows: %w", err)
	}

	return parents, nil
}

// List retrieves persons with their usernames, most recent first
func (r *PersonRepository) List(ctx context.Context, limit, offset int) ([]*models.Person, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.user_id, p.full_name, p.created_at, p.updated_at,
		       u.id, u.username, u.is_active, u.created_at, u.updated_at
		FROM persons p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.id DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying persons: %w", err)
	}
	defer rows.Close()

	persons := []*models.Person{}
	for rows.Next() {
		person := &models.Person{}
		var (
			uID      *int64
			uName    *string
			uActive  *bool
			uCreated *time.Time
			uUpdated *time.Time
		)
		if err := rows.Scan(&person.ID, &person.UserID, &person.FullName, &person.CreatedAt, &person.UpdatedAt,
			&uID, &uName, &uActive, &uCreated, &uUpdated); err != nil {
			return nil, fmt.Errorf("error scanning person row: %w", err)
		}
		if uID != nil {
			person.User = &models.User{
				ID:       *uID,
				IsActive: uActive != nil && *uActive,
			}
			if uName != nil {
				person.User.Username = *uName
			}
			if uCreated != nil {
				person.User.CreatedAt = *uCreated
			}
			if uUpdated != nil {
				person.User.UpdatedAt = *uUpdated
			}
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}

	return persons, nil
}
