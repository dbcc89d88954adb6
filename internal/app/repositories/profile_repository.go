package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omniport/acadsync/internal/app/models"
)

// ProfileRepository handles the six per-person sub-profile tables. Each
// create is independent so the importer can isolate failures per
// sub-profile.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// CreateLocation inserts a location information row
func (r *ProfileRepository) CreateLocation(ctx context.Context, info *models.LocationInformation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO location_information (person_id, address, city, state, country)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		info.PersonID, info.Address, info.City, info.State, info.Country).Scan(&info.ID)

	if err != nil {
		return fmt.Errorf("error creating location information: %w", err)
	}
	return nil
}

// CreateContact inserts a contact information row
func (r *ProfileRepository) CreateContact(ctx context.Context, info *models.ContactInformation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO contact_information (person_id, primary_phone_number, secondary_phone_number, email_address, institute_webmail_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		info.PersonID, info.PrimaryPhoneNumber, info.SecondaryPhoneNumber,
		info.EmailAddress, info.InstituteWebmailAddress).Scan(&info.ID)

	if err != nil {
		return fmt.Errorf("error creating contact information: %w", err)
	}
	return nil
}

// CreatePolitical inserts a political information row
func (r *ProfileRepository) CreatePolitical(ctx context.Context, info *models.PoliticalInformation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO political_information (person_id, nationality, religion, reservation_category)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		info.PersonID, info.Nationality, info.Religion, info.ReservationCategory).Scan(&info.ID)

	if err != nil {
		return fmt.Errorf("error creating political information: %w", err)
	}
	return nil
}

// CreateBiological inserts a biological information row
func (r *ProfileRepository) CreateBiological(ctx context.Context, info *models.BiologicalInformation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO biological_information (person_id, date_of_birth, blood_group, sex, gender, pronoun, impairment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		info.PersonID, info.DateOfBirth, info.BloodGroup, info.Sex,
		info.Gender, info.Pronoun, info.Impairment).Scan(&info.ID)

	if err != nil {
		return fmt.Errorf("error creating biological information: %w", err)
	}
	return nil
}

// CreateFinancial inserts a financial information row
func (r *ProfileRepository) CreateFinancial(ctx context.Context, info *models.FinancialInformation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO financial_information (person_id, bank_name, account_number, ifsc_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		info.PersonID, info.BankName, info.AccountNumber, info.IFSCCode).Scan(&info.ID)

	if err != nil {
		return fmt.Errorf("error creating financial information: %w", err)
	}
	return nil
}

// CreateResidential inserts a residential information row
func (r *ProfileRepository) CreateResidential(ctx context.Context, info *models.ResidentialInformation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO residential_information (person_id, residence_id, room_number)
		VALUES ($1, $2, $3)
		RETURNING id`,
		info.PersonID, info.ResidenceID, info.RoomNumber).Scan(&info.ID)

	if err != nil {
		return fmt.Errorf("error creating residential information: %w", err)
	}
	return nil
}
