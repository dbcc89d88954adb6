package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/omniport/acadsync/internal/app/models"
	appRepos "github.com/omniport/acadsync/internal/app/repositories"
	"github.com/omniport/acadsync/internal/config"
	"github.com/omniport/acadsync/internal/pkg/auth"
)

// defaultBranches covers the programmes ACAD reports for current students.
// Further branches arrive through the same table as ACAD introduces them.
var defaultBranches = []appModels.Branch{
	{Code: "BT-CSE", Name: "Computer Science and Engineering"},
	{Code: "BT-ECE", Name: "Electronics and Communication Engineering"},
	{Code: "BT-EE", Name: "Electrical Engineering"},
	{Code: "BT-ME", Name: "Mechanical Engineering"},
	{Code: "BT-CE", Name: "Civil Engineering"},
	{Code: "BT-CH", Name: "Chemical Engineering"},
	{Code: "BT-BT", Name: "Biotechnology"},
	{Code: "BT-EP", Name: "Engineering Physics"},
	{Code: "BT-MIN", Name: "Metallurgical and Materials Engineering"},
	{Code: "BAR", Name: "Architecture"},
	{Code: "IMT-AM", Name: "Applied Mathematics"},
	{Code: "IMT-PH", Name: "Physics"},
	{Code: "MT-CSE", Name: "Computer Science and Engineering"},
	{Code: "MBA", Name: "Business Administration"},
}

// CreateDefaultData fills the lookup tables and creates the default
// operator account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)
	centreRepo := appRepos.NewCentreRepository(dbPool)
	residenceRepo := appRepos.NewResidenceRepository(dbPool)
	branchRepo := appRepos.NewBranchRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (lookup tables, operator account)...")
	var finalErr error

	for code := range appModels.DepartmentChoices {
		if err := departmentRepo.CreateIfAbsent(ctx, code); err != nil {
			lgr.Error().Err(err).Str("code", code).Msg("Error seeding department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for code := range appModels.CentreChoices {
		if err := centreRepo.CreateIfAbsent(ctx, code); err != nil {
			lgr.Error().Err(err).Str("code", code).Msg("Error seeding centre")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for code := range appModels.ResidenceChoices {
		if _, err := residenceRepo.GetOrCreateByCode(ctx, code); err != nil {
			lgr.Error().Err(err).Str("code", code).Msg("Error seeding residence")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, branch := range defaultBranches {
		if err := branchRepo.CreateIfAbsent(ctx, &branch); err != nil {
			lgr.Error().Err(err).Str("code", branch.Code).Msg("Error seeding branch")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Create Default Operator User --- //
	operatorUsername := config.GetEnv("SEED_OPERATOR_USERNAME", "operator")
	exists, err := userRepo.UsernameExists(ctx, operatorUsername)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if operator user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Str("username", operatorUsername).Msg("Creating default operator user...")

		hashedPassword, err := auth.HashPassword(config.GetEnv("SEED_OPERATOR_PASSWORD", "Operator123!"))
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing operator password")
			finalErr = errors.Join(finalErr, err)
		} else {
			operator := &appModels.User{
				Username: operatorUsername,
				Password: hashedPassword,
				IsActive: true,
			}
			if _, err := userRepo.Create(ctx, operator); err != nil {
				lgr.Error().Err(err).Msg("Error creating operator user")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	return finalErr
}
