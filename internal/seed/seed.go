package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devang/placeport/internal/app/models"
	"github.com/devang/placeport/internal/app/repositories"
	"github.com/devang/placeport/internal/db"
	"github.com/devang/placeport/internal/pkg/auth"
)

const (
	defaultAdminEmail = "admin@placeport.app"
	// Changed on first login in any real deployment.
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData creates the default admin account if it does not exist.
// Without it a fresh install has nobody who can verify the first signups.
func CreateDefaultData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(database.Pool)

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if exists {
		lgr.Debug().Msg("Admin account already exists, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:         uuid.New(),
		Email:      defaultAdminEmail,
		Password:   hashed,
		Name:       "Placement Admin",
		RollNo:     "ADMIN",
		Role:       models.RoleAdmin,
		IsVerified: true,
		PlacedAt:   models.NotPlaced(),
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
