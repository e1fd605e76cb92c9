package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/repositories"
	"github.com/emrah/lessonhub/internal/config"
	"github.com/emrah/lessonhub/internal/pkg/auth"
)

// CreateDefaultData creates the initial admin account when the users table
// is empty. Without it a fresh install has no way to log in.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("Users table is empty and no seed admin password configured, skipping admin creation")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin := &models.User{
		Username: cfg.Seed.AdminUsername,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	lgr.Info().Str("username", admin.Username).Msg("Seed admin account created")
	return nil
}
