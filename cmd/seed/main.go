// Command seed provisions a fresh database with the initial admin user,
// a few published events and the standard sponsor tiers.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tdrmf/foundation-api/internal/config"
	"github.com/tdrmf/foundation-api/internal/db"
	"github.com/tdrmf/foundation-api/internal/logger"
	"github.com/tdrmf/foundation-api/internal/repository/dao"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx := context.Background()

	if err = seedAdmin(ctx, postgresDB); err != nil {
		return err
	}
	if err = seedEvents(ctx, postgresDB); err != nil {
		return err
	}
	if err = seedSponsorTiers(ctx, postgresDB); err != nil {
		return err
	}

	zap.L().Info("seeding complete")

	return nil
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	userDAO := dao.NewUserDAO(gormDB)
	_, err = userDAO.Insert(ctx, dao.User{
		Email:    "admin@tdrmf.org",
		Password: string(hash),
		Role:     "admin",
	})
	if err != nil {
		if errors.Is(err, dao.ErrUserEmailExists) {
			zap.L().Info("admin user already exists, skipping")
			return nil
		}

		return fmt.Errorf("userDAO.Insert -> %w", err)
	}

	zap.L().Info("created admin user", zap.String("email", "admin@tdrmf.org"))

	return nil
}

func seedEvents(ctx context.Context, gormDB *gorm.DB) error {
	eventDAO := dao.NewEventDAO(gormDB)

	existing, err := eventDAO.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("eventDAO.FindAll -> %w", err)
	}
	if len(existing) > 0 {
		zap.L().Info("events already present, skipping")
		return nil
	}

	nextMonth := time.Now().AddDate(0, 1, 0)
	events := []dao.Event{
		{
			Title:       "Annual Memorial Walk",
			Summary:     "A community walk in remembrance and celebration of life.",
			StartAt:     nextMonth,
			Location:    "Riverside Park, New York, NY",
			IsPublished: true,
		},
		{
			Title:       "Youth Mentorship Kickoff",
			Summary:     "Opening session of the fall mentorship program.",
			StartAt:     nextMonth.AddDate(0, 0, 14),
			Location:    "Community Center, Harlem, NY",
			IsPublished: true,
		},
	}

	for _, event := range events {
		if _, err = eventDAO.Insert(ctx, event); err != nil {
			return fmt.Errorf("eventDAO.Insert -> %w", err)
		}
	}

	zap.L().Info("created sample events", zap.Int("count", len(events)))

	return nil
}

func seedSponsorTiers(ctx context.Context, gormDB *gorm.DB) error {
	sponsorDAO := dao.NewSponsorDAO(gormDB)

	existing, err := sponsorDAO.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("sponsorDAO.FindAll -> %w", err)
	}
	if len(existing) > 0 {
		zap.L().Info("sponsor tiers already present, skipping")
		return nil
	}

	tiers := []dao.SponsorTier{
		{
			Name:        "Legacy Circle",
			AmountCents: 1000000,
			Benefits: map[string]interface{}{
				"logo_placement": "homepage",
				"event_tickets":  8,
			},
			IsActive: true,
		},
		{
			Name:        "Guardian",
			AmountCents: 500000,
			Benefits: map[string]interface{}{
				"logo_placement": "sponsors page",
				"event_tickets":  4,
			},
			IsActive: true,
		},
		{
			Name:        "Friend",
			AmountCents: 100000,
			Benefits: map[string]interface{}{
				"logo_placement": "sponsors page",
				"event_tickets":  2,
			},
			IsActive: true,
		},
	}

	for _, tier := range tiers {
		if _, err = sponsorDAO.Insert(ctx, tier); err != nil {
			return fmt.Errorf("sponsorDAO.Insert -> %w", err)
		}
	}

	zap.L().Info("created sponsor tiers", zap.Int("count", len(tiers)))

	return nil
}
