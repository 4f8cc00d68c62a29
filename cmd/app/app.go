package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tdrmf/foundation-api/internal/api"
	"github.com/tdrmf/foundation-api/internal/config"
	"github.com/tdrmf/foundation-api/internal/db"
	"github.com/tdrmf/foundation-api/internal/logger"
	"github.com/tdrmf/foundation-api/internal/mailer"
	"github.com/tdrmf/foundation-api/internal/payment"
	"github.com/tdrmf/foundation-api/internal/storage"
)

func Start() error {
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

	store, err := storage.NewMinioStore(
		conf.Storage.Endpoint,
		conf.Storage.AccessKey,
		conf.Storage.SecretKey,
		conf.Storage.Bucket,
		conf.Storage.UseSSL,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage -> %w", err)
	}

	provider := payment.NewStripeClient(conf.Stripe.SecretKey, conf.Stripe.WebhookSecret)

	smtpMailer := mailer.NewSMTPMailer(
		conf.SMTP.Host,
		conf.SMTP.Port,
		conf.SMTP.Username,
		conf.SMTP.Password,
		conf.SMTP.ContactTo,
	)

	s := api.NewServer(conf, postgresDB, store, provider, smtpMailer)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
