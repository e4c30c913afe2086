package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/onyxtech/onyx-invoice/pkg/app"
	"github.com/onyxtech/onyx-invoice/pkg/cache"
	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/pkg/database"
	"github.com/onyxtech/onyx-invoice/pkg/events"
	"github.com/onyxtech/onyx-invoice/pkg/logger"
	"github.com/onyxtech/onyx-invoice/pkg/telemetry"
	companyServices "github.com/onyxtech/onyx-invoice/services/company/application/services"
	companyEvents "github.com/onyxtech/onyx-invoice/services/company/domain/events"
	invoiceServices "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
	"github.com/onyxtech/onyx-invoice/services/invoice/infrastructure/directory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Only the postgres directory publishes events.
	if !cfg.UsesPostgres() {
		log.Error("worker requires DIRECTORY_BACKEND=postgres", "backend", cfg.DirectoryBackend)
		os.Exit(1)
	}

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	handler, err := handleCompanyDeleted(a)
	if err != nil {
		return err
	}

	errCh, err := a.EventBus.Subscribe(ctx, companyEvents.TopicCompanyDeleted, handler)
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", companyEvents.TopicCompanyDeleted,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{companyEvents.TopicCompanyDeleted})
	return nil
}

// handleCompanyDeleted returns a handler for company.deleted events.
// Handlers must be idempotent; EventBus retries up to 3× on failure.
// Every stored draft that still selects the deleted company moves to the
// first remaining entry.
func handleCompanyDeleted(a *app.Application) (func(context.Context, *message.Message) error, error) {
	companySvcs, err := companyServices.New(a)
	if err != nil {
		return nil, fmt.Errorf("company services: %w", err)
	}
	invoiceSvcs, err := invoiceServices.New(a, companySvcs)
	if err != nil {
		return nil, fmt.Errorf("invoice services: %w", err)
	}

	return func(ctx context.Context, msg *message.Message) error {
		var evt companyEvents.CompanyDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		companies, err := companySvcs.Company.List(ctx)
		if err != nil {
			return fmt.Errorf("list companies: %w", err)
		}

		changed, err := invoiceSvcs.Draft.ReconcileCompanyDeletion(ctx, evt.CompanyID, directory.Records(companies))
		if err != nil {
			return fmt.Errorf("reconcile drafts: %w", err)
		}

		a.Logger.InfoContext(ctx, "company deletion reconciled",
			"company_id", evt.CompanyID, "event_id", evt.EventID, "drafts", changed)
		return nil
	}, nil
}
