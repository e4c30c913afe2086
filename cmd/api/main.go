package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/onyxtech/onyx-invoice/docs/swagger"
	companymigrations "github.com/onyxtech/onyx-invoice/migrations/company"
	"github.com/onyxtech/onyx-invoice/pkg/app"
	"github.com/onyxtech/onyx-invoice/pkg/cache"
	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/pkg/database"
	"github.com/onyxtech/onyx-invoice/pkg/events"
	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	"github.com/onyxtech/onyx-invoice/pkg/logger"
	"github.com/onyxtech/onyx-invoice/pkg/migrator"
	"github.com/onyxtech/onyx-invoice/pkg/session"
	"github.com/onyxtech/onyx-invoice/pkg/telemetry"
	companyApi "github.com/onyxtech/onyx-invoice/services/company/application/api"
	companyServices "github.com/onyxtech/onyx-invoice/services/company/application/services"
	invoiceApi "github.com/onyxtech/onyx-invoice/services/invoice/application/api"
	invoiceServices "github.com/onyxtech/onyx-invoice/services/invoice/application/services"
)

// @title					Onyx Invoice API
// @version				1.0
// @description			Invoice drafting, preview and PDF export with a shared company directory.
// @contact.name			Onyx Technology
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
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

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		log.Error("failed to register metrics", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig := &app.Application{
		Config:  cfg,
		Logger:  log,
		Metrics: metrics,
	}
	var health []httpx.HealthCheck

	// The database and its event bus back the postgres directory only.
	if cfg.UsesPostgres() {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close() //nolint:errcheck
		log.Info("database pool connected")

		if err := migrator.Up(ctx, pool.DB(), companymigrations.FS, log); err != nil {
			log.Error("failed to migrate database", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		eventBus, err := events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		appConfig.Db = pool
		appConfig.EventBus = eventBus
		health = append(health,
			httpx.HealthCheck{Name: "database", Checker: pool},
			httpx.HealthCheck{Name: "eventbus", Checker: eventBus},
		)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")
	appConfig.Redis = redisClient
	health = append(health, httpx.HealthCheck{Name: "redis", Checker: redisClient})

	appConfig.SessionStore = session.NewStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
		cfg.DraftTTL,
	)
	log.Info("session store initialized", "backend", "redis")

	companySvcs, err := companyServices.New(appConfig)
	if err != nil {
		log.Error("failed to setup company directory", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	if companySvcs.Backend != nil {
		health = append(health, httpx.HealthCheck{Name: "directory", Checker: companySvcs.Backend})
	}
	log.Info("company directory ready", "backend", cfg.DirectoryBackend)

	invoiceSvcs, err := invoiceServices.New(appConfig, companySvcs)
	if err != nil {
		log.Error("failed to setup invoice drafts", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(health...))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		companyApi.CompanyRoutes(r, companySvcs)
		invoiceApi.DraftRoutes(r, invoiceSvcs, appConfig.SessionStore, log)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
