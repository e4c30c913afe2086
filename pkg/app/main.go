package app

import (
	"github.com/gorilla/sessions"

	"github.com/onyxtech/onyx-invoice/pkg/cache"
	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/pkg/database"
	"github.com/onyxtech/onyx-invoice/pkg/events"
	"github.com/onyxtech/onyx-invoice/pkg/logger"
	"github.com/onyxtech/onyx-invoice/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all bounded contexts.
// Pass it to each context's services.New during process initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use the context
// methods and trace_id, span_id and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "draft created", "draft_id", id)
//	app.Logger.ErrorContext(ctx, "export failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	Db       *database.Database // nil unless DIRECTORY_BACKEND=postgres
	EventBus *events.EventBus   // nil unless DIRECTORY_BACKEND=postgres
	Redis    *cache.RedisClient // nil in the CLI
	Metrics  *telemetry.Metrics // nil-safe

	SessionStore sessions.Store // Redis-backed session store; nil in worker process
}
