package httpx

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 2 * time.Second

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (Database, RedisClient, EventBus, the GitHub directory).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one dependency probed by the health endpoint.
// Only dependencies the process actually uses are registered, so the
// file-backed directory reports redis alone.
type HealthCheck struct {
	Name    string
	Checker HealthChecker
}

// HealthHandler returns an http.HandlerFunc that probes every check and
// reports degraded status with 503 if any of them fail. The body maps each
// check name to "ok" or "unreachable" next to the overall "status".
func HealthHandler(checks ...HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp := map[string]string{"status": "ok"}
		for _, c := range checks {
			if c.Checker == nil {
				continue
			}
			if err := c.Checker.Ping(ctx); err != nil {
				resp["status"] = "degraded"
				resp[c.Name] = "unreachable"
				continue
			}
			resp[c.Name] = "ok"
		}

		status := http.StatusOK
		if resp["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
