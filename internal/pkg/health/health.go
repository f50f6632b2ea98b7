package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/database"
	natspkg "github.com/kebba/gomove/internal/pkg/nats"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

func (p *PostgresHealthChecker) Name() string { return "postgres" }

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (r *RedisHealthChecker) Name() string { return "redis" }

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// NATSHealthChecker checks NATS connection health
type NATSHealthChecker struct {
	client *natspkg.Client
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(client *natspkg.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

func (n *NATSHealthChecker) Name() string { return "nats" }

// CheckHealth checks if NATS is connected
func (n *NATSHealthChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	conn := n.client.GetConn()
	if conn == nil || !conn.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}
	return nil
}

// Handler serves the health endpoint aggregating all checkers.
type Handler struct {
	checkers []HealthChecker
}

// NewHandler creates a new health handler
func NewHandler(checkers ...HealthChecker) *Handler {
	return &Handler{checkers: checkers}
}

// RegisterRoutes mounts the health endpoint
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Check)
}

// Check runs every checker with a short deadline and reports per-dependency
// status.
func (h *Handler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checkers))
	for _, checker := range h.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			results[checker.Name()] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[checker.Name()] = "ok"
	}

	return c.JSON(status, map[string]interface{}{
		"status": http.StatusText(status),
		"checks": results,
	})
}
