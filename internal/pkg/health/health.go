package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rahmanda/transbus/internal/pkg/database"
	"github.com/rahmanda/transbus/internal/pkg/logger"
	"github.com/rahmanda/transbus/internal/pkg/nats"
)

// Checker verifies a single dependency is reachable
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(ctx context.Context) error

// Check calls the underlying function
func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// NewPostgresHealthChecker checks the PostgreSQL connection
func NewPostgresHealthChecker(client *database.PostgresClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewRedisHealthChecker checks the Redis connection
func NewRedisHealthChecker(client *database.RedisClient) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return client.Ping(ctx)
	})
}

// NewNATSHealthChecker checks the NATS connection
func NewNATSHealthChecker(client *nats.Client) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !client.IsConnected() {
			return fmt.Errorf("nats connection is down")
		}
		return nil
	})
}

// HealthService runs registered dependency checks
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewHealthService creates an empty health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		checkers: make(map[string]Checker),
		logger:   zapLogger,
	}
}

// AddChecker registers a named dependency checker
func (s *HealthService) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// CheckAll runs every registered checker and returns per-dependency status
func (s *HealthService) CheckAll(ctx context.Context) (map[string]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make(map[string]string, len(s.checkers))
	healthy := true
	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := checker.Check(checkCtx)
		cancel()
		if err != nil {
			healthy = false
			results[name] = err.Error()
			s.logger.Logger.Warn("health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			continue
		}
		results[name] = "ok"
	}
	return results, healthy
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, service *HealthService) {
	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service":     serviceName,
			"version":     version,
			"server_time": time.Now(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/ready", func(c echo.Context) error {
		results, healthy := service.CheckAll(c.Request().Context())
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, map[string]interface{}{
			"service":      serviceName,
			"healthy":      healthy,
			"dependencies": results,
		})
	})
}
