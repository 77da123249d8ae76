package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	jobspkg "github.com/rahmanda/transbus/internal/pkg/jobs"
	"github.com/rahmanda/transbus/services/scheduling"
	httpHandler "github.com/rahmanda/transbus/services/scheduling/handler/http"
	jobsHandler "github.com/rahmanda/transbus/services/scheduling/handler/jobs"
)

// Handler combines all handlers for the scheduling service
type Handler struct {
	schedulingHTTP *httpHandler.SchedulingHandler
	schedulingJobs *jobsHandler.SchedulingHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	generatorUC scheduling.GeneratorUC,
	assignmentUC scheduling.AssignmentUC,
	lifecycleUC scheduling.LifecycleUC,
	runner *jobspkg.Runner,
) *Handler {
	return &Handler{
		schedulingHTTP: httpHandler.NewSchedulingHandler(generatorUC, assignmentUC, lifecycleUC),
		schedulingJobs: jobsHandler.NewSchedulingHandler(generatorUC, assignmentUC, lifecycleUC, runner),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/v1/trips")
	trips.POST("/:tripID/assignment", h.schedulingHTTP.AssignTrip)
	trips.POST("/:tripID/auto-assignment", h.schedulingHTTP.AutoAssignTrip)
	trips.DELETE("/:tripID/assignment", h.schedulingHTTP.UnassignTrip)

	admin := e.Group("/v1/admin")
	admin.POST("/generate", h.schedulingHTTP.GenerateTrips)
	admin.POST("/sweep", h.schedulingHTTP.SweepTrips)
}

// InitJobConsumers starts all durable job consumers
func (h *Handler) InitJobConsumers(ctx context.Context) error {
	return h.schedulingJobs.InitJobConsumers(ctx)
}
