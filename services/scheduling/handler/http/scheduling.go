package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rahmanda/transbus/internal/pkg/apperror"
	"github.com/rahmanda/transbus/internal/pkg/models"
	"github.com/rahmanda/transbus/internal/utils"
	"github.com/rahmanda/transbus/services/scheduling"
)

// SchedulingHandler handles HTTP requests for scheduling operations
type SchedulingHandler struct {
	generatorUC  scheduling.GeneratorUC
	assignmentUC scheduling.AssignmentUC
	lifecycleUC  scheduling.LifecycleUC
}

// NewSchedulingHandler creates a new scheduling HTTP handler
func NewSchedulingHandler(
	generatorUC scheduling.GeneratorUC,
	assignmentUC scheduling.AssignmentUC,
	lifecycleUC scheduling.LifecycleUC,
) *SchedulingHandler {
	return &SchedulingHandler{
		generatorUC:  generatorUC,
		assignmentUC: assignmentUC,
		lifecycleUC:  lifecycleUC,
	}
}

// AssignRequest is the request structure for manual driver assignment
type AssignRequest struct {
	DriverID string `json:"driver_id"`
}

// AssignTrip handles manual driver assignment for a trip instance
func (h *SchedulingHandler) AssignTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver ID")
	}

	var actorID *uuid.UUID
	if header := c.Request().Header.Get("X-Actor-ID"); header != "" {
		parsed, err := uuid.Parse(header)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid X-Actor-ID header")
		}
		actorID = &parsed
	}

	schedule, err := h.assignmentUC.Assign(c.Request().Context(), tripID, driverID, models.AssignmentModeManual, actorID)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", schedule)
}

// AutoAssignTrip handles automatic driver assignment for a trip instance
func (h *SchedulingHandler) AutoAssignTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	schedule, err := h.assignmentUC.AutoAssign(c.Request().Context(), tripID)
	if err != nil {
		return errorResponse(c, err)
	}
	if schedule == nil {
		return utils.SuccessResponse(c, http.StatusOK, "No eligible driver available", nil)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", schedule)
}

// UnassignTrip removes a trip's driver assignment
func (h *SchedulingHandler) UnassignTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.assignmentUC.Unassign(c.Request().Context(), tripID); err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver unassigned", nil)
}

// GenerateTrips triggers template expansion for one calendar date. Defaults
// to today when the date query parameter is absent.
func (h *SchedulingHandler) GenerateTrips(c echo.Context) error {
	targetDate := time.Now().UTC()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD")
		}
		targetDate = parsed
	}

	tripIDs, err := h.generatorUC.Generate(c.Request().Context(), targetDate)
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips generated", echo.Map{
		"target_date": targetDate.Format("2006-01-02"),
		"trip_ids":    tripIDs,
	})
}

// SweepTrips triggers one lifecycle sweep tick
func (h *SchedulingHandler) SweepTrips(c echo.Context) error {
	result, err := h.lifecycleUC.Sweep(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sweep completed", result)
}

func errorResponse(c echo.Context, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindNotFound:
			return utils.NotFoundResponse(c, appErr.Message)
		case apperror.KindConflict:
			return utils.ConflictResponse(c, appErr.Message)
		case apperror.KindInvalidState:
			return utils.UnprocessableEntityResponse(c, appErr.Message)
		}
	}
	return utils.InternalServerErrorResponse(c, err.Error())
}
