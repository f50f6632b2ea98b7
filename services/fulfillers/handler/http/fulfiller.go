package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kebba/gomove/internal/pkg/errs"
	"github.com/kebba/gomove/internal/pkg/logger"
	"github.com/kebba/gomove/internal/pkg/middleware"
	"github.com/kebba/gomove/internal/pkg/models"
	"github.com/kebba/gomove/internal/utils"
	"github.com/kebba/gomove/services/fulfillers"
)

// FulfillerHandler handles HTTP requests for fulfiller operations
type FulfillerHandler struct {
	fulfillerUC fulfillers.FulfillerUC
}

// NewFulfillerHandler creates a new fulfiller handler
func NewFulfillerHandler(fulfillerUC fulfillers.FulfillerUC) *FulfillerHandler {
	return &FulfillerHandler{fulfillerUC: fulfillerUC}
}

// RegisterRequest is the payload for fulfiller registration.
type RegisterRequest struct {
	Type         models.FulfillerType `json:"type"`
	FullName     string               `json:"full_name"`
	VehicleType  string               `json:"vehicle_type"`
	VehiclePlate string               `json:"vehicle_plate"`
}

// Register handles fulfiller registration requests
func (h *FulfillerHandler) Register(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	fulfiller := &models.Fulfiller{
		UserID:       actor.ID,
		Type:         req.Type,
		FullName:     req.FullName,
		VehicleType:  req.VehicleType,
		VehiclePlate: req.VehiclePlate,
	}

	if err := h.fulfillerUC.Register(c.Request().Context(), fulfiller); err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to register fulfiller", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to register fulfiller")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Fulfiller registered successfully", fulfiller)
}

// GetFulfiller handles fulfiller retrieval requests
func (h *FulfillerHandler) GetFulfiller(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fulfiller ID")
	}

	fulfiller, err := h.fulfillerUC.GetByID(c.Request().Context(), id)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve fulfiller")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fulfiller retrieved successfully", fulfiller)
}

// ApprovalRequest is the payload for the admin approval workflow.
type ApprovalRequest struct {
	Action string `json:"action"` // approve | reject | suspend | reactivate
}

// approvalTargets maps an admin action to the target approval status.
var approvalTargets = map[string]models.ApprovalStatus{
	"approve":    models.ApprovalStatusApproved,
	"reject":     models.ApprovalStatusRejected,
	"suspend":    models.ApprovalStatusSuspended,
	"reactivate": models.ApprovalStatusApproved,
}

// SetApproval handles admin approval workflow requests
func (h *FulfillerHandler) SetApproval(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid fulfiller ID")
	}

	var req ApprovalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	target, ok := approvalTargets[req.Action]
	if !ok {
		return utils.BadRequestResponse(c, "Unknown approval action")
	}

	fulfiller, err := h.fulfillerUC.SetApproval(c.Request().Context(), id, target)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to update approval",
			logger.String("fulfiller_id", id.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update approval")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Approval updated successfully", fulfiller)
}

// AvailabilityRequest is the payload for the availability toggle.
type AvailabilityRequest struct {
	Availability models.Availability `json:"availability"`
}

// SetAvailability handles the fulfiller's own availability toggle
func (h *FulfillerHandler) SetAvailability(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	fulfiller, err := h.fulfillerUC.SetAvailability(c.Request().Context(), actor.ID, req.Availability)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		logger.Error("Failed to update availability", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Availability updated successfully", fulfiller)
}

// ListAvailable handles the admin listing of assignable fulfillers
func (h *FulfillerHandler) ListAvailable(c echo.Context) error {
	fulfillerType := models.FulfillerType(c.QueryParam("type"))
	if fulfillerType == "" {
		fulfillerType = models.FulfillerTypeDriver
	}

	list, err := h.fulfillerUC.ListAvailable(c.Request().Context(), fulfillerType)
	if err != nil {
		if errs.KindOf(err) != "" {
			return utils.DomainErrorResponse(c, err)
		}
		return utils.InternalServerErrorResponse(c, "Failed to list fulfillers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Fulfillers retrieved successfully", list)
}
