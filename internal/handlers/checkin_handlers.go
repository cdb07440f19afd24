package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CheckInHandler holds the check-in service.
type CheckInHandler struct {
	checkInService services.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler.
func NewCheckInHandler(cs services.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInService: cs}
}

// CreateCheckIn records a gym entry for a customer. An expired membership
// is rejected with 403.
func (h *CheckInHandler) CreateCheckIn(c *gin.Context) {
	var req services.CreateCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCheckIn: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	checkIn, err := h.checkInService.CreateCheckIn(req)
	if err != nil {
		utils.LogError(err, "CreateCheckIn: Error from checkInService.CreateCheckIn")
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else if errors.Is(err, services.ErrCheckInDenied) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Check-in denied: membership expired.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record check-in.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, checkIn)
}

// GetCheckIns handles fetching the most recent check-ins. An optional
// limit query parameter requests fewer than the default cap.
func (h *CheckInHandler) GetCheckIns(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	checkIns, err := h.checkInService.GetCheckIns(limit)
	if err != nil {
		utils.LogError(err, "GetCheckIns: Error from checkInService.GetCheckIns")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch check-ins.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, checkIns)
}
