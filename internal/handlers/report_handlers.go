package handlers

import (
	"errors"
	"net/http"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

func bindReportParams(c *gin.Context) (models.ReportRequestParams, bool) {
	var params models.ReportRequestParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid report query parameters: "+err.Error(), err.Error()))
		return params, false
	}
	return params, true
}

func respondReportError(c *gin.Context, err error, operation string) {
	utils.LogError(err, operation+": Error from reportService")
	if errors.Is(err, services.ErrInvalidPeriod) || errors.Is(err, services.ErrInvalidRange) || errors.Is(err, services.ErrDateFormat) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid report range: "+err.Error(), err.Error()))
		return
	}
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build report.", "Internal error"))
}

// GetSummary handles the dashboard summary report.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	params, ok := bindReportParams(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetSummary(params)
	if err != nil {
		respondReportError(c, err, "GetSummary")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetPeakHours handles the hourly attendance histogram report.
func (h *ReportHandler) GetPeakHours(c *gin.Context) {
	params, ok := bindReportParams(c)
	if !ok {
		return
	}

	buckets, err := h.reportService.GetPeakHours(params)
	if err != nil {
		respondReportError(c, err, "GetPeakHours")
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// GetTopCustomers handles the most-frequent-visitors report.
func (h *ReportHandler) GetTopCustomers(c *gin.Context) {
	params, ok := bindReportParams(c)
	if !ok {
		return
	}

	top, err := h.reportService.GetTopCustomers(params)
	if err != nil {
		respondReportError(c, err, "GetTopCustomers")
		return
	}
	c.JSON(http.StatusOK, top)
}
