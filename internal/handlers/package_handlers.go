package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PackageHandler holds the package service.
type PackageHandler struct {
	packageService services.PackageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(ps services.PackageService) *PackageHandler {
	return &PackageHandler{packageService: ps}
}

// CreatePackage handles the creation of a new membership package.
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req services.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePackage: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	pkg, err := h.packageService.CreatePackage(req)
	if err != nil {
		utils.LogError(err, "CreatePackage: Error from packageService.CreatePackage")
		if errors.Is(err, services.ErrPackageNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Package name already exists.", err.Error()))
		} else if errors.Is(err, services.ErrPackageValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create package.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// GetPackages handles fetching all packages, newest first.
func (h *PackageHandler) GetPackages(c *gin.Context) {
	packages, err := h.packageService.GetPackages()
	if err != nil {
		utils.LogError(err, "GetPackages: Error from packageService.GetPackages")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch packages.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, packages)
}

// GetPackageByID handles fetching a single package by ID.
func (h *PackageHandler) GetPackageByID(c *gin.Context) {
	idStr := c.Param("id")
	packageID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid package ID format.", err.Error()))
		return
	}

	pkg, err := h.packageService.GetPackageByID(packageID)
	if err != nil {
		utils.LogError(err, "GetPackageByID: Error from packageService.GetPackageByID for ID "+idStr)
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Package not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch package.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage handles updating a package.
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	idStr := c.Param("id")
	packageID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid package ID format.", err.Error()))
		return
	}

	var req services.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePackage: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	pkg, err := h.packageService.UpdatePackage(packageID, req)
	if err != nil {
		utils.LogError(err, "UpdatePackage: Error from packageService.UpdatePackage for ID "+idStr)
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Package not found.", err.Error()))
		} else if errors.Is(err, services.ErrPackageNameExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Package name already exists.", err.Error()))
		} else if errors.Is(err, services.ErrPackageValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update package.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// DeletePackage handles deleting a package. Customers keep their
// denormalized package name and snapshot fields.
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	idStr := c.Param("id")
	packageID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid package ID format.", err.Error()))
		return
	}

	err = h.packageService.DeletePackage(packageID)
	if err != nil {
		utils.LogError(err, "DeletePackage: Error from packageService.DeletePackage for ID "+idStr)
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Package not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete package.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
