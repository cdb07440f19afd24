package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"gym_crm_backend/internal/services"
	"gym_crm_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler holds the customer service.
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// CreateCustomer handles the creation of a new customer.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCustomer: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	customer, err := h.customerService.CreateCustomer(req)
	if err != nil {
		utils.LogError(err, "CreateCustomer: Error from customerService.CreateCustomer")
		if errors.Is(err, services.ErrCodeExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Customer code already exists.", err.Error()))
		} else if errors.Is(err, services.ErrPackageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Selected package does not exist.", err.Error()))
		} else if errors.Is(err, services.ErrCustomerValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create customer.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetCustomers handles fetching all customers, newest first.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.customerService.GetCustomers()
	if err != nil {
		utils.LogError(err, "GetCustomers: Error from customerService.GetCustomers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customers.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerByID handles fetching a single customer by ID.
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	idStr := c.Param("id")
	customerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	customer, err := h.customerService.GetCustomerByID(customerID)
	if err != nil {
		utils.LogError(err, "GetCustomerByID: Error from customerService.GetCustomerByID for ID "+idStr)
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customer.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles updating a customer. The customer code is
// immutable; a code in the payload is ignored.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("id")
	customerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	var req services.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCustomer: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	customer, err := h.customerService.UpdateCustomer(customerID, req)
	if err != nil {
		utils.LogError(err, "UpdateCustomer: Error from customerService.UpdateCustomer for ID "+idStr)
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else if errors.Is(err, services.ErrPackageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Selected package does not exist.", err.Error()))
		} else if errors.Is(err, services.ErrCustomerValidation) || errors.Is(err, services.ErrDateFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update customer.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles deleting a customer.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	idStr := c.Param("id")
	customerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	err = h.customerService.DeleteCustomer(customerID)
	if err != nil {
		utils.LogError(err, "DeleteCustomer: Error from customerService.DeleteCustomer for ID "+idStr)
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete customer.", "Internal error"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}
