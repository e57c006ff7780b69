package controllers

import (
	"net/http"
	"strconv"

	"wwcrm-backend/services"
	"wwcrm-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	customers *services.CustomerService
	invoices  *services.InvoiceService
}

func NewCustomerController(customers *services.CustomerService, invoices *services.InvoiceService) *CustomerController {
	return &CustomerController{customers: customers, invoices: invoices}
}

// CreateCustomerInput defines the expected JSON structure for creating a customer
type CreateCustomerInput struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	BuildingType string `json:"building_type"`
	ServiceUnits int    `json:"service_units"`
	Notes        string `json:"notes"`
}

// UpdateCustomerInput defines the expected JSON structure for updating a customer
type UpdateCustomerInput struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	BuildingType *string `json:"building_type"`
	ServiceUnits *int    `json:"service_units"`
	Notes        *string `json:"notes"`
}

// Create creates a new customer
func (ctl *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ctl.customers.Create(c.Request.Context(), services.CreateCustomerInput{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		BuildingType: input.BuildingType,
		ServiceUnits: input.ServiceUnits,
		Notes:        input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// List retrieves all customers, optionally filtered by ?q= and ordered by
// ?sort= / ?order=
func (ctl *CustomerController) List(c *gin.Context) {
	customers, err := ctl.customers.List(c.Request.Context(), services.CustomerFilter{
		Query: c.Query("q"),
		Sort:  c.Query("sort"),
		Order: c.Query("order"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// Get retrieves a specific customer by ID
func (ctl *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := ctl.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Update updates an existing customer
func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	customer, err := ctl.customers.Update(c.Request.Context(), id, services.UpdateCustomerInput{
		Name:         input.Name,
		Phone:        input.Phone,
		Email:        input.Email,
		Address:      input.Address,
		BuildingType: input.BuildingType,
		ServiceUnits: input.ServiceUnits,
		Notes:        input.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer together with its invoices
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.customers.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// ListInvoices retrieves a customer's invoice history, newest service first
func (ctl *CustomerController) ListInvoices(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	invoices, err := ctl.invoices.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid id format")
		return 0, false
	}
	return uint(id), true
}
