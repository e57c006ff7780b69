// controllers/invoice.go
package controllers

import (
	"net/http"
	"time"

	"wwcrm-backend/services"
	"wwcrm-backend/utils"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	invoices *services.InvoiceService
	messages *services.MessageService
}

func NewInvoiceController(invoices *services.InvoiceService, messages *services.MessageService) *InvoiceController {
	return &InvoiceController{invoices: invoices, messages: messages}
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	CustomerID         uint       `json:"customer_id" binding:"required"`
	ServiceDate        time.Time  `json:"service_date" binding:"required"`
	IssueDate          *time.Time `json:"issue_date"`
	DueDate            *time.Time `json:"due_date"`
	Amount             float64    `json:"amount"`
	Status             string     `json:"status"`
	ServiceDescription string     `json:"service_description"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	CustomerID         *uint      `json:"customer_id"`
	ServiceDate        *time.Time `json:"service_date"`
	IssueDate          *time.Time `json:"issue_date"`
	DueDate            *time.Time `json:"due_date"`
	Amount             *float64   `json:"amount"`
	Status             *string    `json:"status"`
	ServiceDescription *string    `json:"service_description"`
}

// Create creates a new invoice and refreshes the owning customer's
// last-invoice snapshot in the same transaction
func (ctl *InvoiceController) Create(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	in := services.CreateInvoiceInput{
		CustomerID:         input.CustomerID,
		ServiceDate:        input.ServiceDate,
		DueDate:            input.DueDate,
		Amount:             input.Amount,
		Status:             input.Status,
		ServiceDescription: input.ServiceDescription,
	}
	if input.IssueDate != nil {
		in.IssueDate = *input.IssueDate
	}

	invoice, err := ctl.invoices.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// List retrieves all invoices, newest service first
func (ctl *InvoiceController) List(c *gin.Context) {
	invoices, err := ctl.invoices.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// Get retrieves a specific invoice by ID
func (ctl *InvoiceController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	invoice, err := ctl.invoices.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// Update updates an existing invoice
func (ctl *InvoiceController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, err := ctl.invoices.Update(c.Request.Context(), id, services.UpdateInvoiceInput{
		CustomerID:         input.CustomerID,
		ServiceDate:        input.ServiceDate,
		IssueDate:          input.IssueDate,
		DueDate:            input.DueDate,
		Amount:             input.Amount,
		Status:             input.Status,
		ServiceDescription: input.ServiceDescription,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// Delete removes an invoice
func (ctl *InvoiceController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.invoices.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

// Message renders the invoice as SMS text for manual copy; nothing is sent
func (ctl *InvoiceController) Message(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	message, err := ctl.messages.BuildInvoiceMessage(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}
