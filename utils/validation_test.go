package utils

import (
	"testing"

	"wwcrm-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("+15555550100"))
	assert.True(t, ValidatePhone("+1 (555) 555-0100"))
	assert.True(t, ValidatePhone("5555550100"))
	assert.False(t, ValidatePhone("not-a-number"))
	assert.False(t, ValidatePhone("0123"))
	assert.False(t, ValidatePhone(""))
}

func TestValidateInvoiceStatus(t *testing.T) {
	assert.True(t, ValidateInvoiceStatus(models.InvoiceStatusDraft))
	assert.True(t, ValidateInvoiceStatus(models.InvoiceStatusSent))
	assert.True(t, ValidateInvoiceStatus(models.InvoiceStatusPaid))
	assert.False(t, ValidateInvoiceStatus("overdue"))
	assert.False(t, ValidateInvoiceStatus(""))
	assert.False(t, ValidateInvoiceStatus("Draft"))
}
