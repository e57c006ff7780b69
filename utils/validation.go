// utils/validation.go
package utils

import (
	"regexp"
	"strings"

	"wwcrm-backend/models"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateInvoiceStatus reports whether status is one of the known
// invoice statuses.
func ValidateInvoiceStatus(status string) bool {
	switch status {
	case models.InvoiceStatusDraft, models.InvoiceStatusSent, models.InvoiceStatusPaid:
		return true
	}
	return false
}
