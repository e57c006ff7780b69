package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wwcrm-backend/models"
	"wwcrm-backend/utils"

	"gorm.io/gorm"
)

// MessageService renders an invoice as a plain-text SMS for the user to
// copy into their own messaging app. Nothing is sent from here.
type MessageService struct {
	db *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

type InvoiceMessage struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
}

func (s *MessageService) BuildInvoiceMessage(ctx context.Context, invoiceID uint) (*InvoiceMessage, error) {
	var invoice models.Invoice
	if err := s.db.WithContext(ctx).First(&invoice, invoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invoice %d", ErrNotFound, invoiceID)
		}
		return nil, err
	}

	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, invoice.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, invoice.CustomerID)
		}
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, thanks for choosing us for your window washing on %s.",
		customer.Name, invoice.ServiceDate.Format("Jan 2, 2006"))
	if desc := strings.TrimSpace(invoice.ServiceDescription); desc != "" {
		fmt.Fprintf(&b, " Service: %s.", desc)
	}
	fmt.Fprintf(&b, " The total comes to $%.2f.", invoice.Amount)

	switch {
	case invoice.Status == models.InvoiceStatusPaid:
		b.WriteString(" This invoice has been paid in full - thank you!")
	case invoice.DueDate != nil:
		due := *invoice.DueDate
		if days := utils.DaysBetween(time.Now(), due); days > 0 {
			fmt.Fprintf(&b, " Payment is due in %d days (%s).", days, due.Format("Jan 2, 2006"))
		} else {
			fmt.Fprintf(&b, " Payment is due by %s.", due.Format("Jan 2, 2006"))
		}
	}

	return &InvoiceMessage{
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Message:      b.String(),
	}, nil
}
