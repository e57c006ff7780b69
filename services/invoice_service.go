package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wwcrm-backend/models"
	"wwcrm-backend/utils"

	"gorm.io/gorm"
)

type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// CreateInvoiceInput carries the fields accepted when creating an invoice.
// Status defaults to draft and IssueDate to now when left empty.
type CreateInvoiceInput struct {
	CustomerID         uint
	ServiceDate        time.Time
	IssueDate          time.Time
	DueDate            *time.Time
	Amount             float64
	Status             string
	ServiceDescription string
}

// UpdateInvoiceInput uses pointers so absent fields are left untouched.
// Reassigning CustomerID moves the invoice to another customer; both
// customers' snapshots are recomputed.
type UpdateInvoiceInput struct {
	CustomerID         *uint
	ServiceDate        *time.Time
	IssueDate          *time.Time
	DueDate            *time.Time
	Amount             *float64
	Status             *string
	ServiceDescription *string
}

func (s *InvoiceService) Create(ctx context.Context, in CreateInvoiceInput) (*models.Invoice, error) {
	if in.Status == "" {
		in.Status = models.InvoiceStatusDraft
	}
	if err := validateInvoice(in.Amount, in.Status, in.ServiceDate); err != nil {
		return nil, err
	}
	if in.IssueDate.IsZero() {
		in.IssueDate = time.Now()
	}

	invoice := models.Invoice{
		CustomerID:         in.CustomerID,
		ServiceDate:        in.ServiceDate,
		IssueDate:          in.IssueDate,
		DueDate:            in.DueDate,
		Amount:             in.Amount,
		Status:             in.Status,
		ServiceDescription: in.ServiceDescription,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, in.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: customer %d", ErrNotFound, in.CustomerID)
			}
			return err
		}

		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		return syncLastInvoice(tx, invoice.CustomerID)
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.db.WithContext(ctx).First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invoice %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoiceService) Update(ctx context.Context, id uint, in UpdateInvoiceInput) (*models.Invoice, error) {
	var invoice models.Invoice

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&invoice, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: invoice %d", ErrNotFound, id)
			}
			return err
		}

		previousCustomerID := invoice.CustomerID

		if in.CustomerID != nil && *in.CustomerID != invoice.CustomerID {
			var customer models.Customer
			if err := tx.First(&customer, *in.CustomerID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: customer %d", ErrNotFound, *in.CustomerID)
				}
				return err
			}
			invoice.CustomerID = *in.CustomerID
		}

		if in.ServiceDate != nil {
			invoice.ServiceDate = *in.ServiceDate
		}
		if in.IssueDate != nil {
			invoice.IssueDate = *in.IssueDate
		}
		if in.DueDate != nil {
			invoice.DueDate = in.DueDate
		}
		if in.Amount != nil {
			invoice.Amount = *in.Amount
		}
		if in.Status != nil {
			invoice.Status = *in.Status
		}
		if in.ServiceDescription != nil {
			invoice.ServiceDescription = *in.ServiceDescription
		}

		if err := validateInvoice(invoice.Amount, invoice.Status, invoice.ServiceDate); err != nil {
			return err
		}

		if err := tx.Save(&invoice).Error; err != nil {
			return err
		}

		if err := syncLastInvoice(tx, invoice.CustomerID); err != nil {
			return err
		}
		if previousCustomerID != invoice.CustomerID {
			return syncLastInvoice(tx, previousCustomerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := tx.First(&invoice, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: invoice %d", ErrNotFound, id)
			}
			return err
		}

		if err := tx.Delete(&invoice).Error; err != nil {
			return err
		}
		return syncLastInvoice(tx, invoice.CustomerID)
	})
}

// List returns every invoice, newest service first.
func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.WithContext(ctx).
		Order("service_date DESC").Order("id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListByCustomer returns one customer's invoices, newest service first.
func (s *InvoiceService) ListByCustomer(ctx context.Context, customerID uint) ([]models.Invoice, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
		}
		return nil, err
	}

	var invoices []models.Invoice
	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("service_date DESC").Order("id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// syncLastInvoice rewrites the customer's cached last-invoice columns from
// the customer's current invoice set. It must run inside the same
// transaction as the invoice mutation that triggered it: both commit
// together or neither does. Recomputing against unchanged state writes
// identical values.
func syncLastInvoice(tx *gorm.DB, customerID uint) error {
	updates := map[string]interface{}{
		"last_invoice_id":          nil,
		"last_invoice_date":        nil,
		"last_invoice_amount":      nil,
		"last_invoice_description": nil,
	}

	var latest models.Invoice
	err := tx.Where("customer_id = ?", customerID).
		Order("service_date DESC").Order("id DESC").
		First(&latest).Error
	if err == nil {
		updates["last_invoice_id"] = latest.ID
		updates["last_invoice_date"] = latest.ServiceDate
		updates["last_invoice_amount"] = latest.Amount
		updates["last_invoice_description"] = latest.ServiceDescription
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	result := tx.Model(&models.Customer{}).Where("id = ?", customerID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Owner vanished under us; abort the whole mutation rather than
		// leave invoices pointing at a missing customer.
		return fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
	}
	return nil
}

func validateInvoice(amount float64, status string, serviceDate time.Time) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	if !utils.ValidateInvoiceStatus(status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}
	if serviceDate.IsZero() {
		return fmt.Errorf("%w: service date is required", ErrValidation)
	}
	return nil
}
