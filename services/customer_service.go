package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wwcrm-backend/models"
	"wwcrm-backend/utils"

	"gorm.io/gorm"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// CreateCustomerInput carries the fields accepted when creating a customer.
type CreateCustomerInput struct {
	Name         string
	Phone        string
	Email        string
	Address      string
	BuildingType string
	ServiceUnits int
	Notes        string
}

// UpdateCustomerInput uses pointers so absent fields are left untouched.
type UpdateCustomerInput struct {
	Name         *string
	Phone        *string
	Email        *string
	Address      *string
	BuildingType *string
	ServiceUnits *int
	Notes        *string
}

// CustomerFilter narrows and orders List results. Query matches
// name/phone/email as a case-insensitive substring. Sort accepts "name"
// or "created_at"; anything else falls back to created_at descending.
type CustomerFilter struct {
	Query string
	Sort  string
	Order string
}

func (s *CustomerService) Create(ctx context.Context, in CreateCustomerInput) (*models.Customer, error) {
	if err := validateCustomer(in.Name, in.Phone, in.ServiceUnits); err != nil {
		return nil, err
	}

	customer := models.Customer{
		Name:         strings.TrimSpace(in.Name),
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		BuildingType: in.BuildingType,
		ServiceUnits: in.ServiceUnits,
		Notes:        in.Notes,
	}

	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uint, in UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		customer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.BuildingType != nil {
		customer.BuildingType = *in.BuildingType
	}
	if in.ServiceUnits != nil {
		customer.ServiceUnits = *in.ServiceUnits
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}

	if err := validateCustomer(customer.Name, customer.Phone, customer.ServiceUnits); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer and cascades to its invoices in one
// transaction.
func (s *CustomerService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Customer{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: customer %d", ErrNotFound, id)
		}
		return nil
	})
}

func (s *CustomerService) List(ctx context.Context, filter CustomerFilter) ([]models.Customer, error) {
	query := s.db.WithContext(ctx).Model(&models.Customer{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	sort := "created_at"
	if filter.Sort == "name" {
		sort = "name"
	}
	order := "desc"
	if strings.EqualFold(filter.Order, "asc") {
		order = "asc"
	}

	var customers []models.Customer
	if err := query.Order(sort + " " + order).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func validateCustomer(name, phone string, serviceUnits int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if phone != "" && !utils.ValidatePhone(phone) {
		return fmt.Errorf("%w: invalid phone number format", ErrValidation)
	}
	if serviceUnits < 0 {
		return fmt.Errorf("%w: service units cannot be negative", ErrValidation)
	}
	return nil
}
