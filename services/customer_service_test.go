package services

import (
	"context"
	"testing"
	"time"

	"wwcrm-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateCustomerInput
	}{
		{name: "EmptyName", input: CreateCustomerInput{Name: ""}},
		{name: "BlankName", input: CreateCustomerInput{Name: "   "}},
		{name: "NegativeServiceUnits", input: CreateCustomerInput{Name: "Dana", ServiceUnits: -1}},
		{name: "BadPhone", input: CreateCustomerInput{Name: "Dana", Phone: "not-a-number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.input)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCustomerService_CreateTrimsName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	customer, err := svc.Create(context.Background(), CreateCustomerInput{
		Name:         "  Dana Cole  ",
		Phone:        "+1 (555) 555-0100",
		BuildingType: "commercial",
		ServiceUnits: 48,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Cole", customer.Name)
	assert.NotZero(t, customer.ID)
	assert.Nil(t, customer.LastInvoiceID)
}

func TestCustomerService_GetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerService_UpdatePartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Dana")

	notes := "Back gate code 4417"
	units := 30
	updated, err := svc.Update(ctx, customer.ID, UpdateCustomerInput{
		Notes:        &notes,
		ServiceUnits: &units,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana", updated.Name)
	assert.Equal(t, "Back gate code 4417", updated.Notes)
	assert.Equal(t, 30, updated.ServiceUnits)

	empty := ""
	_, err = svc.Update(ctx, customer.ID, UpdateCustomerInput{Name: &empty})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, 999, UpdateCustomerInput{Notes: &notes})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerService_DeleteCascadesInvoices(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	invoiceSvc := NewInvoiceService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Dana")
	keep := seedCustomer(t, db, "Eli")

	for _, day := range []int{3, 9} {
		_, err := invoiceSvc.Create(ctx, CreateInvoiceInput{
			CustomerID:  customer.ID,
			ServiceDate: date(2024, time.October, day),
			Amount:      20.00,
		})
		require.NoError(t, err)
	}
	kept, err := invoiceSvc.Create(ctx, CreateInvoiceInput{
		CustomerID:  keep.ID,
		ServiceDate: date(2024, time.October, 5),
		Amount:      40.00,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, customer.ID))

	_, err = svc.GetByID(ctx, customer.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var remaining []models.Invoice
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
}

func TestCustomerService_DeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)

	err := svc.Delete(context.Background(), 123)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerService_ListFilterAndSort(t *testing.T) {
	db := newTestDB(t)
	svc := NewCustomerService(db)
	ctx := context.Background()

	for _, in := range []CreateCustomerInput{
		{Name: "Anna Park", Phone: "+15550001111", Email: "anna@example.com"},
		{Name: "Ben Field", Phone: "+15550002222", Email: "ben@parkside.org"},
		{Name: "Cara Young", Phone: "+15551110003", Email: "cara@example.com"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	// Case-insensitive substring across name and email
	got, err := svc.List(ctx, CustomerFilter{Query: "PARK"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Phone substring
	got, err = svc.List(ctx, CustomerFilter{Query: "555111"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cara Young", got[0].Name)

	// Sorted by name ascending
	got, err = svc.List(ctx, CustomerFilter{Sort: "name", Order: "asc"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Anna Park", got[0].Name)
	assert.Equal(t, "Cara Young", got[2].Name)

	// Unknown sort key falls back without error
	got, err = svc.List(ctx, CustomerFilter{Sort: "drop table"})
	require.NoError(t, err)
	require.Len(t, got, 3)
}
