package models

import (
	"time"
)

type Customer struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:20" json:"phone"`
	Email        string `gorm:"size:100" json:"email"`
	Address      string `gorm:"size:200" json:"address"`
	BuildingType string `gorm:"size:20" json:"building_type"`
	ServiceUnits int    `gorm:"default:0" json:"service_units"`
	Notes        string `json:"notes"`

	// Cached snapshot of this customer's most recent invoice (latest
	// service date, ties broken by highest id). Maintained by the invoice
	// service whenever one of this customer's invoices changes; all four
	// stay null while the customer has no invoices.
	LastInvoiceID          *uint      `json:"last_invoice_id"`
	LastInvoiceDate        *time.Time `json:"last_invoice_date"`
	LastInvoiceAmount      *float64   `gorm:"type:decimal(10,2)" json:"last_invoice_amount"`
	LastInvoiceDescription *string    `json:"last_invoice_description"`

	Invoices []Invoice `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"invoices,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
