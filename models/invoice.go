package models

import "time"

// Invoice statuses. No workflow is enforced beyond membership; an invoice
// may be moved between any two statuses.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

type Invoice struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	CustomerID         uint       `gorm:"index;not null" json:"customer_id"`
	ServiceDate        time.Time  `gorm:"not null" json:"service_date"`
	IssueDate          time.Time  `json:"issue_date"`
	DueDate            *time.Time `json:"due_date"`
	Amount             float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status             string     `gorm:"size:20;default:'draft'" json:"status"`
	ServiceDescription string     `json:"service_description"`

	CreatedAt time.Time `json:"created_at"`
}
