package controllers

import (
	"net/http"
	"time"

	"wwcrm-backend/models"
	"wwcrm-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	db *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{db: db}
}

type DashboardOverview struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalInvoices  int64           `json:"total_invoices"`
	MonthlyRevenue float64         `json:"monthly_revenue"`
	ByStatus       []StatusSummary `json:"by_status"`
	RecentInvoices []RecentInvoice `json:"recent_invoices"`
}

type StatusSummary struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

type RecentInvoice struct {
	ID           uint      `json:"id"`
	CustomerName string    `json:"customer_name"`
	ServiceDate  time.Time `json:"service_date"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
}

// Overview aggregates counts, per-status totals, the current month's paid
// revenue and the five most recent invoices
func (ctl *DashboardController) Overview(c *gin.Context) {
	db := ctl.db.WithContext(c.Request.Context())
	overview := DashboardOverview{
		ByStatus:       []StatusSummary{},
		RecentInvoices: []RecentInvoice{},
	}

	if err := db.Model(&models.Customer{}).Count(&overview.TotalCustomers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	if err := db.Model(&models.Invoice{}).Count(&overview.TotalInvoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	// This month's revenue from paid work, by service date
	firstOfMonth := utils.BeginningOfMonth(time.Now())
	if err := db.Model(&models.Invoice{}).
		Where("status = ? AND service_date >= ?", models.InvoiceStatusPaid, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&overview.MonthlyRevenue).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	if err := db.Model(&models.Invoice{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(amount), 0) as amount").
		Group("status").
		Order("status").
		Scan(&overview.ByStatus).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	if err := db.Raw(`
        SELECT i.id, c.name AS customer_name, i.service_date, i.amount, i.status
        FROM invoices i
        JOIN customers c ON c.id = i.customer_id
        ORDER BY i.service_date DESC, i.id DESC
        LIMIT 5
    `).Scan(&overview.RecentInvoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
