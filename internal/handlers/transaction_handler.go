package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kampusadmin/dashboard-api/internal/audit"
	"github.com/kampusadmin/dashboard-api/internal/httperr"
	"github.com/kampusadmin/dashboard-api/internal/httpresp"
	"github.com/kampusadmin/dashboard-api/internal/middleware"
	"github.com/kampusadmin/dashboard-api/internal/models"
	"github.com/kampusadmin/dashboard-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type TransactionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTransactionHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *TransactionHandler {
	return &TransactionHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTransactionRequest struct {
	CustomerID      uint       `json:"customer_id" binding:"required"`
	Amount          float64    `json:"amount" binding:"required,gt=0"`
	TransactionDate *time.Time `json:"transaction_date"`
}

// ======================================================
// LIST
// ======================================================

func (h *TransactionHandler) List(c *gin.Context) {
	includeDeleted := c.Query("include_deleted") == "true"
	customerID := c.Query("customer_id")

	q := h.db.Model(&models.FinancialTransaction{})

	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}
	if customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}

	var txs []models.FinancialTransaction
	if err := q.
		Order("transaction_date DESC").
		Find(&txs).Error; err != nil {

		httperr.Internal(c, "failed_to_list_transactions", "Could not list transactions.")
		return
	}

	httpresp.List(c, txs)
}

// ======================================================
// CREATE
// ======================================================

// Create records a payment event for a live customer. The customer lookup
// shares the insert's transaction so a concurrent soft delete cannot slip a
// payment under a removed customer.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	date := timezone.Now()
	if req.TransactionDate != nil {
		date = *req.TransactionDate
	}

	txRecord := models.FinancialTransaction{
		CustomerID:      req.CustomerID,
		Amount:          req.Amount,
		TransactionDate: date,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Customer{}).
			Where("id = ? AND is_deleted = ?", req.CustomerID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return httperr.ErrBusiness(httperr.CodeInvalidReference)
		}

		return tx.Create(&txRecord).Error
	})

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidReference) {
			httperr.BadRequest(c, httperr.CodeInvalidReference, "Customer does not exist or is deleted.")
			return
		}
		httperr.Internal(c, "failed_to_create_transaction", "Could not record transaction.")
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "transaction_created",
		Entity:    "financial_transaction",
		EntityID:  &txRecord.ID,
		RequestID: middleware.GetRequestID(c),
		Metadata:  gin.H{"amount": txRecord.Amount, "customer_id": txRecord.CustomerID},
	})

	c.JSON(http.StatusCreated, txRecord)
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *TransactionHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var txRecord models.FinancialTransaction
	if err := h.db.
		Where("id = ? AND is_deleted = ?", id, false).
		First(&txRecord).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Transaction not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_transaction", "Could not load transaction.")
		return
	}

	txRecord.IsDeleted = true
	if err := h.db.Save(&txRecord).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_transaction", "Could not delete transaction.")
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "transaction_deleted",
		Entity:    "financial_transaction",
		EntityID:  &txRecord.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
