package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kampusadmin/dashboard-api/internal/audit"
	"github.com/kampusadmin/dashboard-api/internal/httperr"
	"github.com/kampusadmin/dashboard-api/internal/httpresp"
	"github.com/kampusadmin/dashboard-api/internal/middleware"
	"github.com/kampusadmin/dashboard-api/internal/models"
	"github.com/kampusadmin/dashboard-api/internal/timezone"
	"github.com/kampusadmin/dashboard-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCustomerRequest struct {
	FullName        string    `json:"full_name" binding:"required"`
	Phone           string    `json:"phone" binding:"required"`
	Email           string    `json:"email" binding:"required,email"`
	ClassLevel      *string   `json:"class_level"`
	City            *string   `json:"city"`
	PreviousYksRank *int      `json:"previous_yks_rank"`
	Camps           []string  `json:"camps"`
	Prices          []float64 `json:"prices"`
	PartnershipCode *string   `json:"partnership_code"`
}

type UpdateCustomerRequest struct {
	FullName        *string    `json:"full_name,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Email           *string    `json:"email,omitempty"`
	ClassLevel      *string    `json:"class_level,omitempty"`
	City            *string    `json:"city,omitempty"`
	PreviousYksRank *int       `json:"previous_yks_rank,omitempty"`
	Camps           *[]string  `json:"camps,omitempty"`
	Prices          *[]float64 `json:"prices,omitempty"`
	PartnershipCode *string    `json:"partnership_code,omitempty"`
}

type UpdatePaidRequest struct {
	IsPaid *bool `json:"is_paid" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

// assertCodeUsable runs inside the caller's transaction so the referenced
// code cannot be deactivated between the check and the write.
func assertCodeUsable(tx *gorm.DB, code *string) error {
	if code == nil || *code == "" {
		return nil
	}

	var pc models.PartnershipCode
	if err := tx.Where("code = ?", *code).First(&pc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return httperr.ErrBusiness(httperr.CodeInvalidReference)
		}
		return err
	}

	if !pc.IsActive {
		return httperr.ErrBusiness(httperr.CodeInvalidReference)
	}

	return nil
}

// ======================================================
// LIST
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	isPaidStr := strings.TrimSpace(c.Query("is_paid"))
	code := strings.TrimSpace(c.Query("code"))
	includeDeleted := c.Query("include_deleted") == "true"

	q := h.db.Model(&models.Customer{})

	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	if isPaidStr == "true" {
		q = q.Where("is_paid = ?", true)
	} else if isPaidStr == "false" {
		q = q.Where("is_paid = ?", false)
	}

	if code != "" {
		q = q.Where("partnership_code = ?", code)
	}

	var customers []models.Customer
	if err := q.
		Order("created_at DESC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_customers", "Could not list customers.")
		return
	}

	httpresp.List(c, customers)
}

// ======================================================
// CREATE
// ======================================================

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := validators.ValidateCampsPrices(req.Camps, req.Prices); err != nil {
		httperr.BadRequest(c, httperr.CodeValidationError, "camps and prices must align one to one.")
		return
	}

	customer := models.Customer{
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		ClassLevel:      req.ClassLevel,
		City:            req.City,
		PreviousYksRank: req.PreviousYksRank,
		Camps:           models.StringList(req.Camps),
		Prices:          models.FloatList(req.Prices),
		PartnershipCode: normalizeCode(req.PartnershipCode),
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := assertCodeUsable(tx, customer.PartnershipCode); err != nil {
			return err
		}
		return tx.Create(&customer).Error
	})

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidReference) {
			httperr.BadRequest(c, httperr.CodeInvalidReference, "Partnership code does not exist or is inactive.")
			return
		}
		httperr.Internal(c, "failed_to_create_customer", "Could not create customer.")
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "customer_created",
		Entity:    "customer",
		EntityID:  &customer.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusCreated, customer)
}

// ======================================================
// GET
// ======================================================

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	includeDeleted := c.Query("include_deleted") == "true"

	q := h.db.Where("id = ?", id)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var customer models.Customer
	if err := q.First(&customer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var customer models.Customer

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND is_deleted = ?", id, false).
			First(&customer).Error; err != nil {
			return err
		}

		if req.FullName != nil {
			customer.FullName = *req.FullName
		}
		if req.Phone != nil {
			customer.Phone = *req.Phone
		}
		if req.Email != nil {
			customer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
		}
		if req.ClassLevel != nil {
			customer.ClassLevel = req.ClassLevel
		}
		if req.City != nil {
			customer.City = req.City
		}
		if req.PreviousYksRank != nil {
			customer.PreviousYksRank = req.PreviousYksRank
		}

		if req.Camps != nil {
			customer.Camps = models.StringList(*req.Camps)
		}
		if req.Prices != nil {
			customer.Prices = models.FloatList(*req.Prices)
		}
		if err := validators.ValidateCampsPrices(customer.Camps, customer.Prices); err != nil {
			return err
		}

		if req.PartnershipCode != nil {
			customer.PartnershipCode = normalizeCode(req.PartnershipCode)
			if err := assertCodeUsable(tx, customer.PartnershipCode); err != nil {
				return err
			}
		}

		return tx.Save(&customer).Error
	})

	if err != nil {
		switch {
		case err == gorm.ErrRecordNotFound:
			httperr.NotFound(c, httperr.CodeNotFound, "Customer not found.")
		case httperr.IsBusiness(err, httperr.CodeValidationError):
			httperr.BadRequest(c, httperr.CodeValidationError, "camps and prices must align one to one.")
		case httperr.IsBusiness(err, httperr.CodeInvalidReference):
			httperr.BadRequest(c, httperr.CodeInvalidReference, "Partnership code does not exist or is inactive.")
		default:
			httperr.Internal(c, "failed_to_update_customer", "Could not update customer.")
		}
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "customer_updated",
		Entity:    "customer",
		EntityID:  &customer.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, customer)
}

// ======================================================
// UPDATE PAYMENT STATUS
// ======================================================

func (h *CustomerHandler) UpdatePaid(c *gin.Context) {
	id := c.Param("id")

	var req UpdatePaidRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPaid == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND is_deleted = ?", id, false).
		First(&customer).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	customer.IsPaid = *req.IsPaid
	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "Could not update customer.")
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "customer_payment_updated",
		Entity:    "customer",
		EntityID:  &customer.ID,
		RequestID: middleware.GetRequestID(c),
		Metadata:  gin.H{"is_paid": customer.IsPaid},
	})

	c.JSON(http.StatusOK, customer)
}

// ======================================================
// SOFT DELETE
// ======================================================

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.
		Where("id = ? AND is_deleted = ?", id, false).
		First(&customer).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Customer not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_customer", "Could not load customer.")
		return
	}

	now := timezone.Now()
	customer.IsDeleted = true
	customer.DeletedAt = &now

	if err := h.db.Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_customer", "Could not delete customer.")
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "customer_deleted",
		Entity:    "customer",
		EntityID:  &customer.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
