package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/kampusadmin/dashboard-api/internal/audit"
	"github.com/kampusadmin/dashboard-api/internal/httperr"
	"github.com/kampusadmin/dashboard-api/internal/httpresp"
	"github.com/kampusadmin/dashboard-api/internal/middleware"
	"github.com/kampusadmin/dashboard-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PartnershipCodeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPartnershipCodeHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PartnershipCodeHandler {
	return &PartnershipCodeHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePartnershipCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *PartnershipCodeHandler) List(c *gin.Context) {
	var codes []models.PartnershipCode
	if err := h.db.
		Order("created_at DESC").
		Find(&codes).Error; err != nil {

		httperr.Internal(c, "failed_to_list_codes", "Could not list partnership codes.")
		return
	}

	httpresp.List(c, codes)
}

// ======================================================
// CREATE
// ======================================================

// Create rejects an already-taken code. The in-transaction lookup handles
// the normal case; the unique index catches the race between two concurrent
// creates and comes back as a 23505.
func (h *PartnershipCodeHandler) Create(c *gin.Context) {
	var req CreatePartnershipCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		httperr.BadRequest(c, httperr.CodeValidationError, "Code must not be empty.")
		return
	}

	pc := models.PartnershipCode{
		Code:     code,
		IsActive: true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PartnershipCode{}).
			Where("code = ?", code).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeDuplicateCode)
		}

		return tx.Create(&pc).Error
	})

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeDuplicateCode) || isUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateCode, "Partnership code already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_code", "Could not create partnership code.")
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "partnership_code_created",
		Entity:    "partnership_code",
		EntityID:  &pc.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusCreated, pc)
}

// ======================================================
// DEACTIVATE
// ======================================================

func (h *PartnershipCodeHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")

	var pc models.PartnershipCode
	if err := h.db.First(&pc, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "Partnership code not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_code", "Could not load partnership code.")
		return
	}

	pc.IsActive = false
	if err := h.db.Save(&pc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_code", "Could not deactivate partnership code.")
		return
	}

	user := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &user.ID,
		Action:    "partnership_code_deactivated",
		Entity:    "partnership_code",
		EntityID:  &pc.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, pc)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
