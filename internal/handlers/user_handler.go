package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kampusadmin/dashboard-api/internal/audit"
	"github.com/kampusadmin/dashboard-api/internal/dto"
	"github.com/kampusadmin/dashboard-api/internal/httperr"
	"github.com/kampusadmin/dashboard-api/internal/httpresp"
	"github.com/kampusadmin/dashboard-api/internal/middleware"
	"github.com/kampusadmin/dashboard-api/internal/models"
	"github.com/kampusadmin/dashboard-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	CanManageCustomers        bool `json:"can_manage_customers"`
	CanViewFinancials         bool `json:"can_view_financials"`
	CanManagePartnershipCodes bool `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool `json:"can_view_partnership_stats"`
	CanManageAccess           bool `json:"can_manage_access"`
}

type UpdateUserRequest struct {
	CanManageCustomers        *bool `json:"can_manage_customers,omitempty"`
	CanViewFinancials         *bool `json:"can_view_financials,omitempty"`
	CanManagePartnershipCodes *bool `json:"can_manage_partnership_codes,omitempty"`
	CanViewPartnershipStats   *bool `json:"can_view_partnership_stats,omitempty"`
	CanManageAccess           *bool `json:"can_manage_access,omitempty"`
	IsActive                  *bool `json:"is_active,omitempty"`
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.
		Order("created_at ASC").
		Find(&users).Error; err != nil {

		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.FromUser(&users[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create user.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, httperr.CodeDuplicateEmail, "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create user.")
		return
	}

	user := models.User{
		Email:                     email,
		PasswordHash:              string(hashed),
		CanManageCustomers:        req.CanManageCustomers,
		CanViewFinancials:         req.CanViewFinancials,
		CanManagePartnershipCodes: req.CanManagePartnershipCodes,
		CanViewPartnershipStats:   req.CanViewPartnershipStats,
		CanManageAccess:           req.CanManageAccess,
		IsActive:                  true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateEmail, "A user with this email already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Could not create user.")
		return
	}

	actor := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &actor.ID,
		Action:    "user_created",
		Entity:    "user",
		EntityID:  &user.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusCreated, dto.FromUser(&user))
}

// ======================================================
// UPDATE (capability flags, is_active)
// ======================================================

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Could not load user.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.CanManageCustomers != nil {
		user.CanManageCustomers = *req.CanManageCustomers
	}
	if req.CanViewFinancials != nil {
		user.CanViewFinancials = *req.CanViewFinancials
	}
	if req.CanManagePartnershipCodes != nil {
		user.CanManagePartnershipCodes = *req.CanManagePartnershipCodes
	}
	if req.CanViewPartnershipStats != nil {
		user.CanViewPartnershipStats = *req.CanViewPartnershipStats
	}
	if req.CanManageAccess != nil {
		user.CanManageAccess = *req.CanManageAccess
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update user.")
		return
	}

	actor := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &actor.ID,
		Action:    "user_updated",
		Entity:    "user",
		EntityID:  &user.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, dto.FromUser(&user))
}

// ======================================================
// DEACTIVATE
// ======================================================

// Users are never hard-deleted; delete means is_active=false.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, httperr.CodeNotFound, "User not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Could not load user.")
		return
	}

	user.IsActive = false
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not deactivate user.")
		return
	}

	actor := middleware.CurrentUser(c)
	h.audit.Dispatch(audit.Event{
		UserID:    &actor.ID,
		Action:    "user_deactivated",
		Entity:    "user",
		EntityID:  &user.ID,
		RequestID: middleware.GetRequestID(c),
	})

	c.JSON(http.StatusOK, dto.FromUser(&user))
}
