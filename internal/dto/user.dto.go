package dto

import (
	"time"

	"github.com/kampusadmin/dashboard-api/internal/models"
)

type UserDTO struct {
	ID                        uint      `json:"id"`
	Email                     string    `json:"email"`
	CanManageCustomers        bool      `json:"can_manage_customers"`
	CanViewFinancials         bool      `json:"can_view_financials"`
	CanManagePartnershipCodes bool      `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool      `json:"can_view_partnership_stats"`
	CanManageAccess           bool      `json:"can_manage_access"`
	IsActive                  bool      `json:"is_active"`
	CreatedAt                 time.Time `json:"created_at"`
}

func FromUser(u *models.User) UserDTO {
	return UserDTO{
		ID:                        u.ID,
		Email:                     u.Email,
		CanManageCustomers:        u.CanManageCustomers,
		CanViewFinancials:         u.CanViewFinancials,
		CanManagePartnershipCodes: u.CanManagePartnershipCodes,
		CanViewPartnershipStats:   u.CanViewPartnershipStats,
		CanManageAccess:           u.CanManageAccess,
		IsActive:                  u.IsActive,
		CreatedAt:                 u.CreatedAt,
	}
}
