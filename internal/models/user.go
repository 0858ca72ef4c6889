package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CanManageCustomers        bool `gorm:"default:false" json:"can_manage_customers"`
	CanViewFinancials         bool `gorm:"default:false" json:"can_view_financials"`
	CanManagePartnershipCodes bool `gorm:"default:false" json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool `gorm:"default:false" json:"can_view_partnership_stats"`
	CanManageAccess           bool `gorm:"default:false" json:"can_manage_access"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Capability is one of the five independent permission flags on a user.
// There is no hierarchy between them; a user may hold any subset.
type Capability string

const (
	CapManageCustomers        Capability = "manage_customers"
	CapViewFinancials         Capability = "view_financials"
	CapManagePartnershipCodes Capability = "manage_partnership_codes"
	CapViewPartnershipStats   Capability = "view_partnership_stats"
	CapManageAccess           Capability = "manage_access"
)

func (u *User) Can(cap Capability) bool {
	switch cap {
	case CapManageCustomers:
		return u.CanManageCustomers
	case CapViewFinancials:
		return u.CanViewFinancials
	case CapManagePartnershipCodes:
		return u.CanManagePartnershipCodes
	case CapViewPartnershipStats:
		return u.CanViewPartnershipStats
	case CapManageAccess:
		return u.CanManageAccess
	}
	return false
}
