package models

import "time"

type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Email    string `gorm:"size:100;index;not null" json:"email"`

	ClassLevel      *string `gorm:"size:20" json:"class_level"`
	City            *string `gorm:"size:50" json:"city"`
	PreviousYksRank *int    `json:"previous_yks_rank"`

	Camps  StringList `gorm:"type:text" json:"camps"`
	Prices FloatList  `gorm:"type:text" json:"prices"`

	// Soft reference by value to PartnershipCode.Code.
	PartnershipCode *string `gorm:"size:50;index" json:"partnership_code"`

	IsPaid    bool `gorm:"default:false" json:"is_paid"`
	IsDeleted bool `gorm:"default:false;index" json:"is_deleted"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}
