package models

import "time"

// PartnershipCode is referenced by customers via the code string itself,
// not the row id.
type PartnershipCode struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code     string `gorm:"size:50;uniqueIndex;not null" json:"code"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
