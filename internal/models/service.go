package models

import "github.com/google/uuid"

type Service struct {
	Base

	BusinessID uuid.UUID `gorm:"type:uuid;index;not null" json:"business_id"`

	NameEN string `gorm:"size:100;not null" json:"name_en"`
	NameAR string `gorm:"size:100;not null" json:"name_ar"`

	DurationMinutes int      `gorm:"not null" json:"duration_minutes"`
	Price           *float64 `json:"price"`
	Active          bool     `gorm:"default:true" json:"active"`
}
