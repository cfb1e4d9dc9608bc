package models

import "github.com/google/uuid"

// WorkingHours is one weekly slot a business accepts bookings in.
// Weekday follows the stored convention 0=Monday .. 6=Sunday.
// Rows are owned by the business and replaced wholesale on update;
// Position preserves declaration order so "first slot wins" is stable.
type WorkingHours struct {
	Base

	BusinessID uuid.UUID `gorm:"type:uuid;index;not null" json:"business_id"`

	Position int `gorm:"not null;default:0" json:"position"`
	Weekday  int `gorm:"not null" json:"day"`

	StartTime string `gorm:"size:5;not null" json:"start"`
	EndTime   string `gorm:"size:5;not null" json:"end"`
}
