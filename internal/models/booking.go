package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	Base

	BusinessID uuid.UUID `gorm:"type:uuid;index:idx_bookings_business_window;not null" json:"business_id"`
	Business   Business  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer   Customer  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	ServiceID uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	// UTC instants. EndTime is derived from the service duration at
	// creation and never recomputed afterwards.
	StartTime time.Time `gorm:"index:idx_bookings_business_window;not null" json:"start_time"`
	EndTime   time.Time `gorm:"index:idx_bookings_business_window;not null" json:"end_time"`

	Status     string `gorm:"size:20;default:'confirmed'" json:"status"`
	CreatedVia string `gorm:"size:10;default:'admin'" json:"created_via"`
}
