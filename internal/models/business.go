package models

type Business struct {
	Base

	Name           string `gorm:"size:100;not null" json:"name"`
	WhatsappNumber string `gorm:"size:20;uniqueIndex;not null" json:"whatsapp_number"`

	// IANA zone name, validated on create/update. Booking math converts
	// UTC instants into this zone before checking working hours.
	Timezone string `gorm:"size:64;not null" json:"timezone"`

	WorkingHours []WorkingHours `gorm:"constraint:OnDelete:CASCADE" json:"working_hours"`

	BufferMinutes     int    `gorm:"default:0" json:"buffer_minutes"`
	AcceptingBookings bool   `gorm:"default:true" json:"accepting_bookings"`
	LanguageDefault   string `gorm:"size:5;default:'en'" json:"language_default"`
}
