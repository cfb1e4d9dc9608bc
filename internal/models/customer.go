package models

type Customer struct {
	Base

	// Unique conversation id assigned by the WhatsApp provider.
	WhatsappID string `gorm:"size:100;uniqueIndex;not null" json:"whatsapp_id"`

	Phone    string `gorm:"size:20;not null" json:"phone"`
	Name     string `gorm:"size:100" json:"name"`
	Language string `gorm:"size:5;default:'en'" json:"language"`
}
