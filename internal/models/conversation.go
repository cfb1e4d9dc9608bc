package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the message log between one business and one customer.
type Conversation struct {
	Base

	BusinessID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_conversations_pair;not null" json:"business_id"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_conversations_pair;not null" json:"customer_id"`

	LastMessageAt *time.Time `json:"last_message_at"`

	Messages []Message `gorm:"constraint:OnDelete:CASCADE" json:"messages"`
}

type Message struct {
	Base

	ConversationID uuid.UUID `gorm:"type:uuid;index;not null" json:"conversation_id"`

	Direction string    `gorm:"size:3;not null" json:"dir"` // in, out
	Text      string    `gorm:"type:text;not null" json:"text"`
	Ts        time.Time `gorm:"not null" json:"ts"`
}
