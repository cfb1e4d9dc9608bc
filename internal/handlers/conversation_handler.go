package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/httpresp"
	"github.com/hadir-app/hadir-api/internal/models"
)

type ConversationHandler struct {
	db *gorm.DB
}

func NewConversationHandler(db *gorm.DB) *ConversationHandler {
	return &ConversationHandler{db: db}
}

type MessageRequest struct {
	Dir  string    `json:"dir" binding:"required,oneof=in out"`
	Text string    `json:"text" binding:"required"`
	Ts   time.Time `json:"ts" binding:"required"`
}

// AddMessage appends one message to the business/customer conversation,
// creating the conversation on first contact.
func (h *ConversationHandler) AddMessage(c *gin.Context) {
	customerID, ok := parseID(c, c.Param("customer_id"))
	if !ok {
		return
	}
	businessID, ok := parseID(c, c.Query("business_id"))
	if !ok {
		return
	}

	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		httperr.BadRequest(c, "empty_message", "Message text must not be empty.")
		return
	}

	if err := h.db.First(&models.Business{}, "id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("business_not_found"))
			return
		}
		respondError(c, err)
		return
	}
	if err := h.db.First(&models.Customer{}, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("customer_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	ts := req.Ts.UTC()

	var conv models.Conversation
	err := h.db.Transaction(func(tx *gorm.DB) error {
		// Two first-contact messages can race into this insert, so it
		// must not abort on idx_conversations_pair: upsert, then read
		// back whichever row won.
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "business_id"}, {Name: "customer_id"}},
				DoNothing: true,
			}).
			Create(&models.Conversation{BusinessID: businessID, CustomerID: customerID}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("business_id = ? AND customer_id = ?", businessID, customerID).
			First(&conv).Error; err != nil {
			return err
		}

		msg := models.Message{
			ConversationID: conv.ID,
			Direction:      req.Dir,
			Text:           text,
			Ts:             ts,
		}
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}

		// Backfilled messages carry an older ts and must not rewind
		// the conversation ordering key.
		if conv.LastMessageAt == nil || conv.LastMessageAt.Before(ts) {
			return tx.Model(&conv).Update("last_message_at", ts).Error
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.loadAndRespond(c, conv.ID)
}

func (h *ConversationHandler) GetByCustomer(c *gin.Context) {
	customerID, ok := parseID(c, c.Param("customer_id"))
	if !ok {
		return
	}
	businessID, ok := parseID(c, c.Query("business_id"))
	if !ok {
		return
	}

	var conv models.Conversation
	if err := h.db.
		Where("business_id = ? AND customer_id = ?", businessID, customerID).
		First(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("conversation_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	h.loadAndRespond(c, conv.ID)
}

func (h *ConversationHandler) ListByBusiness(c *gin.Context) {
	businessID, ok := parseID(c, c.Query("business_id"))
	if !ok {
		return
	}

	var conversations []models.Conversation
	if err := h.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("ts ASC")
		}).
		Where("business_id = ?", businessID).
		Order("last_message_at DESC NULLS LAST").
		Find(&conversations).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, conversations)
}

func (h *ConversationHandler) loadAndRespond(c *gin.Context, id uuid.UUID) {
	var conv models.Conversation
	if err := h.db.
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("ts ASC")
		}).
		First(&conv, "id = ?", id).Error; err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, conv)
}
