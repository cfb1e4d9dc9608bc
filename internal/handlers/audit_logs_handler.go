package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hadir-app/hadir-api/internal/httpresp"
	"github.com/hadir-app/hadir-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List returns a business's audit trail, newest first.
func (h *AuditLogsHandler) List(c *gin.Context) {
	businessID, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	q := h.db.
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(limit)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	var logs []models.AuditLog
	if err := q.Find(&logs).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, logs)
}
