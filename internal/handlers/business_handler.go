package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hadir-app/hadir-api/internal/audit"
	"github.com/hadir-app/hadir-api/internal/cache"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/httpresp"
	"github.com/hadir-app/hadir-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BusinessHandler struct {
	db    *gorm.DB
	cache *cache.Cache
	audit *audit.Dispatcher
}

func NewBusinessHandler(db *gorm.DB, c *cache.Cache, a *audit.Dispatcher) *BusinessHandler {
	return &BusinessHandler{db: db, cache: c, audit: a}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkingHoursRequest struct {
	Day   int    `json:"day" binding:"min=0,max=6"`
	Start string `json:"start" binding:"required,hhmm"`
	End   string `json:"end" binding:"required,hhmm"`
}

type BusinessRequest struct {
	Name              string                `json:"name" binding:"required"`
	WhatsappNumber    string                `json:"whatsapp_number" binding:"required,e164"`
	Timezone          string                `json:"timezone" binding:"required,iana_tz"`
	WorkingHours      []WorkingHoursRequest `json:"working_hours" binding:"required,dive"`
	BufferMinutes     int                   `json:"buffer_minutes" binding:"min=0,max=120"`
	AcceptingBookings *bool                 `json:"accepting_bookings"`
	LanguageDefault   string                `json:"language_default" binding:"required,oneof=ar en"`
}

// validateHours rejects slots whose end does not come after their
// start. Zero-padded HH:MM strings order correctly as text.
func (req *BusinessRequest) validateHours() error {
	for _, wh := range req.WorkingHours {
		if wh.End <= wh.Start {
			return httperr.ErrBusiness("invalid_working_hours")
		}
	}
	return nil
}

func (req *BusinessRequest) workingHours() []models.WorkingHours {
	hours := make([]models.WorkingHours, 0, len(req.WorkingHours))
	for i, wh := range req.WorkingHours {
		hours = append(hours, models.WorkingHours{
			Position:  i,
			Weekday:   wh.Day,
			StartTime: wh.Start,
			EndTime:   wh.End,
		})
	}
	return hours
}

// ======================================================
// CREATE
// ======================================================

func (h *BusinessHandler) Create(c *gin.Context) {
	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if err := req.validateHours(); err != nil {
		respondError(c, err)
		return
	}

	var existing models.Business
	err := h.db.
		Where("whatsapp_number = ?", req.WhatsappNumber).
		First(&existing).Error
	if err == nil {
		respondError(c, httperr.ErrBusiness("whatsapp_number_taken"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	accepting := true
	if req.AcceptingBookings != nil {
		accepting = *req.AcceptingBookings
	}

	biz := models.Business{
		Name:              req.Name,
		WhatsappNumber:    req.WhatsappNumber,
		Timezone:          req.Timezone,
		WorkingHours:      req.workingHours(),
		BufferMinutes:     req.BufferMinutes,
		AcceptingBookings: accepting,
		LanguageDefault:   req.LanguageDefault,
	}

	if err := h.db.Create(&biz).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, biz)
}

// ======================================================
// READ
// ======================================================

func (h *BusinessHandler) Get(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var biz models.Business
	if err := h.db.
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&biz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("business_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	httpresp.OK(c, biz)
}

func (h *BusinessHandler) List(c *gin.Context) {
	var businesses []models.Business
	if err := h.db.
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at ASC").
		Find(&businesses).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, businesses)
}

// ======================================================
// UPDATE
// ======================================================

// Update replaces the business record including its working-hours rows.
// Working hours are mutated only through this endpoint.
func (h *BusinessHandler) Update(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if err := req.validateHours(); err != nil {
		respondError(c, err)
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("business_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	var dup models.Business
	dupErr := h.db.
		Where("whatsapp_number = ? AND id <> ?", req.WhatsappNumber, biz.ID).
		First(&dup).Error
	if dupErr == nil {
		respondError(c, httperr.ErrBusiness("whatsapp_number_taken"))
		return
	}
	if !errors.Is(dupErr, gorm.ErrRecordNotFound) {
		respondError(c, dupErr)
		return
	}

	accepting := biz.AcceptingBookings
	if req.AcceptingBookings != nil {
		accepting = *req.AcceptingBookings
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("business_id = ?", biz.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		biz.Name = req.Name
		biz.WhatsappNumber = req.WhatsappNumber
		biz.Timezone = req.Timezone
		biz.BufferMinutes = req.BufferMinutes
		biz.AcceptingBookings = accepting
		biz.LanguageDefault = req.LanguageDefault
		biz.WorkingHours = req.workingHours()
		for i := range biz.WorkingHours {
			biz.WorkingHours[i].BusinessID = biz.ID
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&biz).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.InvalidateBusiness(c.Request.Context(), biz.ID)

	h.audit.Dispatch(audit.Event{
		BusinessID: biz.ID,
		Action:     "business_updated",
		Entity:     "business",
		EntityID:   &biz.ID,
	})

	httpresp.OK(c, biz)
}
