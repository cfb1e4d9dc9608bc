package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/httpresp"
	"github.com/hadir-app/hadir-api/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

type CustomerRequest struct {
	WhatsappID string `json:"whatsapp_id" binding:"required"`
	Phone      string `json:"phone" binding:"required,e164"`
	Name       string `json:"name"`
	Language   string `json:"language" binding:"required,oneof=ar en"`
}

// CreateOrUpdate upserts a customer keyed by whatsapp_id: the provider
// assigns one id per contact, so repeat calls refresh the profile.
func (h *CustomerHandler) CreateOrUpdate(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var cust models.Customer
	err := h.db.
		Where("whatsapp_id = ?", req.WhatsappID).
		First(&cust).Error

	if err == nil {
		cust.Phone = req.Phone
		cust.Name = req.Name
		cust.Language = req.Language
		if err := h.db.Save(&cust).Error; err != nil {
			respondError(c, err)
			return
		}
		httpresp.OK(c, cust)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	cust = models.Customer{
		WhatsappID: req.WhatsappID,
		Phone:      req.Phone,
		Name:       req.Name,
		Language:   req.Language,
	}

	if err := h.db.Create(&cust).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, cust)
}

func (h *CustomerHandler) GetByWhatsappID(c *gin.Context) {
	whatsappID := c.Param("whatsapp_id")

	var cust models.Customer
	if err := h.db.
		Where("whatsapp_id = ?", whatsappID).
		First(&cust).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("customer_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	httpresp.OK(c, cust)
}

func (h *CustomerHandler) List(c *gin.Context) {
	var customers []models.Customer
	if err := h.db.
		Order("created_at DESC").
		Find(&customers).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, customers)
}
