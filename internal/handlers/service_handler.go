package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/httpresp"
	"github.com/hadir-app/hadir-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type CreateServiceRequest struct {
	BusinessID      string   `json:"business_id" binding:"required,uuid"`
	NameEN          string   `json:"name_en" binding:"required"`
	NameAR          string   `json:"name_ar" binding:"required"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,min=5,max=300"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	Active          *bool    `json:"active"`
}

type UpdateServiceRequest struct {
	NameEN          *string  `json:"name_en" binding:"omitempty,min=1"`
	NameAR          *string  `json:"name_ar" binding:"omitempty,min=1"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,min=5,max=300"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	Active          *bool    `json:"active"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	businessID, ok := parseID(c, req.BusinessID)
	if !ok {
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("business_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	svc := models.Service{
		BusinessID:      businessID,
		NameEN:          req.NameEN,
		NameAR:          req.NameAR,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Active:          active,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) ListByBusiness(c *gin.Context) {
	businessID, ok := parseID(c, c.Query("business_id"))
	if !ok {
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, "id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("business_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	var services []models.Service
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, httperr.ErrBusiness("service_not_found"))
			return
		}
		respondError(c, err)
		return
	}

	if req.NameEN != nil {
		svc.NameEN = *req.NameEN
	}
	if req.NameAR != nil {
		svc.NameAR = *req.NameAR
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		svc.Price = req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	res := h.db.Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, httperr.ErrBusiness("service_not_found"))
		return
	}

	httpresp.OK(c, gin.H{"message": "service deleted"})
}
