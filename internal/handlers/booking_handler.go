package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/hadir-app/hadir-api/internal/domain/booking"
	"github.com/hadir-app/hadir-api/internal/httperr"
	"github.com/hadir-app/hadir-api/internal/httpresp"
	"github.com/hadir-app/hadir-api/internal/models"
	ucBooking "github.com/hadir-app/hadir-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db          *gorm.DB
	createUC    *ucBooking.CreateBooking
	updateUC    *ucBooking.UpdateBookingStatus
	listUC      *ucBooking.ListBookings
	availabilUC *ucBooking.GetAvailability
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateBooking,
	updateUC *ucBooking.UpdateBookingStatus,
	listUC *ucBooking.ListBookings,
	availabilUC *ucBooking.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		db:          db,
		createUC:    createUC,
		updateUC:    updateUC,
		listUC:      listUC,
		availabilUC: availabilUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BusinessID string    `json:"business_id" binding:"required,uuid"`
	CustomerID string    `json:"customer_id" binding:"required,uuid"`
	ServiceID  string    `json:"service_id" binding:"required,uuid"`
	StartTime  time.Time `json:"start_time" binding:"required"`
	CreatedVia string    `json:"created_via" binding:"omitempty,oneof=ai admin"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled rescheduled completed no_show"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	businessID, ok := parseID(c, req.BusinessID)
	if !ok {
		return
	}
	customerID, ok := parseID(c, req.CustomerID)
	if !ok {
		return
	}
	serviceID, ok := parseID(c, req.ServiceID)
	if !ok {
		return
	}

	createdVia := req.CreatedVia
	if createdVia == "" {
		createdVia = domain.CreatedViaAdmin
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		BusinessID: businessID,
		CustomerID: customerID,
		ServiceID:  serviceID,
		StartTime:  req.StartTime,
		CreatedVia: createdVia,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	businessID, ok := parseID(c, c.Query("business_id"))
	if !ok {
		return
	}

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), businessID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// STATUS UPDATE
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	businessID, ok := parseID(c, c.Query("business_id"))
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.updateUC.Execute(
		c.Request.Context(),
		businessID,
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE (plumbing; bookings are normally closed by status)
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	res := h.db.Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, httperr.ErrBusiness("booking_not_found"))
		return
	}

	httpresp.OK(c, gin.H{"message": "booking deleted"})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	businessID, ok := parseID(c, c.Query("business_id"))
	if !ok {
		return
	}
	serviceID, ok := parseID(c, c.Query("service_id"))
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, slots)
}
