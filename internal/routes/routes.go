package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hadir-app/hadir-api/internal/audit"
	"github.com/hadir-app/hadir-api/internal/cache"
	"github.com/hadir-app/hadir-api/internal/handlers"
	infraRepo "github.com/hadir-app/hadir-api/internal/infra/repository"
	ucBooking "github.com/hadir-app/hadir-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c *cache.Cache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db, c)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	updateBookingUC := ucBooking.NewUpdateBookingStatus(bookingRepo, auditDispatcher)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	businessHandler := handlers.NewBusinessHandler(db, c, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	conversationHandler := handlers.NewConversationHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		updateBookingUC,
		listBookingsUC,
		availabilityUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// BUSINESSES
		// ------------------------------
		api.POST("/businesses", businessHandler.Create)
		api.GET("/businesses", businessHandler.List)
		api.GET("/businesses/:id", businessHandler.Get)
		api.PUT("/businesses/:id", businessHandler.Update)
		api.GET("/businesses/:id/audit-logs", auditLogsHandler.List)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.POST("/services", serviceHandler.Create)
		api.GET("/services", serviceHandler.ListByBusiness)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// CUSTOMERS
		// ------------------------------
		api.POST("/customers", customerHandler.CreateOrUpdate)
		api.GET("/customers", customerHandler.List)
		api.GET("/customers/:whatsapp_id", customerHandler.GetByWhatsappID)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.List)
		api.PUT("/bookings/:id", bookingHandler.UpdateStatus)
		api.DELETE("/bookings/:id", bookingHandler.Delete)
		api.GET("/availability", bookingHandler.Availability)

		// ------------------------------
		// CONVERSATIONS
		// ------------------------------
		api.POST("/conversations/:customer_id/messages", conversationHandler.AddMessage)
		api.GET("/conversations/:customer_id", conversationHandler.GetByCustomer)
		api.GET("/conversations", conversationHandler.ListByBusiness)
	}
}
