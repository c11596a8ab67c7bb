package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HiteshiPatil10/tressora-backend/internal/audit"
	"github.com/HiteshiPatil10/tressora-backend/internal/cache"
	"github.com/HiteshiPatil10/tressora-backend/internal/config"
	"github.com/HiteshiPatil10/tressora-backend/internal/handlers"
	infraRepo "github.com/HiteshiPatil10/tressora-backend/internal/infra/repository"
	"github.com/HiteshiPatil10/tressora-backend/internal/middleware"
	ucAnalytics "github.com/HiteshiPatil10/tressora-backend/internal/usecase/analytics"
	ucAppointment "github.com/HiteshiPatil10/tressora-backend/internal/usecase/appointment"
	ucSchedule "github.com/HiteshiPatil10/tressora-backend/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store *cache.Cache) {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	analyticsRepo := infraRepo.NewAnalyticsGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	timeout := cfg.StoreTimeout

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, timeout)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, timeout)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, timeout)
	startAppointmentUC := ucAppointment.NewStartAppointment(appointmentRepo, auditDispatcher, timeout)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher, timeout)

	slotMatrixUC := ucSchedule.NewGetSlotMatrix(appointmentRepo, timeout)
	reassignUC := ucSchedule.NewReassignAppointment(appointmentRepo, auditDispatcher, timeout)

	revenueUC := ucAnalytics.NewRevenue(analyticsRepo, store, timeout)
	breakdownUC := ucAnalytics.NewBreakdown(analyticsRepo, store, timeout)
	overviewUC := ucAnalytics.NewGetOverview(analyticsRepo, timeout)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	offerHandler := handlers.NewOfferHandler(db)
	whatsappHandler := handlers.NewWhatsAppHandler(db)
	invoiceHandler := handlers.NewInvoiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		cancelAppointmentUC,
		startAppointmentUC,
		completeAppointmentUC,
		reassignUC,
		store,
	)

	slotsHandler := handlers.NewSlotsHandler(slotMatrixUC)
	analyticsHandler := handlers.NewAnalyticsHandler(revenueUC, breakdownUC)
	dashboardHandler := handlers.NewDashboardHandler(overviewUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/salon", salonHandler.Get)
			secured.PATCH("/salon", salonHandler.Update)

			// ------------------------------
			// STAFF
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.GET("/barbers/attendance", barberHandler.Attendance)
			secured.GET("/barbers/:id", barberHandler.Get)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.PATCH("/barbers/:id/status", barberHandler.SetStatus)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SLOTS + APPOINTMENTS
			// ------------------------------
			secured.GET("/slots", slotsHandler.Matrix)

			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/start", appointmentHandler.Start)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/reassign", appointmentHandler.Reassign)

			// ------------------------------
			// OFFERS
			// ------------------------------
			secured.GET("/offers", offerHandler.List)
			secured.POST("/offers", offerHandler.Create)
			secured.PATCH("/offers/:id", offerHandler.Update)
			secured.DELETE("/offers/:id", offerHandler.Delete)
			secured.POST("/offers/:id/broadcast", offerHandler.Broadcast)

			// ------------------------------
			// MESSAGES + BILLING
			// ------------------------------
			secured.GET("/whatsapp", whatsappHandler.List)
			secured.GET("/whatsapp/summary", whatsappHandler.Summary)

			secured.GET("/invoices", invoiceHandler.List)
			secured.GET("/invoices/summary", invoiceHandler.Summary)
			secured.GET("/invoices/:id", invoiceHandler.Get)

			// ------------------------------
			// ANALYTICS + DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/overview", dashboardHandler.Overview)

			secured.GET("/analytics/revenue", analyticsHandler.Revenue)
			secured.GET("/analytics/services", analyticsHandler.Services)
			secured.GET("/analytics/payment-methods", analyticsHandler.PaymentMethods)
			secured.GET("/analytics/peak-hours", analyticsHandler.PeakHours)
			secured.GET("/analytics/barbers", analyticsHandler.BarberStats)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
