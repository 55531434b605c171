package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agenasports/pitch-scheduler/internal/audit"
	"github.com/agenasports/pitch-scheduler/internal/config"
	"github.com/agenasports/pitch-scheduler/internal/handlers"
	infraRepo "github.com/agenasports/pitch-scheduler/internal/infra/repository"
	"github.com/agenasports/pitch-scheduler/internal/middleware"
	"github.com/agenasports/pitch-scheduler/internal/realtime"
	ucReservation "github.com/agenasports/pitch-scheduler/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *realtime.Hub, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		reservationRepo,
		auditDispatcher,
		hub,
	)

	deleteOccurrenceUC := ucReservation.NewDeleteOccurrence(
		reservationRepo,
		auditDispatcher,
		hub,
	)

	markNoShowUC := ucReservation.NewMarkNoShow(
		reservationRepo,
		auditDispatcher,
		hub,
	)

	skipWeekUC := ucReservation.NewSkipWeek(
		reservationRepo,
		auditDispatcher,
		hub,
	)

	dayViewUC := ucReservation.NewGetDayView(reservationRepo)
	monthCountsUC := ucReservation.NewMonthCounts(reservationRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		deleteOccurrenceUC,
		markNoShowUC,
		skipWeekUC,
	)

	dayViewHandler := handlers.NewDayViewHandler(dayViewUC, monthCountsUC)
	streamHandler := handlers.NewStreamHandler(hub)

	pitchHandler := handlers.NewPitchHandler(db, auditDispatcher, hub)
	blacklistHandler := handlers.NewBlacklistHandler(db, auditDispatcher)
	customerHandler := handlers.NewCustomerHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/pitches", pitchHandler.List)
		api.GET("/pitches/:id/day", dayViewHandler.Day)
		api.GET("/pitches/:id/month", dayViewHandler.Month)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/pitches", pitchHandler.Create)
			secured.PATCH("/pitches/:id", pitchHandler.Rename)
			secured.DELETE("/pitches/:id", pitchHandler.Delete)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.POST("/me/reservations", reservationHandler.Create)
			secured.DELETE("/me/reservations/:id", reservationHandler.DeleteOccurrence)
			secured.PATCH("/me/reservations/:id/no-show", reservationHandler.MarkNoShow)
			secured.PATCH("/me/reservations/:id/skip-week", reservationHandler.SkipWeek)
			secured.GET("/me/reservations/stream", streamHandler.Reservations)

			secured.GET("/me/blacklist", blacklistHandler.List)
			secured.POST("/me/blacklist", blacklistHandler.Add)
			secured.DELETE("/me/blacklist/:id", blacklistHandler.Remove)

			secured.GET("/me/customers", customerHandler.List)
			secured.PATCH("/me/customers/:id", customerHandler.Update)
			secured.DELETE("/me/customers/:id", customerHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
