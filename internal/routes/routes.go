package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-scheduler/internal/audit"
	"github.com/BruksfildServices01/shop-scheduler/internal/cache"
	"github.com/BruksfildServices01/shop-scheduler/internal/config"
	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/shop-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/shop-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/shop-scheduler/internal/locks"
	"github.com/BruksfildServices01/shop-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/shop-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	shopLocker := locks.NewShopLocker()
	shopCache := cache.New(cfg.RedisAddr, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBook(appointmentRepo, shopLocker, auditDispatcher, log)
	transitionUC := ucAppointment.NewTransition(appointmentRepo, auditDispatcher, log)
	deleteUC := ucAppointment.NewDelete(appointmentRepo, auditDispatcher, log)
	listUC := ucAppointment.NewList(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	shopHandler := handlers.NewShopHandler(db, shopCache)
	appointmentHandler := handlers.NewAppointmentHandler(listUC, transitionUC, deleteUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db, shopCache, bookUC)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/shops/:id", publicHandler.GetShop)
			publicAPI.POST("/appointments", publicHandler.BookAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// OWNER
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/shop", shopHandler.GetMyShop)
			secured.PATCH("/me/shop", shopHandler.UpdateMyShop)

			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Transition(domain.StatusConfirmed))
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Transition(domain.StatusCancelled))
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Transition(domain.StatusCompleted))
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
