package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ttsbooking/consult-platform/internal/audit"
	"github.com/ttsbooking/consult-platform/internal/cache"
	"github.com/ttsbooking/consult-platform/internal/config"
	"github.com/ttsbooking/consult-platform/internal/handlers"
	infraRepo "github.com/ttsbooking/consult-platform/internal/infra/repository"
	"github.com/ttsbooking/consult-platform/internal/middleware"
	"github.com/ttsbooking/consult-platform/internal/models"
	ucBooking "github.com/ttsbooking/consult-platform/internal/usecase/booking"
)

type Deps struct {
	DB           *gorm.DB
	Config       *config.Config
	ServiceCache *cache.ServiceCache
	Presigner    handlers.UploadPresigner
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(deps.DB)
	catalogRepo := infraRepo.NewCatalogGormRepository(deps.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(deps.DB)

	auditLogger := audit.New(deps.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// BOOKING USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)
	listByUserUC := ucBooking.NewListBookingsByUser(bookingRepo)
	listByConsultantUC := ucBooking.NewListBookingsByConsultant(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, deps.Config, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(catalogRepo, deps.ServiceCache, auditDispatcher)
	consultantHandler := handlers.NewConsultantHandler(catalogRepo, deps.Presigner)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listByUserUC,
		listByConsultantUC,
	)

	authed := middleware.Authenticate(deps.Config)
	consultantOnly := middleware.RequireRoles(models.RoleConsultant, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/", handlers.Index)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/me", authed, authHandler.GetMe)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)
		api.POST("/services", authed, consultantOnly, serviceHandler.Create)

		// ------------------------------
		// CONSULTANTS
		// ------------------------------
		api.GET("/consultants", consultantHandler.List)
		api.GET("/consultants/:id", consultantHandler.Get)
		api.POST("/consultants/:id/avatar-upload-url", authed, consultantOnly, consultantHandler.AvatarUploadURL)
		api.PUT("/consultants/:id/avatar", authed, consultantOnly, consultantHandler.SetAvatar)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.POST("/bookings", authed, bookingHandler.Create)
		api.GET("/bookings/user/:user_id", authed, bookingHandler.ListByUser)
		api.GET("/bookings/consultant/:consultant_id", authed, consultantOnly, bookingHandler.ListByConsultant)
		api.PATCH("/bookings/:id/confirm", authed, consultantOnly, bookingHandler.Confirm)
		api.PATCH("/bookings/:id/cancel", authed, bookingHandler.Cancel)
		api.PATCH("/bookings/:id/complete", authed, consultantOnly, bookingHandler.Complete)

		// ------------------------------
		// AUDIT LOGS
		// ------------------------------
		api.GET("/audit-logs", authed, adminOnly, auditLogsHandler.List)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Requested resource not found.",
		})
	})
}
