package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/localskill/marketplace-api/internal/audit"
	"github.com/localskill/marketplace-api/internal/cache"
	"github.com/localskill/marketplace-api/internal/config"
	"github.com/localskill/marketplace-api/internal/handlers"
	infraRepo "github.com/localskill/marketplace-api/internal/infra/repository"
	"github.com/localskill/marketplace-api/internal/middleware"
	"github.com/localskill/marketplace-api/internal/storage"
	ucBooking "github.com/localskill/marketplace-api/internal/usecase/booking"
	ucProvider "github.com/localskill/marketplace-api/internal/usecase/provider"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	feed *cache.FeedCache,
	uploader *storage.S3Uploader,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	providerRepo := infraRepo.NewProviderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(
		bookingRepo,
		auditDispatcher,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	listClientBookingsUC := ucBooking.NewListBookingsForClient(
		bookingRepo,
	)

	// ======================================================
	// USE CASES — PROVIDERS
	// ======================================================
	searchProvidersUC := ucProvider.NewSearchProviders(
		providerRepo,
		feed,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploader)

	providerHandler := handlers.NewProviderHandler(providerRepo, searchProvidersUC)
	providerAccountHandler := handlers.NewProviderAccountHandler(db)
	providerServiceHandler := handlers.NewProviderServiceHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		confirmBookingUC,
		completeBookingUC,
		cancelBookingUC,
		listClientBookingsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		api.GET("/providers", providerHandler.Search)
		api.GET("/providers/:id", providerHandler.GetProfile)
		api.GET("/providers/:id/services", providerHandler.ListServices)
		api.GET("/providers/:id/reviews", providerHandler.ListReviews)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			secured.GET("/me/provider", providerAccountHandler.GetMeProvider)
			secured.PATCH("/me/provider", providerAccountHandler.UpdateMeProvider)

			secured.GET("/me/services", providerServiceHandler.List)
			secured.POST("/me/services", providerServiceHandler.Create)
			secured.PATCH("/me/services/:id", providerServiceHandler.Update)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.PATCH("/me/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
