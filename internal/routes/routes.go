package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/turf-booking/internal/audit"
	"github.com/BruksfildServices01/turf-booking/internal/config"
	"github.com/BruksfildServices01/turf-booking/internal/domain/account"
	"github.com/BruksfildServices01/turf-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/turf-booking/internal/infra/repository"
	"github.com/BruksfildServices01/turf-booking/internal/middleware"
	ucAccount "github.com/BruksfildServices01/turf-booking/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/turf-booking/internal/usecase/booking"
	ucSlot "github.com/BruksfildServices01/turf-booking/internal/usecase/slot"
	ucTurf "github.com/BruksfildServices01/turf-booking/internal/usecase/turf"
)

// Deps are the process-wide collaborators the router is built from.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Audit  audit.Sink
	Redis  *redis.Client // nil disables rate limiting
	Logger *slog.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	cfg := deps.Config
	db := deps.DB

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotRepo := infraRepo.NewSlotGormRepository(db)
	turfRepo := infraRepo.NewTurfGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	tokens := account.NewTokens(cfg.JWTSecret, cfg.JWTTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	bookSlotUC := ucBooking.NewBookSlot(bookingRepo, deps.Audit)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, deps.Audit)
	historyUC := ucBooking.NewListBookingHistory(bookingRepo, cfg.AppTimezone)

	createSlotUC := ucSlot.NewCreateSlot(slotRepo, deps.Audit)
	deleteSlotUC := ucSlot.NewDeleteSlot(slotRepo, deps.Audit)

	browseUC := ucTurf.NewBrowseTurfs(turfRepo, cfg.LatestTurfsLimit)
	manageUC := ucTurf.NewManageTurfs(turfRepo, deps.Audit, cfg.DefaultTurfPrice)
	dashboardUC := ucTurf.NewOwnerDashboard(turfRepo)

	registerUC := ucAccount.NewRegister(userRepo, tokens, cfg.VerifyEmailDomain)
	loginUC := ucAccount.NewLogin(userRepo, tokens)
	profileUC := ucAccount.NewProfile(userRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(profileUC, historyUC)
	turfHandler := handlers.NewTurfHandler(browseUC)
	bookingHandler := handlers.NewBookingHandler(bookSlotUC, cancelBookingUC)
	ownerHandler := handlers.NewOwnerHandler(manageUC, dashboardUC, createSlotUC, deleteSlotUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	limit := func(prefix string) gin.HandlerFunc {
		return middleware.RateLimit(deps.Redis, "rl:"+prefix, cfg.RateLimitPerMinute, time.Minute)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth", limit("auth"))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// PUBLIC CATALOGUE
		// ------------------------------
		api.GET("/turfs", turfHandler.List)
		api.GET("/turfs/latest", turfHandler.Latest)
		api.GET("/turfs/:id", turfHandler.Detail)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.DELETE("/me", meHandler.DeleteMe)
			secured.GET("/me/bookings", meHandler.Bookings)

			secured.POST("/slots/:id/book", limit("book"), bookingHandler.Book)
			secured.POST("/bookings/:id/cancel", limit("cancel"), bookingHandler.Cancel)
		}

		// ------------------------------
		// OWNER
		// ------------------------------
		owner := api.Group("/owner")
		owner.Use(middleware.AuthMiddleware(tokens), middleware.RequireOwner())
		{
			owner.GET("/dashboard", ownerHandler.Dashboard)
			owner.GET("/turfs/:id/revenue", ownerHandler.TurfRevenue)

			owner.POST("/turfs", ownerHandler.CreateTurf)
			owner.PATCH("/turfs/:id", ownerHandler.UpdateTurf)
			owner.DELETE("/turfs/:id", ownerHandler.DeleteTurf)

			owner.POST("/turfs/:id/slots", ownerHandler.CreateSlot)
			owner.DELETE("/slots/:id", ownerHandler.DeleteSlot)

			owner.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
