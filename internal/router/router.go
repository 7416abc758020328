package router

import (
	"time"

	"dealerdesk/internal/config"
	"dealerdesk/internal/handler"
	"dealerdesk/internal/metrics"
	"dealerdesk/internal/middleware"
	"dealerdesk/internal/model"
	"dealerdesk/internal/repository"
	"dealerdesk/internal/service"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
	"dealerdesk/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← upstream clients / Repository ← Redis/DB
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, breaker *upstream.Breaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.ConsoleURL))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(metrics.HTTP())

	// ── Infrastructure ───────────────────────────────────────────────────────
	authAPI := upstream.NewAuthClient(cfg.UpstreamAPIURL, breaker)
	dealersAPI := upstream.NewDealersClient(cfg.UpstreamAPIURL, breaker)
	loansAPI := upstream.NewLoansClient(cfg.UpstreamAPIURL, breaker)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewManager(session.NewRedisStore(rdb), cfg.SessionSecret, sessionTTL)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	auditRepo := repository.NewAuditRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(authAPI, sessions, auditRepo)
	dealerSvc := service.NewDealerService(dealersAPI, loansAPI, auditRepo, cfg.PDFStoragePath)
	loanSvc := service.NewLoanService(loansAPI, auditRepo)
	repSvc := service.NewRepresentativeService(authAPI, auditRepo, dispatcher, cfg.ConsoleURL)
	dashboardSvc := service.NewDashboardService(dealersAPI, loansAPI)
	auditSvc := service.NewAuditService(auditRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, sessionTTL, cfg.Env == "production")
	dealersH := handler.NewDealersHandler(dealerSvc)
	loansH := handler.NewLoansHandler(loanSvc)
	repsH := handler.NewRepresentativesHandler(repSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	auditH := handler.NewAuditHandler(auditSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, breaker))
	r.GET("/metrics", metrics.Handler())

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", authH.Register)
	}

	// Protected routes
	guard := middleware.SessionGuard(sessions)
	v1 := r.Group("/v1", guard)
	{
		v1.POST("/auth/logout", authH.Logout)
		v1.GET("/auth/session", authH.Session)

		// Admin console — internal staff only
		admin := v1.Group("", middleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/dashboard/admin", dashboardH.Admin)

			dealers := admin.Group("/dealers")
			{
				dealers.POST("", dealersH.Onboard)
				dealers.GET("", dealersH.List)
				dealers.GET("/:id", dealersH.Get)
				dealers.PUT("/:id", dealersH.Update)
				dealers.GET("/:id/statement.pdf", dealersH.Statement)
				dealers.GET("/:id/loans", loansH.ByDealer)
			}

			loans := admin.Group("/loans")
			{
				loans.GET("", loansH.List)
				loans.GET("/:id", loansH.Get)
				loans.DELETE("/:id", loansH.Delete)
			}

			reps := admin.Group("/representatives")
			{
				reps.POST("", repsH.Create)
				reps.GET("", repsH.List)
				reps.GET("/:id", repsH.Get)
				reps.PUT("/:id", repsH.Update)
				reps.DELETE("/:id", repsH.Delete)
			}

			admin.GET("/audit", auditH.Recent)
		}

		// Dealer self-service
		v1.GET("/dashboard/dealer", middleware.RequireRole(model.RoleDealer), dashboardH.Dealer)
	}

	return r
}
