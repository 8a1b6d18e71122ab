package app

import (
	"net/http"

	"barbercrm/internal/cache"
	"barbercrm/internal/config"
	"barbercrm/internal/middleware"
	"barbercrm/internal/modules/auth"
	"barbercrm/internal/modules/dashboard"
	"barbercrm/internal/modules/export"
	"barbercrm/internal/modules/records"
	"barbercrm/internal/modules/summary"
	"barbercrm/internal/observability"
	jwtsvc "barbercrm/internal/pkg/jwt"
	"barbercrm/internal/repository"
	"barbercrm/internal/tracking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the process-wide resources the HTTP API is built from.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Cache   cache.Cache
	Log     *zap.Logger
	Version string
}

// App is the assembled HTTP API.
type App struct {
	Router *gin.Engine
	Hub    *dashboard.Hub
}

// New wires repositories, services and handlers into one router.
func New(d Deps) (*App, error) {
	cfg := d.Config
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	goals, err := tracking.NewRegistry(cfg.GoalOverrides)
	if err != nil {
		return nil, err
	}

	branchRepo := repository.NewBranchRepository(d.DB)
	recordRepo := repository.NewRecordRepository(d.DB)
	summaryRepo := repository.NewSummaryRepository(d.DB)

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := dashboard.NewHub()

	authService := auth.NewService(branchRepo, tokens)
	dashboardService := dashboard.NewService(
		recordRepo,
		branchRepo,
		goals,
		d.Cache,
		cfg.DashboardCacheTTL,
		dashboard.BreakerSettings{MaxFailures: cfg.BreakerMaxFailures, OpenTimeout: cfg.BreakerOpenTimeout},
		hub,
		log.Named("dashboard"),
	)
	recordService := records.NewService(recordRepo, cfg.HistoryLimit, log.Named("records"), dashboardService)
	summaryService := summary.NewService(summaryRepo, dashboardService, log.Named("summary"))
	exportService := export.NewService(recordService, dashboardService, log.Named("export"))

	authHandler := auth.NewHandler(authService)
	recordHandler := records.NewHandler(recordService)
	dashboardHandler := dashboard.NewHandler(dashboardService, hub, log.Named("live"))
	summaryHandler := summary.NewHandler(summaryService)
	exportHandler := export.NewHandler(exportService)

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger(log))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.AccessLog(log))
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(observability.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": d.Version})
	})

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(tokens))
		{
			authHandler.RegisterProtectedRoutes(protected)

			branchScoped := protected.Group("")
			branchScoped.Use(middleware.RequireOwnBranch("branch"))
			{
				recordHandler.RegisterRoutes(branchScoped)
				dashboardHandler.RegisterRoutes(branchScoped)
				summaryHandler.RegisterRoutes(branchScoped)
				exportHandler.RegisterRoutes(branchScoped)
			}
		}
	}

	return &App{Router: r, Hub: hub}, nil
}
