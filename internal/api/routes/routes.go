package routes

import (
	"context"

	"showcase-portal-backend/internal/api/handlers"
	"showcase-portal-backend/internal/api/middleware"
	"showcase-portal-backend/internal/auth"
	"showcase-portal-backend/internal/authz"
	"showcase-portal-backend/internal/cache"
	"showcase-portal-backend/internal/config"
	"showcase-portal-backend/internal/logger"
	"showcase-portal-backend/internal/repository"
	"showcase-portal-backend/internal/service"
	"showcase-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Infrastructure carries the optional backing services; nil fields disable the feature
type Infrastructure struct {
	Redis     *redis.Client
	Publisher service.EventPublisher
	Store     *storage.BlobStore
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, infra Infrastructure) (*gin.Engine, error) {
	router := gin.New()

	corsHandler, err := middleware.CORS(cfg)
	if err != nil {
		return nil, err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsHandler)
	router.Use(middleware.Metrics())

	authorizer, err := authz.NewAuthorizer()
	if err != nil {
		return nil, err
	}
	validate := service.NewValidator()

	// Initialize repositories
	packageRepo := repository.NewPackageRepository(db)
	userRepo := repository.NewUserRepository(db)
	approvalRepo := repository.NewShowcaseApprovalRepository(db)
	associationRepo := repository.NewShowcasePackageAssociationRepository(db)
	adminRepo := repository.NewShowcaseAdminRepository(db)

	// Initialize side-effect collaborators
	notifier := service.NewNotifier(infra.Publisher, userRepo, adminRepo, cfg.SiteTitle, cfg.SiteURL)

	var statsCache service.StatsCache
	if infra.Redis != nil {
		statsCache = cache.NewStatsCache(infra.Redis, cfg.StatsCacheTTL)
	}

	var imageStore service.ImageStore
	var imageReader handlers.ImageReader
	if infra.Store != nil {
		imageStore = infra.Store
		imageReader = infra.Store
	}

	// Initialize services
	deps := service.ShowcaseServiceDeps{
		PackageRepo:     packageRepo,
		UserRepo:        userRepo,
		ApprovalRepo:    approvalRepo,
		AssociationRepo: associationRepo,
		AdminRepo:       adminRepo,
		Authorizer:      authorizer,
		Notifier:        notifier,
		Cache:           statsCache,
		Validator:       validate,
		PublicUploadURL: cfg.PublicUploadURL,
	}
	showcaseService := service.NewShowcaseService(deps)
	approvalService := service.NewApprovalService(deps)
	associationService := service.NewAssociationService(deps)
	adminService := service.NewAdminService(userRepo, adminRepo, authorizer)
	uploadService := service.NewUploadService(imageStore, authorizer, cfg.PublicUploadURL, cfg.MaxImageSize)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, healthChecks(infra))
	showcaseHandler := handlers.NewShowcaseHandler(showcaseService)
	approvalHandler := handlers.NewApprovalHandler(approvalService)
	associationHandler := handlers.NewAssociationHandler(associationService)
	adminHandler := handlers.NewAdminHandler(adminService)
	uploadHandler := handlers.NewUploadHandler(uploadService, imageReader)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/uploads/*key", uploadHandler.ServeUpload)

	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/validate", authHandler.ValidateToken)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes. Services decide per action whether a login is needed,
	// so the token is optional here.
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.OptionalAuth())
	{
		showcases := v1.Group("/showcases")
		{
			showcases.GET("", showcaseHandler.ListShowcases)
			showcases.POST("", showcaseHandler.CreateShowcase)
			showcases.GET("/dashboard", showcaseHandler.FilteredShowcases)
			showcases.GET("/statistics", showcaseHandler.Statistics)
			showcases.POST("/upload", uploadHandler.UploadImage)
			showcases.GET("/:id", showcaseHandler.GetShowcase)
			showcases.PUT("/:id", showcaseHandler.UpdateShowcase)
			showcases.DELETE("/:id", showcaseHandler.DeleteShowcase)
			showcases.GET("/:id/status", approvalHandler.GetStatus)
			showcases.PUT("/:id/status", approvalHandler.UpdateStatus)
			showcases.GET("/:id/packages", associationHandler.ShowcasePackages)
			showcases.POST("/:id/packages", associationHandler.CreateAssociation)
			showcases.DELETE("/:id/packages/:package_id", associationHandler.DeleteAssociation)
		}

		v1.GET("/packages/:id/showcases", associationHandler.PackageShowcases)

		admins := v1.Group("/showcase-admins")
		admins.Use(authMiddleware.RequireAuth())
		{
			admins.GET("", adminHandler.ListAdmins)
			admins.POST("", adminHandler.AddAdmin)
			admins.DELETE("/:username", adminHandler.RemoveAdmin)
		}
	}

	logger.New().WithFields(map[string]interface{}{
		"cache":         infra.Redis != nil,
		"notifications": infra.Publisher != nil,
		"uploads":       infra.Store != nil,
	}).Info("routes configured")

	return router, nil
}

func healthChecks(infra Infrastructure) map[string]handlers.Check {
	checks := map[string]handlers.Check{}
	if infra.Redis != nil {
		client := infra.Redis
		checks["cache"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
	}
	if infra.Store != nil {
		store := infra.Store
		checks["storage"] = func(ctx context.Context) error {
			_, err := store.Exists(ctx, ".health")
			return err
		}
	}
	return checks
}
