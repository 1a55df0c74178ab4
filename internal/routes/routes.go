package routes

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	"github.com/BruksfildServices01/reverse-logistics/internal/config"
	"github.com/BruksfildServices01/reverse-logistics/internal/handlers"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/reverse-logistics/internal/infra/repository"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/storage"
	"github.com/BruksfildServices01/reverse-logistics/internal/middleware"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	ucCollectionPoint "github.com/BruksfildServices01/reverse-logistics/internal/usecase/collectionpoint"
)

// Deps are the long-lived singletons built by main. Uploader may be nil.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Cache    cache.Cache
	Uploader storage.Uploader
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.Config.CORSAllowedOrigins...))

	// ======================================================
	// USE CASES: COLLECTION POINTS
	// ======================================================
	pointRepo := infraRepo.NewCollectionPointGormRepository(d.DB)
	loader := ucCollectionPoint.NewLoader(pointRepo, d.Cache, d.Config.CacheTTL, d.Log)

	pointUC := handlers.CollectionPointUseCases{
		Create:      ucCollectionPoint.NewCreateCollectionPoint(pointRepo, d.Audit),
		Update:      ucCollectionPoint.NewUpdateCollectionPoint(pointRepo, loader, d.Audit),
		Delete:      ucCollectionPoint.NewDeleteCollectionPoint(pointRepo, loader, d.Audit),
		UpdateHours: ucCollectionPoint.NewUpdateOperatingHours(pointRepo, loader, d.Audit),
		Status:      ucCollectionPoint.NewGetCollectionPointStatus(loader, nil),
		List:        ucCollectionPoint.NewListCollectionPoints(pointRepo, nil),
		Nearby:      ucCollectionPoint.NewListNearby(pointRepo, nil),
		Loader:      loader,
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Config, d.Audit)
	meHandler := handlers.NewMeHandler(d.DB)
	userHandler := handlers.NewUserHandler(d.DB, d.Audit, nil)
	carrierHandler := handlers.NewCarrierHandler(d.DB, d.Audit)
	establishmentHandler := handlers.NewEstablishmentHandler(d.DB, d.Audit, d.Uploader, d.Log)
	pointHandler := handlers.NewCollectionPointHandler(pointUC, d.Log)
	publicHandler := handlers.NewPublicHandler(pointHandler)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	api := r.Group("/api")

	// ======================================================
	// AUTH
	// ======================================================
	api.POST("/auth/login", authHandler.Login)

	// ======================================================
	// PUBLIC
	// ======================================================
	public := api.Group("/public")
	{
		public.GET("/collection-points", publicHandler.ListCollectionPoints)
		public.GET("/collection-points/nearby", publicHandler.Nearby)
		public.GET("/collection-points/:id/status", publicHandler.Status)
	}

	// ======================================================
	// PROTECTED
	// ======================================================
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(d.Config), middleware.CurrentUser(userStatus(d.DB)))

	auth.GET("/me", meHandler.GetMe)

	carriers := auth.Group("/carriers")
	{
		carriers.GET("", carrierHandler.List)
		carriers.POST("", carrierHandler.Create)
		carriers.GET("/:id", carrierHandler.Get)
		carriers.PATCH("/:id", carrierHandler.Update)
		carriers.DELETE("/:id", carrierHandler.Delete)
	}

	establishments := auth.Group("/establishments")
	{
		establishments.GET("", establishmentHandler.List)
		establishments.POST("", establishmentHandler.Create)
		establishments.GET("/:id", establishmentHandler.Get)
		establishments.PATCH("/:id", establishmentHandler.Update)
		establishments.DELETE("/:id", establishmentHandler.Delete)
		establishments.POST("/:id/logo", establishmentHandler.UploadLogo)
	}

	points := auth.Group("/collection-points")
	{
		points.GET("", pointHandler.List)
		points.POST("", pointHandler.Create)
		points.GET("/nearby", pointHandler.Nearby)
		points.GET("/:id", pointHandler.Get)
		points.PATCH("/:id", pointHandler.Update)
		points.DELETE("/:id", pointHandler.Delete)
		points.PUT("/:id/operating-hours", pointHandler.UpdateOperatingHours)
		points.GET("/:id/status", pointHandler.Status)
	}

	admin := auth.Group("")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", userHandler.List)
		admin.POST("/users", userHandler.Create)
		admin.PATCH("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}

func userStatus(db *gorm.DB) middleware.UserLookup {
	return func(ctx context.Context, id uint) (middleware.UserStatus, bool, error) {
		var u models.User
		err := db.WithContext(ctx).Select("role", "active").Take(&u, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.UserStatus{}, false, nil
		}
		if err != nil {
			return middleware.UserStatus{}, false, err
		}
		return middleware.UserStatus{Role: u.Role, Active: u.Active}, true, nil
	}
}
