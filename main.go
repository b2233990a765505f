package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ablecare/config"
	"ablecare/database"
	adminRepoPkg "ablecare/database/repository/admin"
	resourceRepoPkg "ablecare/database/repository/resource"
	siteRepoPkg "ablecare/database/repository/site"
	"ablecare/handlers"
	"ablecare/middleware"
	"ablecare/models"
	"ablecare/routes"
	adminSvc "ablecare/services/admin"
	"ablecare/services/resource"
	"ablecare/services/site"
	"ablecare/services/storage"
	"ablecare/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	assetStore, err := storage.NewCloudinaryStore(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize asset store: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resourceRepo := resourceRepoPkg.NewMongoResourceRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	bannerRepo := siteRepoPkg.NewMongoBannerRepo()
	pageRepo := siteRepoPkg.NewMongoPageRepo()

	seedDefaultAdmin(adminRepo)

	// services.
	resourceService := &resource.DefaultResourceService{
		Repo:   resourceRepo,
		Assets: assetStore,
		Cache:  resource.NewListCache(utils.GetCacheClient(), time.Minute),
	}
	adminService := &adminSvc.DefaultAdminService{Repo: adminRepo}
	siteService := &site.DefaultSiteService{
		Banners: bannerRepo,
		Pages:   pageRepo,
		Assets:  assetStore,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:                handlers.NewAuthHandler(adminService),
		Services:            handlers.NewResourceHandler(resourceService, models.KindService),
		SupportModels:       handlers.NewResourceHandler(resourceService, models.KindSupportModel),
		PublicServices:      handlers.NewPublicResourceHandler(resourceService, models.KindService),
		PublicSupportModels: handlers.NewPublicResourceHandler(resourceService, models.KindSupportModel),
		Banners:             handlers.NewBannerHandler(siteService),
		Site:                handlers.NewSiteHandler(siteService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// seedDefaultAdmin creates the bootstrap admin account on first start when
// credentials are configured and the collection is empty.
func seedDefaultAdmin(repo adminRepoPkg.AdminRepository) {
	email := config.AppConfig.AdminEmail
	password := config.AppConfig.AdminPassword
	if email == "" || password == "" {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Sugar().Fatalf("main: failed to hash bootstrap admin password: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.EnsureDefault(ctx, "Administrator", email, string(hash)); err != nil {
		utils.GetLogger().Sugar().Fatalf("main: failed to seed admin account: %v", err)
	}
}
