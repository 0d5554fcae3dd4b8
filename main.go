package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zestyflow/config"
	"zestyflow/controllers"
	_ "zestyflow/docs"
	"zestyflow/middleware"
	"zestyflow/repositories"
	"zestyflow/routes"
	"zestyflow/services"
	"zestyflow/utils"
)

// @title ZestyFlow API
// @version 1.0
// @description Food ordering backend: auth, menu catalog and order lifecycle.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	logger := utils.NewLogger(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database connected")

	cache := config.ConnectRedis(cfg)
	if cache == nil {
		logger.Warn("redis unavailable, running without cache")
	} else {
		defer cache.Close()
		logger.Info("redis connected")
	}

	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	userRepo := repositories.NewUserRepository(db)
	menuRepo := repositories.NewMenuRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	authSvc := services.NewAuthService(userRepo, tokens)
	menuSvc := services.NewMenuService(menuRepo, cache)
	orderSvc := services.NewOrderService(orderRepo)

	dev := cfg.IsDevelopment()
	ctrls := routes.Controllers{
		Auth:  controllers.NewAuthController(authSvc, dev),
		Menu:  controllers.NewMenuController(menuSvc, dev),
		Order: controllers.NewOrderController(orderSvc, dev),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.ClientOrigin))
	routes.SetupRoutes(router, cfg, tokens, userRepo, ctrls)

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
