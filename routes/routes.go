package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"zestyflow/config"
	"zestyflow/controllers"
	"zestyflow/middleware"
	"zestyflow/utils"
)

type Controllers struct {
	Auth  *controllers.AuthController
	Menu  *controllers.MenuController
	Order *controllers.OrderController
}

func SetupRoutes(router *gin.Engine, cfg *config.Config, tokens *utils.TokenManager, users middleware.UserResolver, ctrls Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	authRequired := middleware.AuthMiddleware(tokens, users)

	api := router.Group("/api")
	{
		api.POST("/auth/signup", ctrls.Auth.Signup)
		api.POST("/auth/login", ctrls.Auth.Login)
		api.GET("/auth/me", authRequired, ctrls.Auth.Me)

		api.GET("/menu", ctrls.Menu.List)
		// TODO: guard menu creation behind an admin role once one exists.
		api.POST("/menu", ctrls.Menu.Create)

		api.POST("/orders", authRequired, ctrls.Order.Place)
		api.GET("/orders/me", authRequired, ctrls.Order.ListMine)
		api.PATCH("/orders/:id/cancel", authRequired, ctrls.Order.Cancel)
	}

	router.Static("/static", cfg.StaticDir)
}
