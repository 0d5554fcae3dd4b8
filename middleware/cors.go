package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware(clientOrigin string) gin.HandlerFunc {
	allowedOrigins := []string{
		"http://127.0.0.1:3000",
		"http://localhost:3000",
	}
	if clientOrigin != "" {
		allowedOrigins = append(allowedOrigins, clientOrigin)
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	})
}
