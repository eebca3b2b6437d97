package routes

import (
	"backend_hatid/pkg/controllers/auth"
	"backend_hatid/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine) {
	authGroup := router.Group("/api/auth")

	authGroup.POST("/login/", auth.Login)
	authGroup.POST("/logout/", auth.Logout)
	authGroup.GET("/me/", middleware.AuthenticateToken(), auth.Me)
}
