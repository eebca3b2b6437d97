package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend_hatid/pkg/utils"
)

// ErrorMiddleware provides centralized error handling
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			log.Printf("Error: %v", err.Err)

			var statusCode int
			if err.Meta != nil {
				if code, ok := err.Meta.(int); ok {
					statusCode = code
				}
			}
			if statusCode == 0 {
				statusCode = http.StatusInternalServerError
			}

			message := err.Error()
			if message == "" {
				message = "Internal server error"
			}

			utils.ErrorResponse(c, statusCode, message)
		}
	}
}

// RecoveryMiddleware handles panics and prevents server crashes
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered: %v", err)

				utils.AbortWithError(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Route not found")
	}
}
