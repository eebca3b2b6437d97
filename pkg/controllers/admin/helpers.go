package admin

import (
	"github.com/gin-gonic/gin"

	"backend_hatid/pkg/middleware"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/utils"
)

// mustUser pulls the authenticated account set by the auth middleware.
func mustUser(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
	}
	return user, ok
}

// requireConfirm gates destructive actions behind an explicit confirm=true
// query flag. Without it the state stays untouched.
func requireConfirm(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		utils.BadRequestResponse(c, "Confirmation required. Pass confirm=true to proceed.")
		return false
	}
	return true
}
