package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend_hatid/pkg/middleware"
	"backend_hatid/pkg/models"
	"backend_hatid/pkg/store"
	"backend_hatid/pkg/utils"
)

// Login handles staff sign-in against the seeded accounts
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required")
		return
	}

	var user models.User
	found := false
	for _, u := range store.Data.Users.List() {
		if strings.EqualFold(u.Email, req.Email) {
			user = u
			found = true
			break
		}
	}
	if !found {
		utils.UnauthorizedResponse(c, "Invalid email or password")
		return
	}

	if user.Status != models.UserStatusActive {
		utils.ForbiddenResponse(c, "Account is inactive.")
		return
	}

	if utils.ComparePassword(user.Password, req.Password) != nil {
		utils.UnauthorizedResponse(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		utils.InternalServerErrorResponse(c, "Internal server error")
		return
	}

	c.SetCookie(
		"token",
		token,
		7*24*60*60,
		"/",
		"",
		false,
		true,
	)

	store.Data.AppendAudit(user, models.AuditActionLogin, "user", user.ID, "")

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout clears the auth cookie
func Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the authenticated account
func Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
