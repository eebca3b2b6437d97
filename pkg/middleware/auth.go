package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend_hatid/pkg/models"
	"backend_hatid/pkg/store"
	"backend_hatid/pkg/utils"
)

// AuthenticateToken resolves the JWT from cookie or Authorization header and
// loads the matching staff account into the context.
func AuthenticateToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get token from cookie or Authorization header
		token := ""

		// Check cookie first
		if cookieToken, err := c.Cookie("token"); err == nil && cookieToken != "" {
			token = cookieToken
		}

		// If not in cookie, check Authorization header
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					token = parts[1]
				}
			}
		}

		// No token provided
		if token == "" {
			utils.AbortWithError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		// Verify token
		claims, err := utils.VerifyToken(token)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				utils.AbortWithError(c, http.StatusUnauthorized, "Token expired.")
			} else {
				utils.AbortWithError(c, http.StatusUnauthorized, "Invalid token.")
			}
			return
		}

		user, ok := store.Data.Users.Get(claims.ID)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "Invalid token. User not found.")
			return
		}

		if user.Status != models.UserStatusActive {
			utils.AbortWithError(c, http.StatusForbidden, "Account is inactive.")
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AuthorizeRoles checks whether the authenticated user holds one of the
// required roles.
func AuthorizeRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userInterface, exists := c.Get("user")
		if !exists {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authentication required.")
			return
		}

		user, ok := userInterface.(models.User)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "Authentication required.")
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		utils.AbortWithError(c, http.StatusForbidden, "Access denied. Insufficient permissions.")
	}
}

// RestrictToSuperAdmin - convenience middleware for SUPERADMIN only
func RestrictToSuperAdmin() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		AuthenticateToken()(c)
		if c.IsAborted() {
			return
		}
		AuthorizeRoles(models.RoleSuperAdmin)(c)
	})
}

// RestrictToSuperAdminOrAdmin - allow SUPERADMIN or ADMIN
func RestrictToSuperAdminOrAdmin() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		AuthenticateToken()(c)
		if c.IsAborted() {
			return
		}
		AuthorizeRoles(models.RoleSuperAdmin, models.RoleAdmin)(c)
	})
}

// RestrictToAnyStaff - allow any signed-in dashboard account
func RestrictToAnyStaff() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		AuthenticateToken()(c)
		if c.IsAborted() {
			return
		}
		AuthorizeRoles(models.RoleSuperAdmin, models.RoleAdmin, models.RoleStaff)(c)
	})
}

// CurrentUser returns the authenticated account from the context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userInterface.(models.User)
	return user, ok
}
