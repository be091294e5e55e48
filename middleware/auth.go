package middleware

import (
	"net/http"
	"strings"

	"pharmacy-shop/models"
	"pharmacy-shop/stores"
	"pharmacy-shop/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware resolves the bearer token to a session. Requests with a
// missing, malformed, expired, or signed-out token are rejected with the
// sign-in redirect.
func AuthMiddleware(sessions *stores.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortToSignIn(c, "Authorization header required")
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			abortToSignIn(c, "Invalid authorization header format")
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			abortToSignIn(c, "Invalid or expired token")
			return
		}

		if !sessions.Active(c.Request.Context(), tokenParts[1]) {
			abortToSignIn(c, "Session has been signed out")
			return
		}

		role, ok := models.ParseRole(claims.Role)
		if !ok {
			abortToSignIn(c, "Unknown role in token")
			return
		}

		session := models.AuthenticatedSession(&models.User{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  role,
		}, tokenParts[1])

		c.Set(sessionKey, session)
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware gates a route group on an exact role. Runs after
// AuthMiddleware; a wrong-role user is sent home, not to sign-in.
func RoleMiddleware(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := RequireRole(SessionFrom(c), role)
		if !decision.Allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"success":  false,
				"message":  "Access denied. " + string(role) + " role required",
				"redirect": decision.RedirectTo,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by AuthMiddleware, or the
// anonymous session when none is present.
func SessionFrom(c *gin.Context) models.Session {
	if v, exists := c.Get(sessionKey); exists {
		if s, ok := v.(models.Session); ok {
			return s
		}
	}
	return models.Anonymous()
}

func abortToSignIn(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success":  false,
		"message":  message,
		"redirect": RedirectSignIn,
	})
	c.Abort()
}
