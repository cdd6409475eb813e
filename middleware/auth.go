package middleware

import (
	"strings"

	"artmarket-api/config"
	"artmarket-api/helper"
	"artmarket-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

// Claims carries the external identity provider's session claims. The
// identity ID is the provider-issued subject, never a local primary key.
type Claims struct {
	IdentityID string `json:"identity_id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies the bearer token and stashes the caller's
// identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			HTTPHelper.SendAppError(c, models.NewUnauthorizedError("Authorization header required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendAppError(c, models.NewUnauthorizedError("Bearer token required"))
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil || !token.Valid {
			HTTPHelper.SendAppError(c, models.NewUnauthorizedError("Invalid token"))
			c.Abort()
			return
		}

		identityID := claims.IdentityID
		if identityID == "" {
			identityID = claims.Subject
		}

		c.Set("identity_id", identityID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole gates a route on the token's role claim. Dynamic per-request
// role checks (comment deletion) additionally consult the identity
// provider in the service layer.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			HTTPHelper.SendAppError(c, models.NewUnauthorizedError("User role not found"))
			c.Abort()
			return
		}

		roleStr, _ := userRole.(string)
		for _, role := range roles {
			if roleStr == role {
				c.Next()
				return
			}
		}

		HTTPHelper.SendAppError(c, models.NewForbiddenError("Insufficient permissions"))
		c.Abort()
	}
}
