package middleware

import (
	"net/http"
	"strings"

	"daily-diet-be/internal/jwt"
	"daily-diet-be/internal/models"
	"daily-diet-be/internal/repository"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key under which the authenticated identity
// is stored for downstream handlers.
const IdentityKey = "identity"

// AuthMiddleware verifies the bearer token from the Authorization header,
// loads the owning user and attaches an Identity to the request context.
// Every failure aborts the chain: downstream handlers never run with a
// partially-populated identity.
func AuthMiddleware(jwtService *jwt.JWTService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Token missing.",
			})
			return
		}

		// Header format is "<scheme> <token>"; the scheme is ignored and
		// only the second whitespace-separated field is used.
		fields := strings.Fields(auth)
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		subject, err := jwtService.ValidateToken(fields[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		user, err := userRepo.FindByID(subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User does not exists",
			})
			return
		}

		c.Set(IdentityKey, &models.Identity{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		})

		c.Next()
	}
}
