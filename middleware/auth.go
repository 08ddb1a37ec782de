package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/realty-flow/api-go/models"
	"github.com/realty-flow/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		token := bearerToken[1]
		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})

		if err != nil || !parsedToken.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		userClaims := &utils.UserClaims{Email: email}
		if exp, ok := claims["exp"].(float64); ok {
			userClaims.ExpiresAt = int64(exp)
		}

		c.Set(string(utils.UserContextKey), userClaims)

		c.Next()
	}
}

// RequireAgent must run after AuthMiddleware. The role is read from the user
// store on every call, so a role revoked mid-session takes effect on the
// next request.
func RequireAgent(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, models.RoleAgent)
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return requireRole(db, models.RoleAdmin)
}

func requireRole(db *gorm.DB, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := utils.GetUser(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ?", claims.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			c.Abort()
			return
		}

		if user.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			c.Abort()
			return
		}

		c.Next()
	}
}
