package utils

import (
	"github.com/gin-gonic/gin"
)

// UserClaims is the decoded identity claim for the current request only.
// Role is intentionally absent: guards re-read it from the store per call.
type UserClaims struct {
	Email     string `json:"email"`
	ExpiresAt int64  `json:"exp"`
}

type contextKey string

const UserContextKey contextKey = "user"

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}
