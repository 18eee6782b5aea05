package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/isil-ada/yemekhane-backend/utils"
)

var errNoToken = errors.New("authorization header missing")

// bearerClaims extracts and verifies the bearer token on the request.
// Both guards go through here so the parsing logic exists once.
func bearerClaims(c *gin.Context) (*utils.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errNoToken
	}
	return utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
}

func setIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set("userID", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
}

// RequireAuth rejects requests without a valid token: 401 when the header
// is missing, 403 when the token does not verify.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := bearerClaims(c)
		if err != nil {
			if errors.Is(err, errNoToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization required."})
			} else {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token."})
			}
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and
// proceeds unauthenticated otherwise. Used on the public menu endpoints,
// which personalize their response for logged-in users.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := bearerClaims(c); err == nil {
			setIdentity(c, claims)
		}
		c.Next()
	}
}
