package middleware

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte(getJWTSecret())

// tokenTTL of zero means tokens never expire. That matches the reference
// deployment and is a known security trade-off, kept as an explicit policy
// knob (JWT_TTL, a Go duration string) rather than silently hardcoded.
var tokenTTL = getTokenTTL()

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "super-secret-key-change-me-in-production" // fallback
}

func getTokenTTL() time.Duration {
	val := os.Getenv("JWT_TTL")
	if val == "" {
		return 0
	}
	ttl, err := time.ParseDuration(val)
	if err != nil {
		return 0
	}
	return ttl
}

// GenerateToken issues an HS256 bearer token for the given identity.
func GenerateToken(identity string) (string, error) {
	claims := jwt.MapClaims{
		"sub": identity,
	}
	if tokenTTL > 0 {
		claims["exp"] = time.Now().Add(tokenTTL).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and checks the signature of a bearer token.
func ValidateToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
}

// RequireAuth ensures a valid bearer token is present before any business
// logic runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid or expired token"})
			return
		}

		// Store the identity in context for downstream handlers
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("identity", claims["sub"])
		} else {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Invalid token claims"})
			return
		}

		c.Next()
	}
}
