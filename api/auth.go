package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type sessionClaims struct {
	Subject   string  `json:"sub"`
	Email     *string `json:"email"`
	ExpiresAt int64   `json:"exp"`
}

func parseSessionJWT(jwtStr string, decodeToken string) (*sessionClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := &sessionClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = &email
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
	}

	if out.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	if time.Now().UTC().Unix() > out.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return out, nil
}

// authMiddleware resolves the caller's user id from the bearer token.
// Identity verification ends here; services only check record ownership
// against the id this middleware stores.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := parseSessionJWT(tokenStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid session: %w", err), c, 401)
		return
	}

	c.Set("userAccountID", claims.Subject)
	c.Next()
}
