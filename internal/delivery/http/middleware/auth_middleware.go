package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"ayurcare/pkg/jwt"
	"ayurcare/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UsernameKey contextKey = "username"
	TokenIDKey  contextKey = "token_id"
)

// AuthMiddleware validates bearer tokens. enabled=false runs the API open,
// matching the original single-user deployment with no login screen.
type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client // nil skips the revocation check
	enabled     bool
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		enabled:     enabled,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		if m.redisClient != nil {
			tokenKey := fmt.Sprintf("access_token:%s:%s", claims.Username, claims.TokenID)
			exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
			if err != nil {
				response.InternalServerError(w, "Failed to validate token")
				return
			}
			if exists == 0 {
				response.Unauthorized(w, "Token has been revoked")
				return
			}
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsernameFromContext extracts the authenticated username.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetTokenIDFromContext extracts the access token id.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
