package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/raritone/storefront/pkg/auth"
	"github.com/raritone/storefront/pkg/logger"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// AuthMiddleware validates the bearer JWT and puts its claims on the context
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Logger.Warn().Msg("Missing authorization header")
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Authorization header required",
			})
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Logger.Warn().Msg("Invalid authorization header format")
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Invalid authorization header format",
			})
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Invalid token")
			respondJSON(w, http.StatusUnauthorized, Response{
				Success: false,
				Error:   "Invalid token",
			})
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
