package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"starsystem-server/internal/auth"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func JWTMiddleware(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "jwt",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		logger.Debug("Processing JWT authentication")

		token, ok := bearerToken(r)
		if !ok {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		claims, err := auth.ValidateJWT(secret, token)
		if err != nil {
			logger.Debug("Token rejected", "error", err)
			response.Error(w, r, logger, errors.Unauthorized("invalid token"))
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		logger.Debug("JWT authentication successful", "subject", claims.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetClaimsFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(ClaimsContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
