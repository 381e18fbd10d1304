package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/escolhe-pra-mim/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, error)
}

// RequireAuth rejects requests without a valid bearer token: 401 "Access
// denied" when the token is missing, 403 "Invalid token" when it fails
// validation. The user ID is stored in the request context.
func RequireAuth(validator tokenValidator, respond ErrorResponder) Middleware {
	respond = orPlain(respond)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				respond(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Access denied")
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				respond(w, r, http.StatusForbidden, "FORBIDDEN", "Invalid token")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth attaches the user ID when a valid bearer token is present.
// Missing or invalid tokens leave the request anonymous.
func OptionalAuth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithUserID(r.Context(), userID)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
