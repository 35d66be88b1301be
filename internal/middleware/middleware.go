package middleware

import (
	"net/http"

	"github.com/conradreeve/crm-service/internal/auth"
	"github.com/conradreeve/crm-service/internal/utils"
)

// TokenValidator is the slice of the token issuer the middleware needs.
type TokenValidator interface {
	IsActive(token string) bool
	UserID(token string) string
}

// RequireToken rejects any request without a live bearer token and puts the
// resolved user id and token on the request context. Anonymous routes are
// simply mounted outside this middleware.
func RequireToken(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				http.Error(w, "Missing bearer token", http.StatusUnauthorized)
				return
			}

			if !validator.IsActive(token) {
				http.Error(w, "Session has expired", http.StatusUnauthorized)
				return
			}

			ctx := utils.WithAuth(r.Context(), validator.UserID(token), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var allowed = map[string]struct{}{
	"http://localhost:5173": {},
	"http://localhost:3000": {},
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it's on our allow-list
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Authorization")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
