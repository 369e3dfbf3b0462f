package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Identity tags the request log with the caller's email and role when a
// valid access token was presented. Requests without one pass through
// unchanged; nothing here rejects a request.
// It must run after jwtauth.Verifier.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			next.ServeHTTP(w, r)
			return
		}

		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			next.ServeHTTP(w, r)
			return
		}

		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		httplog.SetAttrs(r.Context(),
			slog.String("user.email", email),
			slog.String("user.roles", role),
		)

		next.ServeHTTP(w, r)
	})
}
