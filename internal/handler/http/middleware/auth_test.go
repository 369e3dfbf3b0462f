package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityRouter(ja *jwtauth.JWTAuth) http.Handler {
	r := chi.NewRouter()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{Schema: httplog.SchemaECS}))
	r.Use(jwtauth.Verifier(ja))
	r.Use(Identity)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r
}

func TestIdentity_NeverRejects(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)
	h := newIdentityRouter(ja)

	_, valid, err := ja.Encode(map[string]interface{}{
		"email": "hr@synczenith.com",
		"role":  "hr",
		"type":  "access",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, refresh, err := ja.Encode(map[string]interface{}{"type": "refresh"})
	require.NoError(t, err)

	for name, header := range map[string]string{
		"no token":      "",
		"valid token":   "Bearer " + valid,
		"other type":    "Bearer " + refresh,
		"garbage token": "Bearer abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}
