package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jstern/bookmarkd/internal/metrics"
)

// StaticTokenMiddleware authenticates API requests against a single
// process-configured shared secret. Every bookmark route sits behind it;
// nothing downstream runs for an unauthenticated request.
type StaticTokenMiddleware struct {
	token string
}

// NewStaticTokenMiddleware creates a middleware that accepts only the given token.
func NewStaticTokenMiddleware(token string) *StaticTokenMiddleware {
	return &StaticTokenMiddleware{token: token}
}

// Authenticate is an http.Handler middleware that extracts and checks a Bearer token.
// WHEN valid: the request proceeds unmodified.
// WHEN missing/malformed/mismatched: returns 401 with {"error": "Unauthorized request"}.
func (m *StaticTokenMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeUnauthorized(w)
			return
		}
		plaintext := strings.TrimPrefix(authHeader, "Bearer ")
		if plaintext == "" {
			writeUnauthorized(w)
			return
		}

		if subtle.ConstantTimeCompare([]byte(plaintext), []byte(m.token)) != 1 {
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeUnauthorized writes a 401 JSON response with {"error": "Unauthorized request"}.
func writeUnauthorized(w http.ResponseWriter) {
	metrics.UnauthorizedTotal.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized request"})
}
