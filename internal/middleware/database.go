// internal/middleware/database.go
package middleware

import (
	"net/http"

	"flashdeck/internal/webutil"
)

// RequireDatabase gates database-backed routes. When the process was started
// without database credentials every guarded route answers 503, so the
// absence check lives in exactly one place.
func RequireDatabase(available bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !available {
				webutil.RespondWithError(w, http.StatusServiceUnavailable, "Database not configured")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
