package middleware

import (
	"net/http"
	"strings"
)

// NewCORS allows the configured site and dashboard origins. Content-Disposition
// is exposed so the dashboard can read the export download filename.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					header := w.Header()
					header.Add("Vary", "Origin")
					header.Set("Access-Control-Allow-Origin", origin)
					header.Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
					header.Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
					header.Set("Access-Control-Expose-Headers", "Content-Disposition")
					header.Set("Access-Control-Max-Age", "86400")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
