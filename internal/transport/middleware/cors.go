package middleware

import (
	"net/http"
	"strconv"

	"github.com/heartmarshall/dictation-builder/internal/config"
)

// CORS returns middleware for the routes read by the web player.
// A request from an allowed origin gets that origin echoed back; a request
// without an Origin header gets the first configured origin. Preflight
// OPTIONS requests are answered with 204 and never reach next.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if allow := allowedOrigin(r.Header.Get("Origin"), origins); allow != "" {
				h.Set("Access-Control-Allow-Origin", allow)
			}
			h.Add("Vary", "Origin")
			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)

			if r.Method == http.MethodOptions {
				if cfg.MaxAge > 0 {
					h.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func allowedOrigin(origin string, allowed []string) string {
	if len(allowed) == 0 {
		return ""
	}
	if origin == "" {
		return allowed[0]
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return origin
		}
	}
	return ""
}
