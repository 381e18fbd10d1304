package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/escolhe-pra-mim/internal/config"
)

// exposedHeaders are readable by browser clients: the draw page shows the
// remaining quota and support asks for the request id.
var exposedHeaders = strings.Join([]string{
	"X-Request-Id",
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
	"X-RateLimit-Reset",
	"Retry-After",
}, ", ")

// CORS answers preflight requests and sets the allow headers for origins
// in cfg.AllowedOrigins (comma-separated, "*" for any).
//
// A "*" entry is sent back literally unless credentials are allowed, in
// which case the request origin is echoed as browsers require.
func CORS(cfg config.CORSConfig) Middleware {
	allowed, anyOrigin := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" {
				_, listed := allowed[origin]
				switch {
				case anyOrigin && !cfg.AllowCredentials:
					h.Set("Access-Control-Allow-Origin", "*")
				case anyOrigin || listed:
					h.Set("Access-Control-Allow-Origin", origin)
					if cfg.AllowCredentials {
						h.Set("Access-Control-Allow-Credentials", "true")
					}
				}
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(raw string) (map[string]struct{}, bool) {
	set := make(map[string]struct{})
	anyOrigin := false
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			anyOrigin = true
		default:
			set[o] = struct{}{}
		}
	}
	return set, anyOrigin
}
