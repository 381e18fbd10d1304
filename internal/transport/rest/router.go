package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/heartmarshall/escolhe-pra-mim/internal/transport/middleware"
)

// AuthLimit bounds registration and login attempts per client.
type AuthLimit struct {
	Requests int
	Window   time.Duration
}

// Handlers groups the REST handlers and middleware the router mounts.
type Handlers struct {
	Accounts *AccountsHandler
	Lists    *ListsHandler
	Catalog  *CatalogHandler
	Health   *HealthHandler
	Metrics  http.Handler

	// Global wraps every route (request id, logging, recovery, CORS...).
	Global []middleware.Middleware
	// RequireAuth and OptionalAuth are built with the accounts responder.
	RequireAuth  middleware.Middleware
	OptionalAuth middleware.Middleware
	// CatalogMiddleware wraps the /api/v1 catalog routes (rate limit,
	// envelope-shaped recovery).
	CatalogMiddleware []middleware.Middleware
	AuthLimit         AuthLimit
}

// NewRouter builds the HTTP routing tree.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(h.Global...))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Escolher Pra Mim API is running!"})
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/contents", h.Catalog.Contents)

		r.Group(func(r chi.Router) {
			r.Use(authRateLimit(h.AuthLimit))
			r.Post("/users", h.Accounts.Register)
			r.Post("/login", h.Accounts.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)
			r.Get("/me", h.Accounts.Me)

			r.Route("/me/lists", func(r chi.Router) {
				r.Delete("/", h.Lists.ClearAll)
				r.Post("/watchlist/{contentID}/watched", h.Lists.MarkWatched)
				r.Get("/{list}", h.Lists.List)
				r.Post("/{list}", h.Lists.Add)
				r.Delete("/{list}/{contentID}", h.Lists.Remove)
			})

			r.Route("/me/history", func(r chi.Router) {
				r.Get("/", h.Lists.History)
				r.Post("/", h.Lists.AddHistory)
				r.Post("/{historyID}/toggle-watched", h.Lists.ToggleHistoryWatched)
				r.Delete("/{historyID}", h.Lists.DeleteHistory)
			})

			r.Get("/me/settings", h.Lists.Settings)
			r.Patch("/me/settings", h.Lists.UpdateSettings)
		})

		r.Route("/v1", func(r chi.Router) {
			r.Use(middleware.Chain(h.CatalogMiddleware...), h.OptionalAuth)
			r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
				writeEnvelopeError(w, http.StatusMethodNotAllowed, CodeMethod, "Method not allowed", nil)
			})
			r.Get("/discover", h.Catalog.Discover)
			r.Get("/genres", h.Catalog.Genres)
		})
	})

	return r
}

func authRateLimit(limit AuthLimit) func(http.Handler) http.Handler {
	if limit.Requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(limit.Requests, limit.Window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return middleware.ClientKey(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusTooManyRequests, "Too many login/registration attempts. Please try again later.")
		}),
	)
}
