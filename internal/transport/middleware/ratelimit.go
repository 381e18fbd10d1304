package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter is an in-memory fixed-window limiter keyed by client IP.
// Counters live in a single process; it is not a distributed limiter.
type RateLimiter struct {
	window time.Duration
	max    int
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window

	stop     chan struct{}
	stopOnce sync.Once
}

type window struct {
	count int
	reset time.Time
}

// NewRateLimiter creates a limiter allowing max requests per window for
// each client, with a background sweep of expired windows.
// Call Stop() on shutdown.
func NewRateLimiter(windowSize time.Duration, max int, cleanupInterval time.Duration) *RateLimiter {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	rl := &RateLimiter{
		window:  windowSize,
		max:     max,
		now:     time.Now,
		windows: make(map[string]*window),
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware enforcing the limit. Every response carries
// X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset (unix
// seconds); rejected requests also get Retry-After and a 429 via respond.
func (rl *RateLimiter) Limit(respond ErrorResponder) Middleware {
	respond = orPlain(respond)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count, reset := rl.hit(ClientKey(r))

			remaining := max(rl.max-count, 0)
			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(rl.max))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

			if count > rl.max {
				retry := int(reset.Sub(rl.now()).Seconds() + 0.999)
				h.Set("Retry-After", strconv.Itoa(max(retry, 1)))
				respond(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limited")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hit counts one request for key and returns the count in the current
// window together with the window's reset time.
func (rl *RateLimiter) hit(key string) (int, time.Time) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[key]
	if !ok || now.After(win.reset) {
		win = &window{reset: now.Add(rl.window)}
		rl.windows[key] = win
	}
	win.count++
	return win.count, win.reset
}

// ClientKey identifies the caller: the first X-Forwarded-For hop, then
// X-Real-IP, then "local".
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return "local"
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, win := range rl.windows {
		if now.After(win.reset) {
			delete(rl.windows, key)
		}
	}
}

func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}
