package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/logger"
	"github.com/PRATYUSH213S/True-Drive-Rentals/internal/utils"
	"github.com/PRATYUSH213S/True-Drive-Rentals/models"
	"golang.org/x/time/rate"
)

// clientLimiter tracks one client's token bucket and its last activity so
// idle entries can be evicted.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter hands out a per-client token bucket keyed by remote IP.
// A zero rps disables limiting entirely.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
	now     func() time.Time
}

// idleEviction is how long a client entry survives without traffic before
// being dropped on the next sweep.
const idleEviction = 3 * time.Minute

func newRateLimiter(rps float64, burst int, now func() time.Time) *rateLimiter {
	if now == nil {
		now = time.Now
	}
	if burst <= 0 {
		burst = 1
	}

	return &rateLimiter{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     now,
	}
}

// allow reports whether the client identified by key may proceed, creating
// its bucket on first sight. Entries idle past idleEviction are swept here
// to bound the map.
func (rl *rateLimiter) allow(key string) bool {
	if rl.rps == 0 {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for k, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleEviction {
			delete(rl.clients, k)
		}
	}

	client, ok := rl.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = client
	}
	client.lastSeen = now

	return client.limiter.Allow()
}

// withRateLimit applies per-client token-bucket limiting to the API routes.
// Clients over their budget receive 429 with the standard failure envelope.
func (h *Handler) withRateLimit(rl *rateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !rl.allow(host) {
				logger.FromRequest(r).Warn().Str("client", host).Msg("rate limit exceeded")
				utils.WriteJSON(w, models.Fail("Too many requests"), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
