package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-TurfService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// DefaultIdleTimeout через сколько неактивный bucket удаляется из памяти
const DefaultIdleTimeout = 10 * time.Minute

// Logger интерфейс логгера для middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter хранит token bucket на каждый IP и отдельно на каждого владельца.
// Запрос проходит, только если есть токен в обоих bucket-ах: подмена X-Owner-ID
// не дает обойти лимит по IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	logger   Logger
	now      func() time.Time
}

// NewRateLimiter создает лимитер: requestsPerMinute запросов в минуту с запасом burst
func NewRateLimiter(requestsPerMinute, burst int, logger Logger) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
		logger:   logger,
		now:      time.Now,
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = rl.now()
	return v.limiter.Allow()
}

// Cleanup удаляет bucket-ы, к которым не обращались дольше idle
func (rl *RateLimiter) Cleanup(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := rl.now().Add(-idle)
	removed := 0
	for key, v := range rl.visitors {
		if v.lastSeen.Before(threshold) {
			delete(rl.visitors, key)
			removed++
		}
	}
	return removed
}

// StartCleanup периодически чистит неактивные bucket-ы до закрытия stopCh
func (rl *RateLimiter) StartCleanup(idle time.Duration, stopCh <-chan struct{}) {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}

	go func() {
		ticker := time.NewTicker(idle / 2)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				rl.Cleanup(idle)
			}
		}
	}()
}

// Size количество отслеживаемых bucket-ов
func (rl *RateLimiter) Size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// Middleware отклоняет запросы сверх лимита с кодом 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, key := range clientKeys(r) {
			if !rl.allow(key) {
				if rl.logger != nil {
					rl.logger.Warn("Rate limit exceeded for %s (%s %s)", key, r.Method, r.URL.Path)
				}
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// clientKeys IP соединения и, если заголовок содержит валидный UUID, владелец.
// X-Forwarded-For не учитывается: его задает сам клиент.
func clientKeys(r *http.Request) []string {
	keys := []string{"ip:" + remoteIP(r)}

	if owner, err := uuid.Parse(strings.TrimSpace(r.Header.Get(OwnerIDHeader))); err == nil && owner != uuid.Nil {
		keys = append(keys, "owner:"+owner.String())
	}
	return keys
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
