package slots

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

const (
	// DefaultTTL время жизни списка слотов в кэше
	DefaultTTL = 5 * time.Minute

	// keyPrefix + turf_id:sport_id:day
	keyPrefix = "turfslots:cache:slots:"
)

// Config настройки кэша
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache кэш списков слотов на день (turf, sport, day) поверх Redis
// При ошибке Redis кэш выключается, и сервис продолжает работать напрямую с БД
type Cache struct {
	client RedisClient
	ttl    time.Duration
	logger Logger

	mu       sync.RWMutex
	disabled bool
}

// New подключается к Redis; если он недоступен, возвращает выключенный кэш
func New(cfg Config, logger Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis cache unavailable at %s, running without caching: %v", cfg.Addr, err)
		_ = client.Close()
		return &Cache{ttl: ttlOrDefault(cfg.TTL), logger: logger, disabled: true}
	}

	logger.Info("Redis cache initialized (addr=%s, ttl=%s)", cfg.Addr, ttlOrDefault(cfg.TTL))
	return NewWithClient(client, cfg.TTL, logger)
}

// NewWithClient создает кэш поверх готового клиента
func NewWithClient(client RedisClient, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttlOrDefault(ttl),
		logger: logger,
	}
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// IsAvailable возвращает true, если кэш работает
func (c *Cache) IsAvailable() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.disabled && c.client != nil
}

// Get возвращает список слотов из кэша
// found == false означает промах (или выключенный кэш), это не ошибка
func (c *Cache) Get(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday) ([]*domain.Slot, bool) {
	if !c.IsAvailable() {
		return nil, false
	}

	key := Key(turfID, sportID, day)
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.handleError(err, "get")
		return nil, false
	}

	var slots []*domain.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		c.logger.Warn("slots cache: failed to decode key=%s: %v", key, err)
		return nil, false
	}

	return slots, true
}

// Set сохраняет список слотов
func (c *Cache) Set(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday, slots []*domain.Slot) error {
	if !c.IsAvailable() {
		return ErrCacheUnavailable
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := c.client.Set(ctx, Key(turfID, sportID, day), data, c.ttl).Err(); err != nil {
		c.handleError(err, "set")
		return fmt.Errorf("%w: set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate удаляет список слотов дня после изменений
func (c *Cache) Invalidate(ctx context.Context, turfID, sportID uuid.UUID, day domain.Weekday) error {
	if !c.IsAvailable() {
		return nil
	}

	if err := c.client.Del(ctx, Key(turfID, sportID, day)).Err(); err != nil {
		c.handleError(err, "delete")
		return fmt.Errorf("%w: delete: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Key возвращает ключ Redis для списка слотов
func Key(turfID, sportID uuid.UUID, day domain.Weekday) string {
	return fmt.Sprintf("%s%s:%s:%s", keyPrefix, turfID, sportID, day)
}

func (c *Cache) handleError(err error, operation string) {
	c.logger.Error("slots cache: %s failed, disabling cache: %v", operation, err)

	c.mu.Lock()
	c.disabled = true
	c.mu.Unlock()
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
