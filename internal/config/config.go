package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Cache         CacheConfig         `toml:"cache"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	LegacyBackend LegacyBackendConfig `toml:"legacy_backend"`
	Planner       PlannerConfig       `toml:"planner"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CacheConfig настройки Redis кэша списков слотов
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// RateLimitConfig ограничение частоты запросов на владельца/IP
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
	IdleTimeout       int  `toml:"idle_timeout"` // секунды, после которых неактивный bucket удаляется
}

// LegacyBackendConfig зеркалирование сохраненных расписаний в старый backend
type LegacyBackendConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// PlannerConfig значения по умолчанию для планировщика слотов
type PlannerConfig struct {
	DefaultBufferMinutes       int     `toml:"default_buffer_minutes"`
	DefaultSlotDurationMinutes int     `toml:"default_slot_duration_minutes"`
	DefaultPrice               float64 `toml:"default_price"`
	MaxRangesPerDay            int     `toml:"max_ranges_per_day"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "turf_service",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-turf-service",
		},
		Cache: CacheConfig{
			Addr:       "localhost:6379",
			TTLSeconds: 300,
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 200,
			Burst:             50,
			IdleTimeout:       600,
		},
		LegacyBackend: LegacyBackendConfig{
			Timeout: 5,
		},
		Planner: PlannerConfig{
			DefaultBufferMinutes:       10,
			DefaultSlotDurationMinutes: 60,
			DefaultPrice:               500,
			MaxRangesPerDay:            8,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
// Пароль БД можно переопределить переменной окружения DB_PASSWORD
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		problems = append(problems, "database.host and database.dbname are required")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		problems = append(problems, "cache.addr is required when cache is enabled")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0) {
		problems = append(problems, "rate_limit.requests_per_minute and rate_limit.burst must be positive")
	}
	if c.LegacyBackend.Enabled && c.LegacyBackend.URL == "" {
		problems = append(problems, "legacy_backend.url is required when legacy_backend is enabled")
	}
	if c.Planner.DefaultSlotDurationMinutes <= 0 || c.Planner.DefaultBufferMinutes < 0 {
		problems = append(problems, "planner defaults must be non-negative (duration positive)")
	}
	if c.Planner.MaxRangesPerDay <= 0 {
		problems = append(problems, "planner.max_ranges_per_day must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
