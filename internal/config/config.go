package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config application configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
	Notifier NotifierConfig `toml:"notifier"`
}

// ServerConfig HTTP server settings, timeouts in seconds
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	AllowedOrigin   string `toml:"allowed_origin"`
}

// DatabaseConfig PostgreSQL settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN returns the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig availability cache. Empty Addr disables the cache.
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig capacity, lead time and pricing rules
type BookingConfig struct {
	Timezone               string `toml:"timezone"`
	MaxNormalPerDay        int    `toml:"max_normal_per_day"`
	MaxUrgentPerDay        int    `toml:"max_urgent_per_day"`
	UrgentSurchargePercent int    `toml:"urgent_surcharge_percent"`
	UrgentMinHours         int    `toml:"urgent_min_hours"`
	NormalMinDays          int    `toml:"normal_min_days"`
	AdvancePaymentPercent  int    `toml:"advance_payment_percent"`
	NormalSearchDays       int    `toml:"normal_search_days"`
	UrgentSearchDays       int    `toml:"urgent_search_days"`
	DeliverySearchDays     int    `toml:"delivery_search_days"`
	UrgentReferenceHour    int    `toml:"urgent_reference_hour"`
	EnforceUrgentCap       bool   `toml:"enforce_urgent_cap"`
}

// Rules converts the section to domain rules
func (b BookingConfig) Rules() domain.BookingRules {
	return domain.BookingRules{
		MaxNormalPerDay:        b.MaxNormalPerDay,
		MaxUrgentPerDay:        b.MaxUrgentPerDay,
		UrgentSurchargePercent: b.UrgentSurchargePercent,
		UrgentMinHours:         b.UrgentMinHours,
		NormalMinDays:          b.NormalMinDays,
		AdvancePaymentPercent:  b.AdvancePaymentPercent,
		NormalSearchDays:       b.NormalSearchDays,
		UrgentSearchDays:       b.UrgentSearchDays,
		DeliverySearchDays:     b.DeliverySearchDays,
		UrgentReferenceHour:    b.UrgentReferenceHour,
		EnforceUrgentCap:       b.EnforceUrgentCap,
	}
}

// Location business timezone all calendar days are computed in
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

// NotifierConfig admin WebSocket settings
type NotifierConfig struct {
	WriteTimeout int `toml:"write_timeout"` // seconds
	BufferSize   int `toml:"buffer_size"`
}

// Default returns the configuration used for keys missing from the file
func Default() *Config {
	rules := domain.DefaultBookingRules()
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
			AllowedOrigin:   "*",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "sliques",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{TTLSeconds: 60},
		Logs:  LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "slq-order-service",
		},
		Booking: BookingConfig{
			Timezone:               "Asia/Kolkata",
			MaxNormalPerDay:        rules.MaxNormalPerDay,
			MaxUrgentPerDay:        rules.MaxUrgentPerDay,
			UrgentSurchargePercent: rules.UrgentSurchargePercent,
			UrgentMinHours:         rules.UrgentMinHours,
			NormalMinDays:          rules.NormalMinDays,
			AdvancePaymentPercent:  rules.AdvancePaymentPercent,
			NormalSearchDays:       rules.NormalSearchDays,
			UrgentSearchDays:       rules.UrgentSearchDays,
			DeliverySearchDays:     rules.DeliverySearchDays,
			UrgentReferenceHour:    rules.UrgentReferenceHour,
			EnforceUrgentCap:       rules.EnforceUrgentCap,
		},
		Notifier: NotifierConfig{WriteTimeout: 5, BufferSize: 16},
	}
}

// Load reads path on top of the defaults, then applies .env and environment overrides.
// A missing .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, v)
		}
		*dst = n
		return nil
	}

	setString("DB_HOST", &c.Database.Host)
	setString("DB_USER", &c.Database.User)
	setString("DB_PASSWORD", &c.Database.Password)
	setString("DB_NAME", &c.Database.DBName)
	setString("REDIS_ADDR", &c.Redis.Addr)
	setString("REDIS_PASSWORD", &c.Redis.Password)
	setString("LOG_LEVEL", &c.Logs.Level)
	setString("ALLOWED_ORIGIN", &c.Server.AllowedOrigin)

	if err := setInt("DB_PORT", &c.Database.Port); err != nil {
		return err
	}
	return setInt("HTTP_PORT", &c.Server.HTTPPort)
}

// Validate checks the configuration before the service starts
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Redis.Enabled() && c.Redis.TTLSeconds <= 0 {
		return fmt.Errorf("%w: redis.ttl_seconds must be positive", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if err := c.Booking.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
