package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingDatabaseURL is returned by Load when DATABASE_URL is unset or blank.
var ErrMissingDatabaseURL = errors.New("missing DATABASE_URL (Postgres connection string)")

// Config is the process-wide configuration. It is built once at startup and
// never mutated afterwards.
type Config struct {
	DatabaseURL     string
	Port            string
	StaticDir       string
	GinMode         string
	LogLevel        string
	ShutdownTimeout time.Duration
	DB              DBConfig
}

// DBConfig holds connection pool settings.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var defaults = map[string]string{
	"PORT":                  "8080",
	"STATIC_DIR":            "static",
	"GIN_MODE":              "release",
	"LOG_LEVEL":             "info",
	"SHUTDOWN_TIMEOUT":      "10s",
	"DB_MAX_OPEN_CONNS":     "25",
	"DB_MAX_IDLE_CONNS":     "10",
	"DB_CONN_MAX_LIFETIME":  "1h",
	"DB_CONN_MAX_IDLE_TIME": "30m",
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	dsn := strings.TrimSpace(v.GetString("DATABASE_URL"))
	if dsn == "" {
		return nil, ErrMissingDatabaseURL
	}

	cfg := &Config{
		DatabaseURL: dsn,
		Port:        strings.TrimSpace(v.GetString("PORT")),
		StaticDir:   v.GetString("STATIC_DIR"),
		GinMode:     v.GetString("GIN_MODE"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}

	var err error
	if cfg.ShutdownTimeout, err = positiveDuration(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.DB.MaxOpenConns, err = positiveInt(v, "DB_MAX_OPEN_CONNS"); err != nil {
		return nil, err
	}
	if cfg.DB.MaxIdleConns, err = positiveInt(v, "DB_MAX_IDLE_CONNS"); err != nil {
		return nil, err
	}
	if cfg.DB.ConnMaxLifetime, err = positiveDuration(v, "DB_CONN_MAX_LIFETIME"); err != nil {
		return nil, err
	}
	if cfg.DB.ConnMaxIdleTime, err = positiveDuration(v, "DB_CONN_MAX_IDLE_TIME"); err != nil {
		return nil, err
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT cannot be empty")
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
	}
	if cfg.DB.MaxIdleConns > cfg.DB.MaxOpenConns {
		return nil, fmt.Errorf("DB_MAX_IDLE_CONNS cannot exceed DB_MAX_OPEN_CONNS")
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func positiveInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return n, nil
}

func positiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}
