package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// Preferences selects where the UI language preference is persisted.
type Preferences struct {
	Backend string `mapstructure:"backend"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// DSN carries no pool parameters so it can be shared by pgxpool and the
// database/sql driver used for migrations. MaxConns is applied to the pool
// config separately.
func (config *DbServer) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Cache struct {
	HistoryMaxItems int64 `mapstructure:"history_max_items"`
}

type Scheduler struct {
	RefreshIntervalSec int `mapstructure:"refresh_interval_sec"`
}

func (s Scheduler) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalSec) * time.Second
}

type Pricing struct {
	Timezone string `mapstructure:"timezone"`
}

// Location decides where a pricing day starts and ends.
func (p Pricing) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid pricing timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

type AppConfig struct {
	HTTPServer  HTTPServer  `mapstructure:"http_server"`
	Logging     Logging     `mapstructure:"logging"`
	Preferences Preferences `mapstructure:"preferences"`
	DbServer    DbServer    `mapstructure:"db_server"`
	Redis       Redis       `mapstructure:"redis"`
	Cache       Cache       `mapstructure:"cache"`
	Scheduler   Scheduler   `mapstructure:"scheduler"`
	Pricing     Pricing     `mapstructure:"pricing"`
}

// Init reads .env (optional), then path, or ./config.yaml when path is empty
// (optional as well), then environment overrides.
func Init(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("preferences.backend", BackendMemory)
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.history_max_items", 1000)
	v.SetDefault("scheduler.refresh_interval_sec", 60)
	v.SetDefault("pricing.timezone", "UTC")

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("preferences.backend", "PREFERENCES_BACKEND")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// redis env vars
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("redis.db", "REDIS_DB")

	_ = v.BindEnv("cache.history_max_items", "HISTORY_CACHE_MAX_ITEMS")
	_ = v.BindEnv("scheduler.refresh_interval_sec", "REFRESH_INTERVAL_SEC")
	_ = v.BindEnv("pricing.timezone", "PRICING_TIMEZONE")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	switch cfg.Preferences.Backend {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", cfg.Preferences.Backend)
	}

	return &cfg, nil
}
