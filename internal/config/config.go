// Package config loads application settings from an optional YAML file and
// the process environment.
package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Env        string           `yaml:"env"`
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	RateLimits RateLimitsConfig `yaml:"rate_limits"`
}

type ServerConfig struct {
	Port         string `yaml:"port"`
	AllowOrigins string `yaml:"allow_origins"`
}

// DatabaseConfig holds connection and pool settings for the ledger store.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"` // "postgres" or "mysql"
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	IsolationLevel  string        `yaml:"isolation_level"`
	LogLevel        string        `yaml:"log_level"`
	SlowThreshold   time.Duration `yaml:"slow_threshold"`
}

type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     string        `yaml:"port"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type JWTConfig struct {
	Secret     string        `yaml:"secret"`
	Issuer     string        `yaml:"issuer"`
	AccessTTL  time.Duration `yaml:"access_ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl"`
}

// RateLimit allows Max requests per Window for a single client key.
type RateLimit struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

type RateLimitsConfig struct {
	Login             RateLimit `yaml:"login"`
	Registration      RateLimit `yaml:"registration"`
	TransactionCreate RateLimit `yaml:"transaction_create"`
	TransactionList   RateLimit `yaml:"transaction_list"`
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Load builds the configuration. Values from the YAML file named by
// CONFIG_FILE (if any) are applied first, then environment variables win.
func Load() (*Config, error) {
	cfg := Default()

	if path := GetEnv("CONFIG_FILE", ""); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if _, err := ParseIsolationLevel(cfg.Database.IsolationLevel); err != nil {
		return nil, err
	}
	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "mysql" {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if IsProductionEnv(cfg.Env) && cfg.JWT.Secret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	return cfg, nil
}

const defaultJWTSecret = "chargeflow-dev-secret"

// Default returns the development defaults.
func Default() *Config {
	return &Config{
		Env: "development",
		Server: ServerConfig{
			Port:         "8006",
			AllowOrigins: "*",
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			Name:            "charge_flow",
			SSLMode:         "disable",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
			IsolationLevel:  "read_committed",
			LogLevel:        "warn",
			SlowThreshold:   time.Second,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			CacheTTL: 5 * time.Minute,
		},
		JWT: JWTConfig{
			Secret:     defaultJWTSecret,
			Issuer:     "chargeflow-api",
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 7 * 24 * time.Hour,
		},
		RateLimits: RateLimitsConfig{
			Login:             RateLimit{Max: 3000, Window: time.Hour},
			Registration:      RateLimit{Max: 1000, Window: time.Hour},
			TransactionCreate: RateLimit{Max: 50000, Window: time.Hour},
			TransactionList:   RateLimit{Max: 10000, Window: time.Hour},
		},
	}
}

func (c *Config) applyEnv() {
	c.Env = GetEnv("ENV", c.Env)
	c.Server.Port = GetEnv("PORT", c.Server.Port)
	c.Server.AllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", c.Server.AllowOrigins)

	db := &c.Database
	db.Driver = strings.ToLower(GetEnv("DB_DRIVER", db.Driver))
	db.Host = GetEnv("DB_HOST", db.Host)
	db.Port = GetIntEnv("DB_PORT", db.Port)
	db.User = GetEnv("DB_USER", db.User)
	db.Password = GetEnv("DB_PASSWORD", db.Password)
	db.Name = GetEnv("DB_NAME", db.Name)
	db.SSLMode = GetEnv("DB_SSLMODE", db.SSLMode)
	db.MaxIdleConns = GetIntEnv("DB_MAX_IDLE_CONNS", db.MaxIdleConns)
	db.MaxOpenConns = GetIntEnv("DB_MAX_OPEN_CONNS", db.MaxOpenConns)
	db.ConnMaxLifetime = GetDurationEnv("DB_CONN_MAX_LIFETIME", db.ConnMaxLifetime)
	db.ConnMaxIdleTime = GetDurationEnv("DB_CONN_MAX_IDLE_TIME", db.ConnMaxIdleTime)
	db.IsolationLevel = GetEnv("DB_ISOLATION_LEVEL", db.IsolationLevel)
	db.LogLevel = GetEnv("DB_LOG_LEVEL", db.LogLevel)
	db.SlowThreshold = GetDurationEnv("DB_SLOW_THRESHOLD", db.SlowThreshold)

	c.Redis.Host = GetEnv("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = GetEnv("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = GetEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = GetIntEnv("REDIS_DB", c.Redis.DB)
	c.Redis.CacheTTL = GetDurationEnv("REDIS_CACHE_TTL", c.Redis.CacheTTL)

	c.JWT.Secret = GetEnv("JWT_SECRET", c.JWT.Secret)
	c.JWT.Issuer = GetEnv("JWT_ISSUER", c.JWT.Issuer)
	c.JWT.AccessTTL = GetDurationEnv("JWT_ACCESS_TTL", c.JWT.AccessTTL)
	c.JWT.RefreshTTL = GetDurationEnv("JWT_REFRESH_TTL", c.JWT.RefreshTTL)

	c.RateLimits.Login.Max = GetIntEnv("THROTTLE_LOGIN", c.RateLimits.Login.Max)
	c.RateLimits.Registration.Max = GetIntEnv("THROTTLE_REGISTRATION", c.RateLimits.Registration.Max)
	c.RateLimits.TransactionCreate.Max = GetIntEnv("THROTTLE_TRANSACTION_CREATE", c.RateLimits.TransactionCreate.Max)
	c.RateLimits.TransactionList.Max = GetIntEnv("THROTTLE_TRANSACTION_LIST", c.RateLimits.TransactionList.Max)
}

// IsProductionEnv reports whether env names the production environment.
func IsProductionEnv(env string) bool {
	return env == "production"
}

// DSN returns the driver-specific data source name.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.Name)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// ParseIsolationLevel maps a configured isolation level name onto
// database/sql. An empty name keeps the store default.
func ParseIsolationLevel(name string) (sql.IsolationLevel, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "", "default":
		return sql.LevelDefault, nil
	case "read_committed":
		return sql.LevelReadCommitted, nil
	case "repeatable_read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("unsupported isolation level %q", name)
	}
}
