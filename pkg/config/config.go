package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App    AppConfig
	API    APIConfig
	Search SearchConfig
	KV     KVConfig
	Redis  RedisConfig
	Mock   MockConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FLOWPMS_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"FLOWPMS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FLOWPMS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type APIConfig struct {
	BaseURL string        `envconfig:"FLOWPMS_API_BASE_URL" default:"http://localhost:8080/api"`
	Timeout time.Duration `envconfig:"FLOWPMS_API_TIMEOUT" default:"10s"`
}

type SearchConfig struct {
	Debounce     time.Duration `envconfig:"FLOWPMS_SEARCH_DEBOUNCE" default:"300ms"`
	HistoryLimit int           `envconfig:"FLOWPMS_SEARCH_HISTORY_LIMIT" default:"20"`
}

// KVConfig selects the backing store for locally persisted client state
// (auth token, search history, dismissed notices).
type KVConfig struct {
	Backend    string `envconfig:"FLOWPMS_KV_BACKEND" default:"memory"`
	SQLitePath string `envconfig:"FLOWPMS_KV_SQLITE_PATH" default:"flowpms.db"`
}

const (
	KVBackendMemory = "memory"
	KVBackendSQLite = "sqlite"
	KVBackendRedis  = "redis"
)

type RedisConfig struct {
	URL          string        `envconfig:"FLOWPMS_REDIS_URL"`
	Address      string        `envconfig:"FLOWPMS_REDIS_ADDR"`
	Password     string        `envconfig:"FLOWPMS_REDIS_PASSWORD"`
	DB           int           `envconfig:"FLOWPMS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FLOWPMS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FLOWPMS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FLOWPMS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FLOWPMS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FLOWPMS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// MockConfig drives the seeded mock API server used for local development.
type MockConfig struct {
	Port      string `envconfig:"FLOWPMS_MOCK_PORT" default:"8080"`
	JWTSecret string `envconfig:"FLOWPMS_MOCK_JWT_SECRET" default:"flowpms-dev-secret"`
	JWTIssuer string `envconfig:"FLOWPMS_MOCK_JWT_ISSUER" default:"flowpms-mock"`
}
