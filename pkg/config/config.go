package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is shared by every environment variable read by this app.
const EnvPrefix = "GROCYMART"

type Config struct {
	App     AppConfig
	DB      DBConfig
	Remote  RemoteConfig
	JWT     JWTConfig
	Insight InsightConfig
}

// Load reads .env (if present) and parses the whole configuration from the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Port     string `envconfig:"GROCYMART_APP_PORT" default:"3000"`
	LogLevel string `envconfig:"GROCYMART_LOG_LEVEL" default:"info"`
}

type DBConfig struct {
	// Driver selects the local store backend: sqlite (default, file-based,
	// works with no external services) or postgres.
	Driver string `envconfig:"GROCYMART_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"GROCYMART_DB_DSN" default:"grocymart.db"`

	MaxOpenConns    int           `envconfig:"GROCYMART_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GROCYMART_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GROCYMART_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RemoteConfig struct {
	// BaseURL of the remote persistence service. An empty value keeps the app
	// fully on the local store.
	BaseURL string `envconfig:"GROCYMART_REMOTE_BASE_URL" default:"http://localhost:5000/api"`
	// ProbeTimeout bounds the liveness HEAD check only; data calls rely on the
	// transport's defaults.
	ProbeTimeout time.Duration `envconfig:"GROCYMART_REMOTE_PROBE_TIMEOUT" default:"1s"`
}

type JWTConfig struct {
	Secret          string `envconfig:"GROCYMART_JWT_SECRET" default:"change-me-in-production"`
	Issuer          string `envconfig:"GROCYMART_JWT_ISSUER" default:"go-retail-crm"`
	ExpirationHours int    `envconfig:"GROCYMART_JWT_EXPIRATION_HOURS" default:"24"`
}

func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationHours) * time.Hour
}

type InsightConfig struct {
	BaseURL string        `envconfig:"GROCYMART_INSIGHT_BASE_URL" default:""`
	APIKey  string        `envconfig:"GROCYMART_INSIGHT_API_KEY" default:""`
	Model   string        `envconfig:"GROCYMART_INSIGHT_MODEL" default:"gemini-3-flash-preview"`
	Timeout time.Duration `envconfig:"GROCYMART_INSIGHT_TIMEOUT" default:"30s"`
}
