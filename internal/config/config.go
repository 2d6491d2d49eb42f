package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Env         string `env:"APP_ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://localhost:8080,http://localhost:8081,https://app.b2binfluencer.com"`

	// Database
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"fluencr"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// Identity provider
	SupabaseURL       string        `env:"SUPABASE_URL"`
	SupabaseAnonKey   string        `env:"SUPABASE_ANON_KEY"`
	SupabaseJWTSecret string        `env:"SUPABASE_JWT_SECRET"`
	AuthTimeout       time.Duration `env:"AUTH_TIMEOUT" envDefault:"10s"`
	DevBypassToken    string        `env:"DEV_BYPASS_TOKEN"`

	// Access gate allow-list
	PublicPaths    []string `env:"PUBLIC_PATHS" envSeparator:"," envDefault:"/,/docs,/api/v1/health,/api/v1/test-db,/api/v1/auth/status,/api/v1/influencers"`
	PublicPrefixes []string `env:"PUBLIC_PREFIXES" envSeparator:"," envDefault:"/api/v1/auth/"`

	// AI providers
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	OpenAIAPIURL   string        `env:"OPENAI_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	OpenAIModel    string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	DeepSeekAPIKey string        `env:"DEEPSEEK_API_KEY"`
	DeepSeekAPIURL string        `env:"DEEPSEEK_API_URL" envDefault:"https://api.deepseek.com/v1/chat/completions"`
	DeepSeekModel  string        `env:"DEEPSEEK_MODEL" envDefault:"deepseek-chat"`
	AITimeout      time.Duration `env:"AI_TIMEOUT" envDefault:"60s"`

	// Campaign tracking links
	UTMBaseURL string `env:"UTM_BASE_URL" envDefault:"https://example.com"`

	// Redis (optional)
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	AnalyticsCacheTTL time.Duration `env:"ANALYTICS_CACHE_TTL" envDefault:"5m"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`

	// Interaction attachments (optional)
	AttachmentsBucket    string `env:"ATTACHMENTS_BUCKET"`
	AWSRegion            string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID       string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey   string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Endpoint           string `env:"S3_ENDPOINT"`
	AttachmentsPublicURL string `env:"ATTACHMENTS_PUBLIC_URL"`
	AttachmentMaxBytes   int    `env:"ATTACHMENT_MAX_BYTES" envDefault:"10485760"`

	SentryDSN        string `env:"SENTRY_DSN"`
	LogRetentionDays int    `env:"LOG_RETENTION_DAYS" envDefault:"30"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.DBPassword == "" {
		return errors.New("DB_PASSWORD environment variable is required")
	}
	if c.IsProduction() && c.SupabaseURL == "" && c.SupabaseJWTSecret == "" {
		return errors.New("SUPABASE_URL or SUPABASE_JWT_SECRET is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}
