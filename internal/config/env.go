package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL" env-required:"true"`
	DBMaxConns     int32         `env:"DB_MAX_CONNS" env-default:"10"`
	Port           string        `env:"PORT" env-default:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"60s"`

	JWTSecret      string `env:"JWT_SECRET" env-required:"true"`
	JWTIssuer      string `env:"JWT_ISSUER" env-default:"healthsense"`
	AccessTokenTTL int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"60"`

	AIAPIKey  string        `env:"GEMINI_API_KEY"`
	GenModel  string        `env:"GEN_MODEL" env-default:"gemini-2.5-flash-lite"`
	AITimeout time.Duration `env:"AI_TIMEOUT" env-default:"20s"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
}

// LoadConfig loads the environment variables (and an optional .env file) and returns config
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters (got %d)", len(c.JWTSecret))
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be > 0 (got %d)", c.AccessTokenTTL)
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be > 0 (got %s)", c.AITimeout)
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be > 0 (got %d)", c.DBMaxConns)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.LogFormat)
	}
	return nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTL) * time.Minute
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
