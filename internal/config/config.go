package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

// DefaultJWTSecret is the development signing key used when JWT_SECRET is
// unset. Deployments must override it.
const DefaultJWTSecret = "dev-secret"

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"EH Foto Artwork"`
		Port     int    `envconfig:"PORT" default:"8080"`
		Timezone string `envconfig:"TIMEZONE" default:"Asia/Kuching"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"ehfoto"`
		Migrate  bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Auth struct {
		JWTSecret     string        `envconfig:"JWT_SECRET" default:"dev-secret"`
		SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"12h"`
		AdminUsername string        `envconfig:"ADMIN_USERNAME" default:"admin"`
		AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:"admin123"`
		BcryptCost    int           `envconfig:"BCRYPT_COST" default:"10"`
	}

	Invoice struct {
		Prefix string `envconfig:"INVOICE_PREFIX" default:"INV-EHFA"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Location resolves the studio's timezone. "Today" for overdue loans and
// payment dates is taken in this location.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.App.Timezone, err)
	}

	return loc, nil
}

// UsesDefaultJWTSecret reports whether tokens would be signed with the
// public development key.
func (c *Config) UsesDefaultJWTSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
