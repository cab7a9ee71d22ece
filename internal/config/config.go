package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string        `env:"PORT" envDefault:"3000"`
	DatabaseURL string        `env:"DATABASE_URL" envDefault:"sqlite:///tmp/test.db"`
	ResetDB     bool          `env:"RESET_DB" envDefault:"false"`
	CORSOrigins []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	SwaggerHost string        `env:"SWAGGER_HOST"`
	JWT         JWT           `envPrefix:"JWT_"`
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"12"`
	Redis       Redis         `envPrefix:"REDIS_"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"1m"`
	Admin       Admin         `envPrefix:"ADMIN_"`
	Log         Log           `envPrefix:"LOG_"`
}

// JWT configures access token issuance.
type JWT struct {
	Secret        string        `env:"SECRET,required,notEmpty"`
	AccessExpires time.Duration `env:"ACCESS_TOKEN_EXPIRES" envDefault:"15m"`
}

// Redis configures the optional cache. An empty Addr disables it.
type Redis struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// Admin holds basic auth credentials for the /admin browser.
type Admin struct {
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// Enabled reports whether the admin browser should be mounted.
func (a Admin) Enabled() bool {
	return a.User != "" && a.Password != ""
}

// Log configures the process logger.
type Log struct {
	Level string `env:"LEVEL" envDefault:"info"`
	File  string `env:"FILE"`
}

// Load reads an optional .env file and builds Config from the environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}
	return &cfg, nil
}
