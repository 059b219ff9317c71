package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers.
const (
	StoreMongo  = "mongo"
	StoreMySQL  = "mysql"
	StoreSQLite = "sqlite"
)

// minSecretLen is the HS256 key size in bytes.
const minSecretLen = 32

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
	HTTP  HTTPConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET, required"`
	JWTTTL     time.Duration `env:"JWT_TTL,    default=24h"`
	JWTIssuer  string        `env:"JWT_ISSUER, default=job-board"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`
}

type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=mongo"`
	// DSN is used by the mysql and sqlite drivers.
	DSN string `env:"SQL_DSN"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=job_board"`
}

type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLED,   default=true"`
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	SkillTTL time.Duration `env:"SKILL_CACHE_TTL, default=1h"`
}

type HTTPConfig struct {
	AuthRateLimit    float64       `env:"AUTH_RATE_LIMIT,    default=5"`
	AuthRateBurst    int           `env:"AUTH_RATE_BURST,    default=10"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT,   default=15s"`
}

// IsDevelopment reports whether the process runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig and
// panics when it is incomplete or invalid.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < minSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLen))
	}
	if c.Auth.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		errs = append(errs, errors.New("BCRYPT_COST must be between 4 and 31"))
	}

	switch c.Store.Driver {
	case StoreMongo:
	case StoreMySQL:
		if c.Store.DSN == "" {
			errs = append(errs, errors.New("SQL_DSN is required for STORE_DRIVER=mysql"))
		}
	case StoreSQLite:
		if c.Store.DSN == "" {
			c.Store.DSN = "jobboard.db"
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q is not one of mongo, mysql, sqlite", c.Store.Driver))
	}

	return errors.Join(errs...)
}
