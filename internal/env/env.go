package env

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every variable, e.g. DASHBOARD_PORT.
const Prefix = "DASHBOARD"

// Config is the process configuration, read once at startup.
type Config struct {
	Port            int           `envconfig:"PORT" default:"4002" validate:"min=1,max=65535"`
	DataSource      string        `envconfig:"DATA_SOURCE" default:"vehicles_us.csv" validate:"required"`
	DataTable       string        `envconfig:"DATA_TABLE" default:"vehicles_us"`
	SourceTimeout   time.Duration `envconfig:"SOURCE_TIMEOUT" default:"30s" validate:"gt=0"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	Locale          string        `envconfig:"LOCALE" default:"en" validate:"required"`
	RateLimit       int           `envconfig:"RATE_LIMIT" default:"100" validate:"min=0"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"`
	RedisDB         int           `envconfig:"REDIS_DB" default:"0" validate:"min=0"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"10m" validate:"gt=0"`
	CacheWarm       bool          `envconfig:"CACHE_WARM" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
}

var validate = validator.New()

// Load reads an optional .env file, then the DASHBOARD_* variables, and
// validates the result. Variables already set in the environment win.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + strconv.Itoa(c.Port) }

// CacheEnabled reports whether chart responses are memoized in Redis.
func (c *Config) CacheEnabled() bool { return c.RedisAddr != "" }
