package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"HOST"                  env-default:"0.0.0.0"`
	Port               string        `yaml:"port"                  env:"PORT"                  env-default:"5001"`
	RequestTimeout     time.Duration `yaml:"request_timeout"       env:"REQUEST_TIMEOUT"       env-default:"30s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SHUTDOWN_TIMEOUT"      env-default:"30s"`
	MaxRequestBodySize int64         `yaml:"max_request_body_size" env:"MAX_REQUEST_BODY_SIZE" env-default:"10485760"`
}

// MongoConfig holds document store settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGODB_URI"           env-required:"true"`
	Database       string        `yaml:"database"        env:"MONGODB_DATABASE"      env-default:"object_recognizer"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s"`
}

// DictionaryConfig holds dictionary API settings. The API key has no
// default: a missing key degrades lookups to an inline message instead
// of failing startup.
type DictionaryConfig struct {
	BaseURL string        `yaml:"base_url" env:"MW_URL"     env-default:"https://dictionaryapi.com/api/v3/references/collegiate/json"`
	APIKey  string        `yaml:"api_key"  env:"MW_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"MW_TIMEOUT" env-default:"5s"`
}

// ServerAddress returns the host:port the server listens on.
func (c *Config) ServerAddress() string {
	host := strings.TrimSpace(c.Server.Host)
	port := strings.TrimSpace(c.Server.Port)
	return net.JoinHostPort(host, port)
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	p, err := strconv.Atoi(strings.TrimSpace(c.Server.Port))
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Server.Port)
	}
	if c.Server.MaxRequestBodySize <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_SIZE must be > 0 (got %d)", c.Server.MaxRequestBodySize)
	}
	if c.Server.RequestTimeout <= 0 || c.Dictionary.Timeout <= 0 || c.Mongo.ConnectTimeout <= 0 {
		return fmt.Errorf("timeouts must be > 0 (got request=%s, dictionary=%s, mongo=%s)",
			c.Server.RequestTimeout, c.Dictionary.Timeout, c.Mongo.ConnectTimeout)
	}
	return nil
}
