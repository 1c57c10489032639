// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Enabled    bool   `yaml:"enabled"`
		Host       string `yaml:"host"`
		Port       string `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		SSLMode    string `yaml:"sslmode"`
		SearchPath string `yaml:"schema"`
	} `yaml:"database"`
	Server struct {
		Port         string        `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		CorsOrigins  []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Evaluation struct {
		MaxSourceLength int           `yaml:"max_source_length"`
		CacheTTL        time.Duration `yaml:"cache_ttl"`
		CacheCleanup    time.Duration `yaml:"cache_cleanup"`
		CacheMaxEntries int           `yaml:"cache_max_entries"`
	} `yaml:"evaluation"`
	LogLevel string `yaml:"log_level"`
}

// Load builds the configuration from, in increasing priority: defaults, the
// YAML file named by BIZA_CONFIG, and environment variables (a .env file is
// loaded first when present).
func Load() (*Config, error) {
	envPath := getEnv("ENV_PATH", ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("Skipping .env ...", "path", envPath, "error", err)
	}

	cfg := Default()

	if path := os.Getenv("BIZA_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := validatePort(cfg.Server.Port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}
	if cfg.Evaluation.MaxSourceLength <= 0 {
		return nil, errors.New("max source length must be positive")
	}
	if cfg.Evaluation.CacheTTL <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}
	if cfg.Evaluation.CacheCleanup <= 0 {
		return nil, errors.New("cache cleanup interval must be positive")
	}
	if cfg.Evaluation.CacheMaxEntries < 0 {
		return nil, errors.New("cache max entries must not be negative")
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	cfg := &Config{}

	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Name = "biza"
	cfg.Database.SSLMode = "disable"
	cfg.Database.SearchPath = "public"

	cfg.Server.Port = "8080"
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15
	cfg.Server.CorsOrigins = []string{"https://*", "http://*"}

	cfg.Evaluation.MaxSourceLength = 4096
	cfg.Evaluation.CacheTTL = 5 * time.Minute
	cfg.Evaluation.CacheCleanup = 1 * time.Minute
	cfg.Evaluation.CacheMaxEntries = 10000

	cfg.LogLevel = "info"

	return cfg
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return yaml.NewDecoder(f).Decode(c)
}

func (c *Config) applyEnv() {
	c.Database.Enabled = getEnvBool("DB_ENABLED", c.Database.Enabled)
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnv("DB_PORT", c.Database.Port)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSLMODE", c.Database.SSLMode)
	c.Database.SearchPath = getEnv("DB_SCHEMA", c.Database.SearchPath)

	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		var list []string
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				list = append(list, origin)
			}
		}
		if len(list) > 0 {
			c.Server.CorsOrigins = list
		}
	}

	if n, err := strconv.Atoi(os.Getenv("MAX_SOURCE_LENGTH")); err == nil {
		c.Evaluation.MaxSourceLength = n
	}
	if d, err := time.ParseDuration(os.Getenv("CACHE_TTL")); err == nil {
		c.Evaluation.CacheTTL = d
	}
	if d, err := time.ParseDuration(os.Getenv("CACHE_CLEANUP")); err == nil {
		c.Evaluation.CacheCleanup = d
	}
	if n, err := strconv.Atoi(os.Getenv("CACHE_MAX_ENTRIES")); err == nil {
		c.Evaluation.CacheMaxEntries = n
	}

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
		c.Database.SearchPath,
	)
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
