// Package config loads the service configuration from config.toml, an
// optional config.<SEDAM_ENV>.toml overlay, and SEDAM_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/sedam/pkg/database"
	"github.com/JaimeStill/sedam/pkg/envvar"
	"github.com/JaimeStill/sedam/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvSedamEnv = "SEDAM_ENV"
)

var databaseEnv = &database.Env{
	Host:            "SEDAM_DB_HOST",
	Port:            "SEDAM_DB_PORT",
	Name:            "SEDAM_DB_NAME",
	User:            "SEDAM_DB_USER",
	Password:        "SEDAM_DB_PASSWORD",
	SSLMode:         "SEDAM_DB_SSL_MODE",
	MaxOpenConns:    "SEDAM_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "SEDAM_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "SEDAM_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "SEDAM_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	Provider:         "SEDAM_STORAGE_PROVIDER",
	Container:        "SEDAM_STORAGE_CONTAINER",
	ConnectionString: "SEDAM_STORAGE_CONNECTION_STRING",
	AccountURL:       "SEDAM_STORAGE_ACCOUNT_URL",
	Endpoint:         "SEDAM_STORAGE_ENDPOINT",
	AccessKey:        "SEDAM_STORAGE_ACCESS_KEY",
	SecretKey:        "SEDAM_STORAGE_SECRET_KEY",
	Region:           "SEDAM_STORAGE_REGION",
	UseSSL:           "SEDAM_STORAGE_USE_SSL",
}

type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	API             APIConfig       `toml:"api"`
	Agent           AgentConfig     `toml:"agent"`
	Report          ReportConfig    `toml:"report"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns SEDAM_ENV, defaulting to "local".
func Env() string {
	if env := os.Getenv(EnvSedamEnv); env != "" {
		return env
	}
	return "local"
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads config files from dir. Missing files are not an error; defaults
// and environment variables then supply every value.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	base, err := read(dir, BaseConfigFile)
	if err != nil {
		return nil, err
	}
	if base != nil {
		cfg = base
	}

	overlay, err := read(dir, fmt.Sprintf(OverlayConfigPattern, Env()))
	if err != nil {
		return nil, err
	}
	if overlay != nil {
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Agent.Merge(&overlay.Agent)
	c.Report.Merge(&overlay.Report)
}

// Finalize applies defaults and environment overrides to every section and
// reports all validation failures together.
func (c *Config) Finalize() error {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	envvar.String(&c.ShutdownTimeout, "SEDAM_SHUTDOWN_TIMEOUT")
	envvar.String(&c.Version, "SEDAM_VERSION")

	var errs []error
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("invalid shutdown_timeout: %w", err))
	}

	sections := []struct {
		name     string
		finalize func() error
	}{
		{"server", c.Server.Finalize},
		{"database", func() error { return c.Database.Finalize(databaseEnv) }},
		{"storage", func() error { return c.Storage.Finalize(storageEnv) }},
		{"api", c.API.Finalize},
		{"agent", c.Agent.Finalize},
		{"report", c.Report.Finalize},
	}
	for _, s := range sections {
		if err := s.finalize(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	return errors.Join(errs...)
}

func read(dir, name string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &cfg, nil
}
