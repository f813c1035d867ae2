package storage

import (
	"errors"
	"fmt"

	"github.com/JaimeStill/sedam/pkg/envvar"
)

const (
	ProviderAzure = "azure"
	ProviderMinIO = "minio"
)

// Config selects a provider and holds the settings for each.
type Config struct {
	Provider  string      `toml:"provider"`
	Container string      `toml:"container"`
	Azure     AzureConfig `toml:"azure"`
	MinIO     MinIOConfig `toml:"minio"`
}

// AzureConfig authenticates with a connection string when one is set and
// otherwise with the default Azure credential chain against AccountURL.
type AzureConfig struct {
	ConnectionString string `toml:"connection_string"`
	AccountURL       string `toml:"account_url"`
}

type MinIOConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Region    string `toml:"region"`
	UseSSL    bool   `toml:"use_ssl"`
}

// Env names the environment variables that override Config fields.
type Env struct {
	Provider         string
	Container        string
	ConnectionString string
	AccountURL       string
	Endpoint         string
	AccessKey        string
	SecretKey        string
	Region           string
	UseSSL           string
}

func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge copies non-zero fields of overlay onto c. UseSSL only ever turns on.
func (c *Config) Merge(overlay *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Provider, overlay.Provider)
	set(&c.Container, overlay.Container)
	set(&c.Azure.ConnectionString, overlay.Azure.ConnectionString)
	set(&c.Azure.AccountURL, overlay.Azure.AccountURL)
	set(&c.MinIO.Endpoint, overlay.MinIO.Endpoint)
	set(&c.MinIO.AccessKey, overlay.MinIO.AccessKey)
	set(&c.MinIO.SecretKey, overlay.MinIO.SecretKey)
	set(&c.MinIO.Region, overlay.MinIO.Region)
	if overlay.MinIO.UseSSL {
		c.MinIO.UseSSL = true
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderMinIO
	}
	if c.Container == "" {
		c.Container = "sedam-media"
	}
	if c.MinIO.Region == "" {
		c.MinIO.Region = "us-east-1"
	}
}

func (c *Config) loadEnv(env *Env) {
	envvar.String(&c.Provider, env.Provider)
	envvar.String(&c.Container, env.Container)
	envvar.String(&c.Azure.ConnectionString, env.ConnectionString)
	envvar.String(&c.Azure.AccountURL, env.AccountURL)
	envvar.String(&c.MinIO.Endpoint, env.Endpoint)
	envvar.String(&c.MinIO.AccessKey, env.AccessKey)
	envvar.String(&c.MinIO.SecretKey, env.SecretKey)
	envvar.String(&c.MinIO.Region, env.Region)
	envvar.Bool(&c.MinIO.UseSSL, env.UseSSL)
}

func (c *Config) validate() error {
	if c.Container == "" {
		return errors.New("container required")
	}

	switch c.Provider {
	case ProviderAzure:
		if c.Azure.ConnectionString == "" && c.Azure.AccountURL == "" {
			return errors.New("azure requires connection_string or account_url")
		}
	case ProviderMinIO:
		if c.MinIO.Endpoint == "" {
			return errors.New("minio endpoint required")
		}
		if c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
			return errors.New("minio access_key and secret_key required")
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	return nil
}
