package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/JaimeStill/sedam/pkg/envvar"
)

type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`
}

func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// WriteTimeoutDuration bounds the whole response, including report and
// archive rendering.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

func (c *ServerConfig) Finalize() error {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "1m"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "10m"
	}

	envvar.String(&c.Host, "SEDAM_SERVER_HOST")
	envvar.Int(&c.Port, "SEDAM_SERVER_PORT")
	envvar.String(&c.ReadTimeout, "SEDAM_SERVER_READ_TIMEOUT")
	envvar.String(&c.WriteTimeout, "SEDAM_SERVER_WRITE_TIMEOUT")

	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if _, err := time.ParseDuration(c.ReadTimeout); err != nil {
		errs = append(errs, fmt.Errorf("invalid read_timeout: %w", err))
	}
	if _, err := time.ParseDuration(c.WriteTimeout); err != nil {
		errs = append(errs, fmt.Errorf("invalid write_timeout: %w", err))
	}
	return errors.Join(errs...)
}

func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
}
