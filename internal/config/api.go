package config

import (
	"fmt"

	"github.com/JaimeStill/sedam/pkg/envvar"
	"github.com/JaimeStill/sedam/pkg/formatting"
	"github.com/JaimeStill/sedam/pkg/middleware"
	"github.com/JaimeStill/sedam/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "SEDAM_CORS_ENABLED",
	Origins:          "SEDAM_CORS_ORIGINS",
	AllowedMethods:   "SEDAM_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "SEDAM_CORS_ALLOWED_HEADERS",
	AllowCredentials: "SEDAM_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "SEDAM_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "SEDAM_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "SEDAM_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, request limits, CORS, and pagination.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Pagination  pagination.Config     `toml:"pagination"`
}

// MaxBodyBytes is only valid after Finalize has accepted MaxBodySize.
func (c *APIConfig) MaxBodyBytes() int64 {
	n, _ := formatting.ParseBytes(c.MaxBodySize)
	return n
}

func (c *APIConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}

	envvar.String(&c.BasePath, "SEDAM_API_BASE_PATH")
	envvar.String(&c.MaxBodySize, "SEDAM_API_MAX_BODY_SIZE")

	if n, err := formatting.ParseBytes(c.MaxBodySize); err != nil || n <= 0 {
		return fmt.Errorf("invalid max_body_size %q", c.MaxBodySize)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}
