// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/sedam/internal/config"
	"github.com/JaimeStill/sedam/internal/infrastructure"
	"github.com/JaimeStill/sedam/pkg/middleware"
	"github.com/JaimeStill/sedam/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := NewDomain(runtime)

	m := module.New(cfg.API.BasePath)
	m.Routes(domain.Groups()...)
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(MaxBody(cfg.API.MaxBodyBytes()))

	return m, nil
}

// MaxBody caps request bodies at limit bytes.
func MaxBody(limit int64) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
