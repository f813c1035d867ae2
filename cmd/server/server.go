package main

import (
	"time"

	"github.com/JaimeStill/sedam/internal/api"
	"github.com/JaimeStill/sedam/internal/config"
	"github.com/JaimeStill/sedam/internal/infrastructure"
	"github.com/JaimeStill/sedam/pkg/module"
)

type Server struct {
	infra  *infrastructure.Infrastructure
	router *module.Router
	http   *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	router.Mount(apiModule)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", config.Env(),
	)

	return &Server{
		infra:  infra,
		router: router,
		http:   newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start registers every subsystem hook, then runs startup in the
// background so the listener can answer readiness probes meanwhile.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}
	s.http.Start(s.infra.Lifecycle)

	go func() {
		if err := s.infra.Lifecycle.Start(); err != nil {
			s.infra.Logger.Error("startup failed", "error", err)
			return
		}
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
