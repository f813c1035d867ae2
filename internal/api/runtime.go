package api

import (
	"fmt"

	"github.com/JaimeStill/sedam/internal/config"
	"github.com/JaimeStill/sedam/internal/infrastructure"
	"github.com/JaimeStill/sedam/internal/prompts"
	"github.com/JaimeStill/sedam/internal/report"
	"github.com/JaimeStill/sedam/internal/workflow"
	"github.com/JaimeStill/sedam/pkg/pagination"
)

// Runtime extends Infrastructure with the API's model client, renderer,
// and pagination settings.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Agent      config.AgentConfig
	Client     workflow.Client
	Renderer   *report.Renderer
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	client, err := workflow.NewClient(cfg.Agent)
	if err != nil {
		return nil, fmt.Errorf("agent client: %w", err)
	}

	logger := infra.Logger.With("module", "api")

	opts, err := cfg.Report.Options()
	if err != nil {
		return nil, fmt.Errorf("report options: %w", err)
	}
	opts = append(opts, report.WithLogger(logger.With("system", "report")))

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Agent:      cfg.Agent,
		Client:     client,
		Renderer:   report.New(opts...),
	}, nil
}

// Workflow binds the model client to a prompts system.
func (r *Runtime) Workflow(ps prompts.System) *workflow.Runtime {
	return &workflow.Runtime{
		Client:  r.Client,
		Agent:   r.Agent,
		Prompts: ps,
		Logger:  r.Logger.With("system", "workflow"),
	}
}
