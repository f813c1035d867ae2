// Package workflow drives the language model: structured policy analysis,
// image generation from creative briefs, and video prompt composition.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/JaimeStill/sedam/internal/config"
	"github.com/JaimeStill/sedam/internal/prompts"
)

// Client is the subset of the OpenAI API the workflow calls.
// *openai.Client satisfies it.
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// NewClient builds an OpenAI or Azure OpenAI client from cfg.
func NewClient(cfg config.AgentConfig) (Client, error) {
	var oc openai.ClientConfig

	switch cfg.Provider {
	case config.ProviderOpenAI:
		oc = openai.DefaultConfig(cfg.Token)
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
	case config.ProviderAzure:
		oc = openai.DefaultAzureConfig(cfg.Token, cfg.BaseURL)
		if cfg.APIVersion != "" {
			oc.APIVersion = cfg.APIVersion
		}
	default:
		return nil, fmt.Errorf("unknown agent provider %q", cfg.Provider)
	}

	oc.HTTPClient = &http.Client{Timeout: cfg.TimeoutDuration()}
	return openai.NewClientWithConfig(oc), nil
}

// Runtime carries everything a workflow call needs. It replaces any shared
// session state: callers build one and pass it explicitly.
type Runtime struct {
	Client  Client
	Agent   config.AgentConfig
	Prompts prompts.System
	Logger  *slog.Logger
}
