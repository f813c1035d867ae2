package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/JaimeStill/sedam/pkg/envvar"
)

const (
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"
)

// AgentConfig selects the chat and image models used by the workflow.
type AgentConfig struct {
	Provider         string  `toml:"provider"`
	BaseURL          string  `toml:"base_url"`
	Token            string  `toml:"token"`
	APIVersion       string  `toml:"api_version"`
	Model            string  `toml:"model"`
	ImageModel       string  `toml:"image_model"`
	Temperature      float64 `toml:"temperature"`
	RetryTemperature float64 `toml:"retry_temperature"`
	MaxTokens        int     `toml:"max_tokens"`
	Timeout          string  `toml:"timeout"`
	Concurrency      int     `toml:"concurrency"`
}

func (c *AgentConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

func (c *AgentConfig) Finalize() error {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.Model == "" {
		c.Model = "gpt-4o"
	}
	if c.ImageModel == "" {
		c.ImageModel = "dall-e-3"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
	if c.RetryTemperature == 0 {
		c.RetryTemperature = 0.3
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 4000
	}
	if c.Timeout == "" {
		c.Timeout = "3m"
	}
	if c.Concurrency == 0 {
		c.Concurrency = 2
	}

	envvar.String(&c.Provider, "SEDAM_AGENT_PROVIDER")
	envvar.String(&c.BaseURL, "SEDAM_AGENT_BASE_URL")
	envvar.String(&c.Token, "SEDAM_AGENT_TOKEN")
	envvar.String(&c.APIVersion, "SEDAM_AGENT_API_VERSION")
	envvar.String(&c.Model, "SEDAM_AGENT_MODEL")
	envvar.String(&c.ImageModel, "SEDAM_AGENT_IMAGE_MODEL")
	envvar.Float(&c.Temperature, "SEDAM_AGENT_TEMPERATURE")
	envvar.Float(&c.RetryTemperature, "SEDAM_AGENT_RETRY_TEMPERATURE")
	envvar.Int(&c.MaxTokens, "SEDAM_AGENT_MAX_TOKENS")
	envvar.String(&c.Timeout, "SEDAM_AGENT_TIMEOUT")
	envvar.Int(&c.Concurrency, "SEDAM_AGENT_CONCURRENCY")

	return c.validate()
}

func (c *AgentConfig) validate() error {
	var errs []error
	switch c.Provider {
	case ProviderOpenAI:
	case ProviderAzure:
		if c.BaseURL == "" {
			errs = append(errs, errors.New("base_url required for azure"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		errs = append(errs, fmt.Errorf("temperature %v out of range", c.Temperature))
	}
	if c.RetryTemperature < 0 || c.RetryTemperature > 2 {
		errs = append(errs, fmt.Errorf("retry_temperature %v out of range", c.RetryTemperature))
	}
	if c.MaxTokens < 1 {
		errs = append(errs, fmt.Errorf("invalid max_tokens: %d", c.MaxTokens))
	}
	if c.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("invalid concurrency: %d", c.Concurrency))
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("invalid timeout: %w", err))
	}
	return errors.Join(errs...)
}

func (c *AgentConfig) Merge(overlay *AgentConfig) {
	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	str(&c.Provider, overlay.Provider)
	str(&c.BaseURL, overlay.BaseURL)
	str(&c.Token, overlay.Token)
	str(&c.APIVersion, overlay.APIVersion)
	str(&c.Model, overlay.Model)
	str(&c.ImageModel, overlay.ImageModel)
	str(&c.Timeout, overlay.Timeout)

	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.RetryTemperature != 0 {
		c.RetryTemperature = overlay.RetryTemperature
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
	if overlay.Concurrency != 0 {
		c.Concurrency = overlay.Concurrency
	}
}
