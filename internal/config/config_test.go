package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/sedam/internal/config"
)

const required = `
[database]
name = "sedam"
user = "sedam"

[storage.minio]
endpoint = "localhost:9000"
access_key = "minio"
secret_key = "minio123"
`

const base = `
version = "1.2.0"

[server]
port = 9090

[database]
name = "sedam"
user = "sedam"

[storage]
provider = "minio"

[storage.minio]
endpoint = "localhost:9000"
access_key = "minio"
secret_key = "minio123"

[agent]
token = "sk-test"

[report.caps]
risks = 3
`

const overlay = `
[server]
port = 7070

[agent]
model = "gpt-4o-mini"

[report]
locale = "ko"

[report.caps]
images = 0
`

func writeConfig(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoad_BaseAndOverlay(t *testing.T) {
	t.Setenv(config.EnvSedamEnv, "test")
	dir := writeConfig(t, map[string]string{
		"config.toml":      base,
		"config.test.toml": overlay,
	})

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, "gpt-4o-mini", cfg.Agent.Model)
	assert.Equal(t, "dall-e-3", cfg.Agent.ImageModel)
	assert.InDelta(t, 0.7, cfg.Agent.Temperature, 1e-9)
	assert.InDelta(t, 0.3, cfg.Agent.RetryTemperature, 1e-9)
	assert.Equal(t, 4000, cfg.Agent.MaxTokens)
	assert.Equal(t, "ko", cfg.Report.Locale)
	assert.Equal(t, 3, cfg.Report.Layout().Caps.Risks)
	assert.Equal(t, 8, cfg.Report.Layout().Caps.KeyStrategies)
	assert.Zero(t, cfg.Report.Layout().Caps.Images)
	assert.Equal(t, int64(1024*1024), cfg.API.MaxBodyBytes())
	assert.Equal(t, "/api", cfg.API.BasePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvSedamEnv, "none")
	t.Setenv("SEDAM_SERVER_PORT", "6060")
	t.Setenv("SEDAM_AGENT_TEMPERATURE", "0.5")
	t.Setenv("SEDAM_DB_HOST", "db.internal")
	dir := writeConfig(t, map[string]string{"config.toml": base})

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 6060, cfg.Server.Port)
	assert.InDelta(t, 0.5, cfg.Agent.Temperature, 1e-9)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	t.Setenv(config.EnvSedamEnv, "none")
	dir := writeConfig(t, map[string]string{"config.toml": required})

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, config.ProviderOpenAI, cfg.Agent.Provider)
	assert.Equal(t, "en", cfg.Report.Locale)
	assert.Equal(t, "30s", cfg.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[server\nport = 1"},
		{"missing database", "[storage.minio]\nendpoint = \"x\"\naccess_key = \"a\"\nsecret_key = \"b\""},
		{"unknown provider", required + "\n[agent]\nprovider = \"mystery\""},
		{"unknown locale", required + "\n[report]\nlocale = \"fr\""},
		{"negative cap", required + "\n[report.caps]\nimages = -1"},
		{"bad body size", required + "\n[api]\nmax_body_size = \"lots\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvSedamEnv, "none")
			dir := writeConfig(t, map[string]string{"config.toml": tt.body})

			_, err := config.Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestAgentConfig_AzureRequiresBaseURL(t *testing.T) {
	cfg := config.AgentConfig{Provider: config.ProviderAzure}
	assert.Error(t, cfg.Finalize())

	cfg.BaseURL = "https://example.openai.azure.com"
	assert.NoError(t, cfg.Finalize())
}

func TestReportConfig_Options(t *testing.T) {
	cfg := config.ReportConfig{}
	require.NoError(t, cfg.Finalize())

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	cfg.FontPath = filepath.Join(t.TempDir(), "missing.ttf")
	assert.Error(t, cfg.Finalize())
}
