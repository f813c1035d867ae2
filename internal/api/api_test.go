package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/sedam/internal/api"
	"github.com/JaimeStill/sedam/internal/config"
	"github.com/JaimeStill/sedam/internal/infrastructure"
	"github.com/JaimeStill/sedam/pkg/module"
)

func TestMaxBody(t *testing.T) {
	var readErr error
	h := api.MaxBody(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		if readErr != nil {
			http.Error(w, readErr.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcd")))
	require.NoError(t, readErr)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcdefgh")))
	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, readErr, &tooLarge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

const minimal = `
[database]
name = "sedam"
user = "sedam"

[storage]
provider = "minio"

[storage.minio]
endpoint = "localhost:9000"
access_key = "minio"
secret_key = "minio123"

[api.cors]
enabled = true
origins = ["http://localhost:3000"]
`

func newModule(t *testing.T) http.Handler {
	t.Helper()
	t.Setenv("SEDAM_ENV", "test")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.BaseConfigFile), []byte(minimal), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	infra, err := infrastructure.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { infra.Database.Connection().Close() })

	m, err := api.NewModule(cfg, infra)
	require.NoError(t, err)
	assert.Equal(t, "/api", m.Prefix())

	router := module.NewRouter()
	router.Mount(m)
	return router
}

// These routes answer without touching the database.
func TestNewModule_Routes(t *testing.T) {
	h := newModule(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"audiences", http.MethodGet, "/api/policies/audiences", http.StatusOK},
		{"prompt stages", http.MethodGet, "/api/prompts/stages", http.StatusOK},
		{"analyze spec", http.MethodGet, "/api/prompts/analyze/spec", http.StatusOK},
		{"bad policy id", http.MethodGet, "/api/policies/abc", http.StatusBadRequest},
		{"bad export id", http.MethodGet, "/api/exports/x/report", http.StatusBadRequest},
		{"bad media id", http.MethodGet, "/api/media/download/x", http.StatusBadRequest},
		{"unknown route", http.MethodGet, "/api/nothing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestNewModule_CORSPreflight(t *testing.T) {
	h := newModule(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/policies", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
