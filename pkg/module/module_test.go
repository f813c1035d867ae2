package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/sedam/pkg/module"
	"github.com/JaimeStill/sedam/pkg/routes"
)

func TestNew_InvalidPrefixPanics(t *testing.T) {
	for _, prefix := range []string{"", "/", "api", "/api/v1"} {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %q", prefix)
				}
			}()
			module.New(prefix)
		})
	}
}

func TestRouter(t *testing.T) {
	api := module.New("/api")
	api.Routes(routes.Group{
		Prefix: "/policies",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("list"))
			}},
			{Method: "GET", Pattern: "/{id}", Handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("get " + r.PathValue("id")))
			}},
		},
	})

	var hits int
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	})

	router := module.NewRouter()
	router.Mount(api)
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/api/policies", http.StatusOK, "list"},
		{"/api/policies/", http.StatusOK, "list"},
		{"/api/policies/42", http.StatusOK, "get 42"},
		{"/healthz", http.StatusOK, "ok"},
		{"/api/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			if tt.body != "" && rec.Body.String() != tt.body {
				t.Errorf("body: got %q, want %q", rec.Body.String(), tt.body)
			}
		})
	}

	if hits != 4 {
		t.Errorf("module middleware hits: got %d, want 4", hits)
	}
}
