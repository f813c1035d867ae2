// Package module mounts independently routed HTTP sub-applications under
// single-segment path prefixes.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/sedam/pkg/middleware"
	"github.com/JaimeStill/sedam/pkg/routes"
)

// Module owns a mux and middleware stack served beneath one prefix such as "/api".
type Module struct {
	prefix string
	mux    *http.ServeMux
	stack  middleware.Stack
}

// New panics when prefix is not a single path segment with a leading slash.
func New(prefix string) *Module {
	if err := checkPrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, mux: http.NewServeMux()}
}

func (m *Module) Prefix() string { return m.prefix }

// Use appends middleware. Middleware added first runs first.
func (m *Module) Use(mw middleware.Middleware) {
	m.stack.Use(mw)
}

// Routes registers route groups relative to the module prefix.
func (m *Module) Routes(groups ...routes.Group) {
	routes.Register(m.mux, groups...)
}

// ServeHTTP strips the prefix and dispatches through the middleware stack.
func (m *Module) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, m.prefix)
	if rest == "" {
		rest = "/"
	}

	inner := r.Clone(r.Context())
	inner.URL.Path = rest
	inner.URL.RawPath = ""

	m.stack.Apply(m.mux).ServeHTTP(w, inner)
}

func checkPrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix is empty")
	case prefix[0] != '/':
		return fmt.Errorf("module prefix %q must start with /", prefix)
	case strings.Count(prefix, "/") != 1 || len(prefix) == 1:
		return fmt.Errorf("module prefix %q must be a single segment", prefix)
	}
	return nil
}

// Router sends requests to the module owning the first path segment and
// everything else to a fallback mux.
type Router struct {
	modules  map[string]*Module
	fallback *http.ServeMux
}

func NewRouter() *Router {
	return &Router{
		modules:  map[string]*Module{},
		fallback: http.NewServeMux(),
	}
}

func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// HandleFunc registers a handler outside any module, e.g. health probes.
func (r *Router) HandleFunc(pattern string, h http.HandlerFunc) {
	r.fallback.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
		req.URL.Path = strings.TrimSuffix(p, "/")
	}

	if m, ok := r.modules[segment(req.URL.Path)]; ok {
		m.ServeHTTP(w, req)
		return
	}
	r.fallback.ServeHTTP(w, req)
}

func segment(path string) string {
	if i := strings.IndexByte(path[min(1, len(path)):], '/'); i >= 0 {
		return path[:i+1]
	}
	return path
}
