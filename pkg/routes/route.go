// Package routes declares HTTP routes as data so domain handlers can
// publish them without owning a mux.
package routes

import "net/http"

type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group shares a prefix across its routes and nested children.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Patterns lists the ServeMux patterns the group expands to.
func (g Group) Patterns() []string {
	var out []string
	g.walk("", func(pattern string, _ http.HandlerFunc) {
		out = append(out, pattern)
	})
	return out
}

func (g Group) walk(parent string, fn func(string, http.HandlerFunc)) {
	prefix := parent + g.Prefix
	for _, r := range g.Routes {
		fn(r.Method+" "+prefix+r.Pattern, r.Handler)
	}
	for _, c := range g.Children {
		c.walk(prefix, fn)
	}
}

// Register adds every route in groups to mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, g := range groups {
		g.walk("", func(pattern string, h http.HandlerFunc) {
			mux.Handle(pattern, h)
		})
	}
}
