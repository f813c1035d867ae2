// Package middleware provides HTTP middleware and an ordered stack to apply it.
package middleware

import "net/http"

// Middleware wraps a handler.
type Middleware = func(http.Handler) http.Handler

// Stack applies middleware so the first added is the outermost.
type Stack struct {
	items []Middleware
}

func (s *Stack) Use(mw Middleware) {
	s.items = append(s.items, mw)
}

func (s *Stack) Apply(h http.Handler) http.Handler {
	for i := len(s.items) - 1; i >= 0; i-- {
		h = s.items[i](h)
	}
	return h
}
