package policies

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("policy not found")
	ErrDuplicate       = errors.New("policy already exists")
	ErrInvalid         = errors.New("title and description are required")
	ErrUnknownAudience = errors.New("unknown target audience")
	ErrInvalidStatus   = errors.New("invalid policy status")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalid),
		errors.Is(err, ErrUnknownAudience),
		errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
