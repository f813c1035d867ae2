package contents

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/internal/workflow"
)

var (
	ErrNotFound    = errors.New("content not found")
	ErrDuplicate   = errors.New("content already exists")
	ErrInvalidType = errors.New("invalid content type")
	ErrNoAnalysis  = errors.New("policy has no analysis")
	ErrCorrupt     = errors.New("stored content is not valid")
)

// MapHTTPStatus also resolves policy and workflow errors surfaced by the
// generation operations.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidType):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoAnalysis):
		return http.StatusConflict
	case errors.Is(err, policies.ErrNotFound):
		return http.StatusNotFound
	}
	if status := workflow.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return http.StatusInternalServerError
}
