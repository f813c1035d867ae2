package media

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sedam/internal/contents"
	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/internal/workflow"
	"github.com/JaimeStill/sedam/pkg/storage"
)

var (
	ErrNotFound     = errors.New("media not found")
	ErrDuplicate    = errors.New("media already exists")
	ErrUnknownBrief = errors.New("unknown image brief")
	ErrNoBriefs     = errors.New("analysis has no image briefs")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, policies.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownBrief):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoBriefs), errors.Is(err, contents.ErrNoAnalysis):
		return http.StatusConflict
	case errors.Is(err, storage.ErrNotFound):
		return storage.MapHTTPStatus(err)
	}
	return workflow.MapHTTPStatus(err)
}
