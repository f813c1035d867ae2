package workflow

import (
	"errors"
	"net/http"
)

var (
	ErrAnalysisFailed = errors.New("analysis failed")
	ErrImageFailed    = errors.New("image generation failed")
	ErrInvalidOptions = errors.New("invalid image options")
	ErrMissingBrief   = errors.New("brief not present in analysis")
)

// MapHTTPStatus reports upstream model failures as 502.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidOptions), errors.Is(err, ErrMissingBrief):
		return http.StatusBadRequest
	case errors.Is(err, ErrAnalysisFailed), errors.Is(err, ErrImageFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
