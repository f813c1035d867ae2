package exports

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sedam/internal/policies"
)

// MapHTTPStatus reports a missing policy as 404. Render and archive
// failures are server errors.
func MapHTTPStatus(err error) int {
	if errors.Is(err, policies.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
