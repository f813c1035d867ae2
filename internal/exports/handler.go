package exports

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/pkg/handlers"
	"github.com/JaimeStill/sedam/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "exports"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/exports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{policyId}/report", Handler: h.Report},
			{Method: "GET", Pattern: "/{policyId}/archive", Handler: h.Archive},
		},
	}
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.sys.Report)
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.sys.Archive)
}

func (h *Handler) serve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, int64) (*Artifact, error),
) {
	policyID, err := policies.ParseID(r.PathValue("policyId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	a, err := fn(r.Context(), policyID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := handlers.RespondAttachment(w, a.ContentType, a.Filename, int64(len(a.Data)), bytes.NewReader(a.Data)); err != nil {
		h.logger.Warn("export interrupted", "policy_id", policyID, "error", err)
	}
}
