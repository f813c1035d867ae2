package contents

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/pkg/handlers"
	"github.com/JaimeStill/sedam/pkg/pagination"
	"github.com/JaimeStill/sedam/pkg/routes"
)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "contents"),
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/contents",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/policy/{id}", Handler: h.ListByPolicy},
			{Method: "POST", Pattern: "/{policyId}/analyze", Handler: h.Analyze},
			{Method: "POST", Pattern: "/{policyId}/video-prompts", Handler: h.VideoPrompts},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page, FiltersFromQuery(r.URL.Query()))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	c, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, c)
}

// ListByPolicy accepts an optional content_type query parameter.
func (h *Handler) ListByPolicy(w http.ResponseWriter, r *http.Request) {
	policyID, err := policies.ParseID(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var kind *ContentType
	if v := r.URL.Query().Get("content_type"); v != "" {
		t, err := ParseContentType(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		kind = &t
	}

	items, err := h.sys.ListByPolicy(r.Context(), policyID, kind)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	if items == nil {
		items = []Content{}
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

// Analyze accepts an empty body.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	policyID, err := policies.ParseID(r.PathValue("policyId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd AnalyzeCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil && !errors.Is(err, io.EOF) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c, err := h.sys.Analyze(r.Context(), policyID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, c)
}

func (h *Handler) VideoPrompts(w http.ResponseWriter, r *http.Request) {
	policyID, err := policies.ParseID(r.PathValue("policyId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c, err := h.sys.GenerateVideoPrompts(r.Context(), policyID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, c)
}
