package media

import (
	"encoding/json"
	"net/url"

	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/pkg/query"
	"github.com/JaimeStill/sedam/pkg/repository"
)

const columns = "id, policy_id, media_type, storage_key, content_type, size_bytes, prompt, params, created_at"

var projection = query.
	NewProjectionMap("public", "media", "m").
	Project("id", "ID").
	Project("policy_id", "PolicyID").
	Project("media_type", "MediaType").
	Project("storage_key", "StorageKey").
	Project("content_type", "ContentType").
	Project("size_bytes", "SizeBytes").
	Project("prompt", "Prompt").
	Project("params", "Params").
	Project("created_at", "CreatedAt")

var (
	defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
	oldestFirst = query.SortField{Field: "CreatedAt"}
)

type Filters struct {
	PolicyID  *int64  `json:"policy_id,omitempty"`
	MediaType *string `json:"media_type,omitempty"`
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("PolicyID", f.PolicyID).
		WhereEquals("MediaType", f.MediaType)
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if id, err := policies.ParseID(values.Get("policy_id")); err == nil {
		f.PolicyID = &id
	}
	if v := values.Get("media_type"); v != "" {
		f.MediaType = &v
	}
	return f
}

func scanMedia(s repository.Scanner) (Media, error) {
	var (
		m      Media
		params []byte
	)
	err := s.Scan(
		&m.ID,
		&m.PolicyID,
		&m.MediaType,
		&m.StorageKey,
		&m.ContentType,
		&m.SizeBytes,
		&m.Prompt,
		&params,
		&m.CreatedAt,
	)
	if err != nil {
		return m, err
	}

	if len(params) > 0 {
		if err := json.Unmarshal(params, &m.Params); err != nil {
			return m, err
		}
	}
	return m, nil
}
