package contents

import (
	"encoding/json"
	"net/url"

	"github.com/JaimeStill/sedam/internal/policies"
	"github.com/JaimeStill/sedam/pkg/query"
	"github.com/JaimeStill/sedam/pkg/repository"
)

const columns = "id, policy_id, content_type, data, metadata, created_at"

var projection = query.
	NewProjectionMap("public", "contents", "c").
	Project("id", "ID").
	Project("policy_id", "PolicyID").
	Project("content_type", "ContentType").
	Project("data", "Data").
	Project("metadata", "Metadata").
	Project("created_at", "CreatedAt")

var (
	defaultSort = query.SortField{Field: "CreatedAt", Descending: true}
	oldestFirst = query.SortField{Field: "CreatedAt"}
)

type Filters struct {
	PolicyID    *int64       `json:"policy_id,omitempty"`
	ContentType *ContentType `json:"content_type,omitempty"`
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("PolicyID", f.PolicyID).
		WhereEquals("ContentType", f.ContentType)
}

func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if id, err := policies.ParseID(values.Get("policy_id")); err == nil {
		f.PolicyID = &id
	}
	if t, err := ParseContentType(values.Get("content_type")); err == nil {
		f.ContentType = &t
	}
	return f
}

func scanContent(s repository.Scanner) (Content, error) {
	var (
		c        Content
		data     []byte
		metadata []byte
	)
	if err := s.Scan(&c.ID, &c.PolicyID, &c.ContentType, &data, &metadata, &c.CreatedAt); err != nil {
		return c, err
	}

	c.Data = json.RawMessage(data)
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &c.Metadata); err != nil {
			return c, err
		}
	}
	return c, nil
}
