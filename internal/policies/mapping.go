package policies

import (
	"net/url"
	"time"

	"github.com/JaimeStill/sedam/pkg/query"
	"github.com/JaimeStill/sedam/pkg/repository"
)

const columns = "id, title, category, target_audience, description, status, created_at, updated_at"

var projection = query.
	NewProjectionMap("public", "policies", "p").
	Project("id", "ID").
	Project("title", "Title").
	Project("category", "Category").
	Project("target_audience", "TargetAudience").
	Project("description", "Description").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

// Filters narrow policy listings. Status and TargetAudience match exactly,
// Title and Category by substring. CreatedFrom is inclusive and CreatedTo
// exclusive.
type Filters struct {
	Status         *Status    `json:"status,omitempty"`
	TargetAudience *string    `json:"target_audience,omitempty"`
	Title          *string    `json:"title,omitempty"`
	Category       *string    `json:"category,omitempty"`
	CreatedFrom    *time.Time `json:"created_from,omitempty"`
	CreatedTo      *time.Time `json:"created_to,omitempty"`
}

func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Status", f.Status).
		WhereEquals("TargetAudience", f.TargetAudience).
		WhereContains("Title", f.Title).
		WhereContains("Category", f.Category).
		WhereRange("CreatedAt", f.CreatedFrom, f.CreatedTo)
}

// FiltersFromQuery accepts created_from and created_to as RFC 3339 timestamps
// or plain dates. A plain created_to date includes that whole day.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s, err := ParseStatus(values.Get("status")); err == nil {
		f.Status = &s
	}
	if v := values.Get("target_audience"); v != "" {
		f.TargetAudience = &v
	}
	if v := values.Get("title"); v != "" {
		f.Title = &v
	}
	if v := values.Get("category"); v != "" {
		f.Category = &v
	}
	f.CreatedFrom = parseTime(values.Get("created_from"), false)
	f.CreatedTo = parseTime(values.Get("created_to"), true)
	return f
}

func parseTime(s string, endOfDay bool) *time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1)
	}
	return &t
}

func scanPolicy(s repository.Scanner) (Policy, error) {
	var p Policy
	err := s.Scan(
		&p.ID,
		&p.Title,
		&p.Category,
		&p.TargetAudience,
		&p.Description,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
