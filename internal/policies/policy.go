// Package policies stores the policy proposals that every generated artifact
// hangs off, and tracks how far each has progressed through generation.
package policies

import (
	"slices"
	"strings"
	"time"

	"github.com/JaimeStill/sedam/internal/report"
)

type Status string

// Statuses advance as content, media, and exports are produced.
const (
	StatusDraft      Status = "draft"
	StatusAnalyzed   Status = "analyzed"
	StatusMediaReady Status = "media_ready"
	StatusExported   Status = "exported"
)

func Statuses() []Status {
	return []Status{StatusDraft, StatusAnalyzed, StatusMediaReady, StatusExported}
}

func ParseStatus(s string) (Status, error) {
	if !slices.Contains(Statuses(), Status(s)) {
		return "", ErrInvalidStatus
	}
	return Status(s), nil
}

type Policy struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	TargetAudience string    `json:"target_audience"`
	Description    string    `json:"description"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Subject is the cover-page snapshot of p.
func (p *Policy) Subject() report.Subject {
	return report.Subject{
		Title:          p.Title,
		Category:       p.Category,
		TargetAudience: p.TargetAudience,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05"),
	}
}

type CreateCommand struct {
	Title          string `json:"title"`
	Category       string `json:"category"`
	TargetAudience string `json:"target_audience"`
	Description    string `json:"description"`
}

func (c *CreateCommand) normalize() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Category = strings.TrimSpace(c.Category)
	c.Description = strings.TrimSpace(c.Description)

	if c.Title == "" || c.Description == "" {
		return ErrInvalid
	}
	if _, ok := FindAudience(c.TargetAudience); !ok {
		return ErrUnknownAudience
	}
	return nil
}

type StatusCommand struct {
	Status Status `json:"status"`
}
