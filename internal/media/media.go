// Package media stores generated images. Rows hold metadata and the blob
// key; image bytes live in blob storage.
package media

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/sedam/internal/analysis"
)

const TypeImage = "image"

type Media struct {
	ID          uuid.UUID      `json:"id"`
	PolicyID    int64          `json:"policy_id"`
	MediaType   string         `json:"media_type"`
	StorageKey  string         `json:"storage_key"`
	ContentType string         `json:"content_type"`
	SizeBytes   int64          `json:"size_bytes"`
	Prompt      string         `json:"prompt"`
	Params      map[string]any `json:"params"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Filename is the download name offered to clients.
func (m *Media) Filename() string {
	return fmt.Sprintf("policy_%d_%s.png", m.PolicyID, m.ID)
}

// GenerateCommand selects which image briefs to render. No briefs selects
// every brief present in the analysis. StyleOverride replaces the image
// stage instructions for this request.
type GenerateCommand struct {
	Briefs        []analysis.BriefKey `json:"briefs,omitempty"`
	Size          string              `json:"size,omitempty"`
	Quality       string              `json:"quality,omitempty"`
	StyleOverride string              `json:"style_override,omitempty"`
}

// GenerateResult lists the stored images and the briefs whose image could
// not be generated.
type GenerateResult struct {
	Media  []Media       `json:"media"`
	Failed []FailedBrief `json:"failed,omitempty"`
}

type FailedBrief struct {
	Brief analysis.BriefKey `json:"brief"`
	Error string            `json:"error"`
}

func storageKey(policyID int64, id uuid.UUID) string {
	return fmt.Sprintf("media/%d/%s.png", policyID, id)
}
