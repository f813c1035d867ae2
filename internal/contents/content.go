// Package contents stores the text artifacts generated for a policy: the
// structured analysis and the video prompt sets derived from it.
package contents

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	TypeAnalysis     ContentType = "analysis"
	TypeVideoPrompts ContentType = "video_prompts"
)

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case TypeAnalysis, TypeVideoPrompts:
		return ContentType(s), nil
	}
	return "", ErrInvalidType
}

type Content struct {
	ID          uuid.UUID       `json:"id"`
	PolicyID    int64           `json:"policy_id"`
	ContentType ContentType     `json:"content_type"`
	Data        json.RawMessage `json:"data"`
	Metadata    map[string]any  `json:"metadata"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AnalyzeCommand adds optional guidance to an analysis run. Model overrides
// the configured chat model.
type AnalyzeCommand struct {
	Keywords    string `json:"keywords,omitempty"`
	Constraints string `json:"constraints,omitempty"`
	Model       string `json:"model,omitempty"`
}
