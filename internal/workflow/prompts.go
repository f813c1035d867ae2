package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/sedam/internal/prompts"
)

// ComposePrompt joins the effective instructions for stage with its fixed spec.
func ComposePrompt(ctx context.Context, ps prompts.System, stage prompts.Stage) (string, error) {
	instructions, err := ps.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load %s instructions: %w", stage, err)
	}

	spec, err := ps.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load %s spec: %w", stage, err)
	}

	return instructions + "\n\n" + spec, nil
}

// Request describes the policy to analyze.
type Request struct {
	Title          string
	Category       string
	TargetAudience string
	Description    string
	// AudienceNotes carries tone and focus guidance for the audience.
	AudienceNotes string
	Keywords      string
	Constraints   string
	// Model overrides the configured chat model when set.
	Model string
}

func (r Request) userPrompt() string {
	var sb strings.Builder
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&sb, "%s: %s\n", label, value)
		}
	}

	sb.WriteString("Policy input\n\n")
	line("Title", r.Title)
	line("Category", r.Category)
	line("Target audience", r.TargetAudience)
	line("Audience guidance", r.AudienceNotes)
	line("Description", r.Description)
	line("Emphasis keywords", r.Keywords)
	line("Constraints", r.Constraints)
	return sb.String()
}
