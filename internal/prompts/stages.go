package prompts

import (
	"encoding/json"
	"slices"
)

// Stage names the workflow step whose instructions a prompt overrides.
type Stage string

const (
	StageAnalyze Stage = "analyze"
	StageRetry   Stage = "retry"
	StageImage   Stage = "image"
)

func Stages() []Stage {
	return []Stage{StageAnalyze, StageRetry, StageImage}
}

func ParseStage(s string) (Stage, error) {
	if !slices.Contains(Stages(), Stage(s)) {
		return "", ErrInvalidStage
	}
	return Stage(s), nil
}

func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseStage(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
