package policies

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Audience describes who a policy addresses and how to speak to them.
type Audience struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
	Tone  string `yaml:"tone" json:"tone"`
	Focus string `yaml:"focus" json:"focus"`
}

// Notes is the guidance line passed to the analysis prompt.
func (a Audience) Notes() string {
	return fmt.Sprintf("%s. Tone: %s. Focus: %s.", a.Label, a.Tone, a.Focus)
}

//go:embed audiences.yaml
var audiencesYAML []byte

var audiences = mustLoadAudiences(audiencesYAML)

func mustLoadAudiences(data []byte) []Audience {
	var out []Audience
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("policies: audiences.yaml: %v", err))
	}
	return out
}

func Audiences() []Audience {
	return append([]Audience(nil), audiences...)
}

func FindAudience(key string) (Audience, bool) {
	for _, a := range audiences {
		if a.Key == key {
			return a, true
		}
	}
	return Audience{}, false
}
