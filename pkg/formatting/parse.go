package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed means no JSON document could be recovered from the content.
var ErrParseFailed = errors.New("failed to parse response")

var fence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// Parse decodes content as JSON into T. When the content is not bare JSON it
// tries a fenced code block, then the outermost brace-delimited object.
func Parse[T any](content string) (T, error) {
	var out T

	for _, candidate := range candidates(strings.TrimSpace(content)) {
		if err := json.Unmarshal([]byte(candidate), &out); err == nil {
			return out, nil
		}
		out = *new(T)
	}

	return out, fmt.Errorf("%w: %s", ErrParseFailed, excerpt(content, 200))
}

func candidates(s string) []string {
	out := []string{s}
	if m := fence.FindStringSubmatch(s); m != nil {
		out = append(out, m[1])
	}
	if i, j := strings.IndexByte(s, '{'), strings.LastIndexByte(s, '}'); i >= 0 && j > i {
		out = append(out, s[i:j+1])
	}
	return out
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
