// Package formatting converts between byte counts and their human-readable
// form and pulls JSON payloads out of free-form model replies.
package formatting

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

var sizePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([A-Za-z]*)$`)

// FormatBytes renders n with base-1024 units, e.g. FormatBytes(1536, 1) is "1.5 KB".
func FormatBytes(n int64, precision int) string {
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	v, exp := float64(n), 0
	for v >= 1024 && exp < len(units)-1 {
		v /= 1024
		exp++
	}
	precision = max(precision, 0)
	return strconv.FormatFloat(v, 'f', precision, 64) + " " + units[exp]
}

// ParseBytes accepts values like "512", "64KB" or "1.5 mb".
func ParseBytes(s string) (int64, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}

	exp := 0
	if m[2] != "" {
		exp = slices.Index(units, strings.ToUpper(m[2]))
		if exp < 0 {
			return 0, fmt.Errorf("unknown byte size unit %q", m[2])
		}
	}
	return int64(v * math.Pow(1024, float64(exp))), nil
}
