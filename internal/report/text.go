package report

import "golang.org/x/text/unicode/norm"

// clip truncates s to at most n characters. Characters are Unicode code
// points after NFC composition, so precomposed Hangul syllables and accented
// Latin letters count once and are never split mid-sequence.
func clip(s string, n int) string {
	r := []rune(norm.NFC.String(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n])
}

// chunk splits s into consecutive slices of width characters. Chunks start
// only at offsets below limit; the final chunk may run past limit by up to
// width-1 characters. At most maxLines chunks are returned.
func chunk(s string, width, limit, maxLines int) []string {
	r := []rune(norm.NFC.String(s))
	end := min(len(r), limit)

	lines := make([]string, 0, maxLines)
	for i := 0; i < end && len(lines) < maxLines; i += width {
		lines = append(lines, string(r[i:min(i+width, len(r))]))
	}
	return lines
}
