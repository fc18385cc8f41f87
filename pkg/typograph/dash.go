package typograph

import (
	"strings"
)

const emDash = '—'

// russianDashes turns "--" into an em dash, then turns every remaining
// hyphen into one unless it starts the line (list items) or touches a digit
// (ranges like 1-5) or a Cyrillic letter (compounds like что-то).
// Every rewrite is counted.
func russianDashes(s string) (string, int) {
	count := strings.Count(s, "--")
	s = strings.ReplaceAll(s, "--", string(emDash))

	if !strings.Contains(s, "-") {
		return s, count
	}

	runes := []rune(s)
	for i, r := range runes {
		if r != '-' || i == 0 {
			continue
		}
		if keepsHyphen(runes[i-1]) {
			continue
		}
		if i+1 < len(runes) && keepsHyphen(runes[i+1]) {
			continue
		}
		runes[i] = emDash
		count++
	}

	return string(runes), count
}

// keepsHyphen reports whether a neighbouring rune protects a hyphen.
// Rewritten neighbours never qualify, so scanning in place is safe.
func keepsHyphen(r rune) bool {
	return (r >= '0' && r <= '9') || IsCyrillic(r)
}
