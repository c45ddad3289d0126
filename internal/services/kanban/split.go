package kanban

import (
	"regexp"
	"strings"
)

// sentenceBreak matches a run of sentence terminators
var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// SplitText breaks text into trimmed, non-empty sentences
func SplitText(text string) []string {
	parts := sentenceBreak.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
