package render

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DateLabel formats a note timestamp the way cards show it, e.g.
// "Jan 2, 2025". Zero times render empty.
func DateLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006")
}

// Excerpt returns the first max runes of content with whitespace runs
// collapsed, adding an ellipsis when truncated.
func Excerpt(content string, max int) string {
	flat := strings.Join(strings.Fields(content), " ")
	if max <= 0 || utf8.RuneCountInString(flat) <= max {
		return flat
	}
	runes := []rune(flat)
	return strings.TrimSpace(string(runes[:max])) + "…"
}
