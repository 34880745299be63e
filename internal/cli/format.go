package cli

import (
	"fmt"
	"strings"
	"time"
)

// FormatCost renders a reported cost as whole dollars with thousands
// separators: 1250000 -> "$1,250,000".
func FormatCost(cost float64) string {
	whole := fmt.Sprintf("%.0f", cost)

	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// FormatIssueDate renders an issue date for display. The zero-time sentinel
// from a failed parse shows as a dash rather than year one.
func FormatIssueDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("2006-01-02")
}

// Truncate shortens free text to at most n runes, ellipsized. Descriptions
// in the export run to whole paragraphs; tables want one line.
func Truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if n <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
