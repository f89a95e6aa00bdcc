package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	pageIndent       = "  "
	progressBarWidth = 20
)

var pageRule = strings.Repeat("─", 54)

// renderPage frames body between two rules under title and lists the page
// hotkeys followed by the global quit key.
func renderPage(title, body, hotKeys string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s%s\n\n", titleStyle.Render(title), pageIndent, pageRule)

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(&b, "%s%s\n", pageIndent, line)
	}

	fmt.Fprintf(&b, "\n%s%s\n", pageIndent, pageRule)
	if strings.TrimSpace(hotKeys) != "" {
		fmt.Fprintf(&b, "%s%s\n", pageIndent, helpStyle.Render(hotKeys))
	}
	b.WriteString(pageIndent + helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// progressBar renders percent (0..100, rounded) as a fixed-width bar.
func progressBar(value float64) string {
	percent := max(0, min(100, int(math.Round(value))))
	filled := percent * progressBarWidth / 100
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", progressBarWidth-filled),
		percent)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText shortens v to limit runes, marking the cut with an ellipsis.
// Task titles may be Arabic, so the cut is rune based.
func fitText(v string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(v) <= limit {
		return v
	}
	runes := []rune(v)
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
