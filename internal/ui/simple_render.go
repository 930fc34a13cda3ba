package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/signalk-terminal/internal/widget"
)

// RenderSimple renders visible widgets without borders or width constraints.
// Failed widgets carry the reason below their rows.
func RenderSimple(widgets []widget.Snapshot) string {
	var lines []string

	for _, w := range widgets {
		if !w.Visible {
			continue
		}

		title := w.Title
		if w.State == widget.StateFailed {
			title += " (failed)"
		}
		lines = append(lines, title)

		for i, label := range w.Fields {
			value := "-"
			if i < len(w.Values) && !w.LastUpdated.IsZero() && w.Values[i].String() != "" {
				value = w.Values[i].String()
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, value))
		}

		if w.LastErr != nil {
			lines = append(lines, fmt.Sprintf("  error: %v", w.LastErr))
		}
		lines = append(lines, "")
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
