package ui

import (
	"fmt"
	"strings"

	"github.com/ngmaloney/signalk-terminal/internal/widget"
)

// paneWidth is the rendered width of a widget pane including its border
const paneWidth = 36

// renderWidgetPane renders one widget as a bordered pane of label/value rows
func (m Model) renderWidgetPane(index int, w widget.Snapshot, width int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(fmt.Sprintf("%d %s", index+1, w.Title)))
	if marker := m.stateMarker(w); marker != "" {
		content.WriteString(" ")
		content.WriteString(marker)
	}
	content.WriteString("\n\n")

	for i, label := range w.Fields {
		content.WriteString(labelStyle.Render(label + ": "))
		content.WriteString(formatValue(w, i))
		content.WriteString("\n")
	}

	if !w.LastUpdated.IsZero() {
		content.WriteString("\n")
		content.WriteString(mutedStyle.Render("Updated " + w.LastUpdated.Format("15:04:05")))
	}

	style := paneStyle
	if w.State == widget.StateFailed {
		style = failedPaneStyle
	}
	// Border 2 chars, margin 1
	return style.Width(width - 3).Render(strings.TrimRight(content.String(), "\n"))
}

func (m Model) stateMarker(w widget.Snapshot) string {
	switch w.State {
	case widget.StateFetching:
		return m.spinner.View()
	case widget.StateFailed:
		if w.LastUpdated.IsZero() {
			return failedStyle.Render("✗ no data")
		}
		return staleStyle.Render("✗ stale")
	case widget.StateUpdated:
		return successStyle.Render("✓")
	}
	return ""
}

func formatValue(w widget.Snapshot, i int) string {
	if i >= len(w.Values) || w.LastUpdated.IsZero() {
		return mutedStyle.Render("-")
	}
	v := w.Values[i]
	if v.String() == "" {
		return mutedStyle.Render("-")
	}
	return valueStyle.Render(v.String())
}
