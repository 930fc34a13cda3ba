package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/signalk-terminal/internal/dashboard"
)

// Message types for async operations

// widgetUpdatedMsg is sent when a widget changes state
type widgetUpdatedMsg dashboard.Update

// updatesClosedMsg is sent when the dashboard stops delivering updates
type updatesClosedMsg struct{}

// waitForUpdate waits for the next widget state change
func waitForUpdate(ch <-chan dashboard.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return updatesClosedMsg{}
		}
		return widgetUpdatedMsg(u)
	}
}
