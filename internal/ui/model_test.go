package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/signalk-terminal/internal/dashboard"
	"github.com/ngmaloney/signalk-terminal/internal/models"
	"github.com/ngmaloney/signalk-terminal/internal/widget"
)

// mockDashboard serves fixed snapshots
type mockDashboard struct {
	snaps   []widget.Snapshot
	updates chan dashboard.Update
}

func newMockDashboard() *mockDashboard {
	updated := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	return &mockDashboard{
		updates: make(chan dashboard.Update, 1),
		snaps: []widget.Snapshot{
			{
				ID:          "ais",
				Title:       "AIS",
				Fields:      []string{"Target MMSI", "Target Class", "Distance to Target (m)"},
				Values:      []models.Value{models.Text("230000010"), models.Text("B"), models.Number(10)},
				Visible:     true,
				State:       widget.StateUpdated,
				LastUpdated: updated,
			},
			{
				ID:          "depth",
				Title:       "Depth",
				Fields:      []string{"Below Keel (m)"},
				Values:      []models.Value{models.Text("11.845")},
				Visible:     true,
				State:       widget.StateFailed,
				LastUpdated: updated,
				LastErr:     errors.New("signalk: transport error"),
			},
		},
	}
}

func (d *mockDashboard) Snapshots() []widget.Snapshot {
	return append([]widget.Snapshot(nil), d.snaps...)
}

func (d *mockDashboard) Toggle(i int) bool {
	if i < 0 || i >= len(d.snaps) {
		return false
	}
	d.snaps[i].Visible = !d.snaps[i].Visible
	return true
}

func (d *mockDashboard) Updates() <-chan dashboard.Update {
	return d.updates
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := NewModel(newMockDashboard(), "demo.signalk.org")

	if len(m.widgets) != 2 {
		t.Errorf("NewModel() widgets = %d, want 2", len(m.widgets))
	}
	if m.Init() == nil {
		t.Error("Init() should return a command")
	}
}

func TestModel_Update_WindowSize(t *testing.T) {
	m := sized(t, NewModel(newMockDashboard(), "demo.signalk.org"))

	if m.width != 120 {
		t.Errorf("After WindowSizeMsg, width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("After WindowSizeMsg, height = %d, want 40", m.height)
	}
}

func TestModel_CtrlC_Quits(t *testing.T) {
	m := NewModel(newMockDashboard(), "demo.signalk.org")

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("Expected %q to return quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Expected %q to quit", msg.String())
		}
	}
}

func TestModel_ToggleVisibility(t *testing.T) {
	d := newMockDashboard()
	m := sized(t, NewModel(d, "demo.signalk.org"))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = updated.(Model)

	if m.widgets[1].Visible {
		t.Error("key 2 should hide the second widget")
	}
	view := m.View()
	if !strings.Contains(view, "Hidden: 2 Depth") {
		t.Errorf("view should list the hidden widget, got:\n%s", view)
	}

	// Keys past the last widget are ignored
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	m = updated.(Model)
	if !m.widgets[0].Visible {
		t.Error("key 9 should not change other widgets")
	}
}

func TestModel_WidgetUpdateRefreshes(t *testing.T) {
	d := newMockDashboard()
	m := NewModel(d, "demo.signalk.org")

	d.snaps[0].Values[1] = models.Text("A")
	updated, cmd := m.Update(widgetUpdatedMsg{WidgetID: "ais", State: widget.StateUpdated})
	m = updated.(Model)

	if got := m.widgets[0].Values[1].String(); got != "A" {
		t.Errorf("class = %q, want A after update", got)
	}
	if cmd == nil {
		t.Fatal("expected a command waiting for the next update")
	}

	d.updates <- dashboard.Update{WidgetID: "depth", State: widget.StateFetching}
	msg := cmd()
	if u, ok := msg.(widgetUpdatedMsg); !ok || u.WidgetID != "depth" {
		t.Errorf("waitForUpdate() = %#v", msg)
	}
}

func TestModel_UpdatesClosed(t *testing.T) {
	d := newMockDashboard()
	close(d.updates)

	msg := waitForUpdate(d.Updates())()
	if _, ok := msg.(updatesClosedMsg); !ok {
		t.Fatalf("waitForUpdate() on closed channel = %#v", msg)
	}

	m := sized(t, NewModel(d, "demo.signalk.org"))
	updated, _ := m.Update(msg)
	if view := updated.(Model).View(); !strings.Contains(view, "Polling stopped") {
		t.Error("view should report that polling stopped")
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(newMockDashboard(), "demo.signalk.org")
	if m.View() != "Loading..." {
		t.Error("view before the first WindowSizeMsg should be a placeholder")
	}

	view := sized(t, m).View()
	for _, want := range []string{
		"demo.signalk.org",
		"Target MMSI",
		"230000010",
		"Distance to Target (m)",
		"Below Keel (m)",
		"11.845",
		"stale",
		"quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRenderSimple(t *testing.T) {
	snaps := newMockDashboard().Snapshots()
	snaps = append(snaps, widget.Snapshot{
		Title:   "Audio",
		Fields:  []string{"File"},
		Values:  []models.Value{models.Text("")},
		Visible: false,
	}, widget.Snapshot{
		Title:   "Wind",
		Fields:  []string{"Apparent Speed (m/s)"},
		Values:  []models.Value{models.Text("")},
		Visible: true,
	})

	out := RenderSimple(snaps)

	want := []string{
		"AIS",
		"  Target MMSI: 230000010",
		"  Target Class: B",
		"  Distance to Target (m): 10",
		"",
		"Depth (failed)",
		"  Below Keel (m): 11.845",
		"  error: signalk: transport error",
		"",
		"Wind",
		"  Apparent Speed (m/s): -",
	}
	if got := strings.Split(out, "\n"); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("RenderSimple() =\n%s\nwant\n%s", out, strings.Join(want, "\n"))
	}
}
