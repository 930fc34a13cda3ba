// Package widget implements the dashboard's polling units. A Widget owns its
// labels and the last values read from the server; Poll fetches a fresh set
// without touching the widget so a failed cycle keeps the stale values.
package widget

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ngmaloney/signalk-terminal/internal/config"
	"github.com/ngmaloney/signalk-terminal/internal/models"
	"github.com/ngmaloney/signalk-terminal/internal/signalk"
)

type Widget struct {
	ID       string
	Title    string
	Fields   []string
	Endpoint string
	Delay    time.Duration

	source source

	mu          sync.RWMutex
	visible     bool
	values      []models.Value
	state       State
	lastUpdated time.Time
	lastErr     error
}

// Snapshot is a copy of a widget taken for rendering
type Snapshot struct {
	ID          string
	Title       string
	Fields      []string
	Values      []models.Value
	Visible     bool
	State       State
	LastUpdated time.Time
	LastErr     error
}

// New builds a widget from a validated and normalized config entry.
// Values start zeroed, one per field.
func New(cfg config.WidgetConfig) (*Widget, error) {
	w := &Widget{
		ID:       cfg.ID,
		Title:    cfg.Title,
		Endpoint: cfg.Endpoint,
		Delay:    cfg.Interval,
		visible:  cfg.IsVisible(),
	}
	if w.Delay <= 0 {
		w.Delay = config.DefaultInterval
	}
	for _, f := range cfg.Fields {
		w.Fields = append(w.Fields, f.Label)
	}

	switch cfg.Kind {
	case config.KindNearest:
		if len(cfg.Fields) != 3 {
			return nil, fmt.Errorf("widget %q: nearest widgets need 3 fields, got %d", cfg.ID, len(cfg.Fields))
		}
		w.source = &nearestSource{path: cfg.Endpoint}
	case config.KindFields, "":
		src, err := newFieldSource(cfg)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", cfg.ID, err)
		}
		w.source = src
	default:
		return nil, fmt.Errorf("widget %q: unknown kind %q", cfg.ID, cfg.Kind)
	}
	w.values = w.source.zero()

	return w, nil
}

// Poll runs one fetch cycle and returns values aligned with Fields.
// It does not modify the widget.
func (w *Widget) Poll(ctx context.Context, client signalk.Client) ([]models.Value, error) {
	values, err := w.source.fetch(ctx, client)
	if err != nil {
		return nil, err
	}
	if len(values) != len(w.Fields) {
		return nil, fmt.Errorf("widget %q: got %d values for %d fields", w.ID, len(values), len(w.Fields))
	}
	return values, nil
}

// MarkFetching records that a cycle has started and returns the state it
// replaced
func (w *Widget) MarkFetching() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	prev := w.state
	w.state = StateFetching
	return prev
}

// Restore puts back the state of an abandoned cycle
func (w *Widget) Restore(s State) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateFetching {
		w.state = s
	}
}

// Apply commits the values of a successful cycle
func (w *Widget) Apply(values []models.Value) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values = append(w.values[:0:0], values...)
	w.state = StateUpdated
	w.lastUpdated = time.Now()
	w.lastErr = nil
}

// Fail records a failed cycle. Values keep their previous contents.
func (w *Widget) Fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateFailed
	w.lastErr = err
}

// Values returns a copy of the current values
func (w *Widget) Values() []models.Value {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]models.Value(nil), w.values...)
}

func (w *Widget) State() State {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state
}

func (w *Widget) Visible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}

// SetVisible shows or hides the widget. Hidden widgets keep polling.
func (w *Widget) SetVisible(visible bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = visible
}

func (w *Widget) Snapshot() Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return Snapshot{
		ID:          w.ID,
		Title:       w.Title,
		Fields:      w.Fields,
		Values:      append([]models.Value(nil), w.values...),
		Visible:     w.visible,
		State:       w.state,
		LastUpdated: w.lastUpdated,
		LastErr:     w.lastErr,
	}
}
