// Package dashboard runs the widgets: one scheduler goroutine per widget and a
// channel of state changes for the UI.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ngmaloney/signalk-terminal/internal/config"
	"github.com/ngmaloney/signalk-terminal/internal/signalk"
	"github.com/ngmaloney/signalk-terminal/internal/widget"
)

// Update tells the UI that a widget changed state
type Update struct {
	WidgetID string
	State    widget.State
	Err      error
}

// CycleObserver is notified after every completed poll cycle
type CycleObserver interface {
	ObserveCycle(widgetID string, err error)
}

type Controller struct {
	client   signalk.Client
	widgets  []*widget.Widget
	observer CycleObserver
	updates  chan Update

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	stopped bool
}

// New creates a controller for the given widgets
func New(client signalk.Client, widgets []*widget.Widget) *Controller {
	return &Controller{
		client:  client,
		widgets: widgets,
		// Room for a fetching and a result notification per widget
		updates: make(chan Update, 2*len(widgets)+1),
	}
}

// FromConfig builds every configured widget. cfg must be validated and normalized.
func FromConfig(cfg *config.Config, client signalk.Client) (*Controller, error) {
	widgets := make([]*widget.Widget, 0, len(cfg.Widgets))
	for _, wc := range cfg.Widgets {
		w, err := widget.New(wc)
		if err != nil {
			return nil, err
		}
		widgets = append(widgets, w)
	}
	return New(client, widgets), nil
}

// SetObserver registers an observer for cycle outcomes. Call before Start.
func (c *Controller) SetObserver(o CycleObserver) {
	c.observer = o
}

// Widgets returns the widgets in display order
func (c *Controller) Widgets() []*widget.Widget {
	return c.widgets
}

// Updates delivers state changes while the controller runs. It is closed by Stop.
func (c *Controller) Updates() <-chan Update {
	return c.updates
}

// Snapshots copies every widget for rendering
func (c *Controller) Snapshots() []widget.Snapshot {
	snaps := make([]widget.Snapshot, len(c.widgets))
	for i, w := range c.widgets {
		snaps[i] = w.Snapshot()
	}
	return snaps
}

// Toggle flips the visibility of the widget at index i
func (c *Controller) Toggle(i int) bool {
	if i < 0 || i >= len(c.widgets) {
		return false
	}
	w := c.widgets[i]
	w.SetVisible(!w.Visible())
	return true
}

// Start launches one scheduler per widget
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return errors.New("dashboard already running")
	}
	if c.stopped {
		return errors.New("dashboard stopped")
	}

	ctx, c.cancel = context.WithCancel(ctx)
	c.running = true

	for _, w := range c.widgets {
		s := NewScheduler(w, c.client, c.observer)
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			s.Run(ctx, c.updates)
		}()
	}
	return nil
}

// Stop cancels every scheduler, waits for in-flight cycles to return and
// closes Updates. A stopped controller cannot be restarted.
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.cancel()
	c.running = false
	c.stopped = true
	c.mu.Unlock()

	c.wg.Wait()
	close(c.updates)
}

// RunOnce runs a single cycle of every widget concurrently and waits for all
// of them. Failed widgets are reported together.
func (c *Controller) RunOnce(ctx context.Context) error {
	var (
		mu     sync.Mutex
		failed []error
	)

	var wg sync.WaitGroup
	for _, w := range c.widgets {
		s := NewScheduler(w, c.client, c.observer)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Cycle(ctx, nil); err != nil {
				mu.Lock()
				failed = append(failed, fmt.Errorf("%s: %w", w.ID, err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errors.Join(failed...)
}
