package dashboard

import (
	"context"
	"log"
	"time"

	"github.com/ngmaloney/signalk-terminal/internal/signalk"
	"github.com/ngmaloney/signalk-terminal/internal/widget"
)

// Scheduler polls one widget forever: a cycle runs to completion, then the
// widget's delay elapses, then the next cycle starts. Cycles never overlap.
type Scheduler struct {
	widget   *widget.Widget
	client   signalk.Client
	observer CycleObserver
}

func NewScheduler(w *widget.Widget, client signalk.Client, observer CycleObserver) *Scheduler {
	return &Scheduler{widget: w, client: client, observer: observer}
}

// Run blocks until ctx is cancelled. Updates are offered to out without
// blocking; a slow reader misses intermediate notifications, not values.
func (s *Scheduler) Run(ctx context.Context, out chan<- Update) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		s.Cycle(ctx, out)
		if ctx.Err() != nil {
			return
		}
		timer.Reset(s.widget.Delay)
	}
}

// Cycle performs a single poll and commits or records the outcome
func (s *Scheduler) Cycle(ctx context.Context, out chan<- Update) error {
	w := s.widget

	prev := w.MarkFetching()
	notify(out, Update{WidgetID: w.ID, State: widget.StateFetching})

	values, err := w.Poll(ctx, s.client)
	if err != nil {
		if ctx.Err() != nil {
			// Shutting down; not a failed reading
			w.Restore(prev)
			return ctx.Err()
		}
		log.Printf("widget refresh failed (widget=%s): %v", w.ID, err)
		w.Fail(err)
	} else {
		w.Apply(values)
	}

	if s.observer != nil {
		s.observer.ObserveCycle(w.ID, err)
	}
	notify(out, Update{WidgetID: w.ID, State: w.State(), Err: err})
	return err
}

func notify(out chan<- Update, u Update) {
	if out == nil {
		return
	}
	select {
	case out <- u:
	default:
	}
}
