package widget

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ngmaloney/signalk-terminal/internal/ais"
	"github.com/ngmaloney/signalk-terminal/internal/config"
	"github.com/ngmaloney/signalk-terminal/internal/models"
	"github.com/ngmaloney/signalk-terminal/internal/signalk"
	"golang.org/x/sync/errgroup"
)

// source produces one value per widget field
type source interface {
	fetch(ctx context.Context, client signalk.Client) ([]models.Value, error)
	zero() []models.Value
}

// field is one labelled slot of a request's result
type field struct {
	index     int
	key       string
	transform Transform
	args      []int
}

// request is a single GET. Fields that share a path share the request;
// fields with a key read members of the returned JSON object.
type request struct {
	path   string
	fields []field
}

// fieldSource fetches every request and fills fields positionally.
// Any failing request fails the whole cycle.
type fieldSource struct {
	width    int
	parallel bool
	requests []request
}

func newFieldSource(cfg config.WidgetConfig) (*fieldSource, error) {
	src := &fieldSource{
		width:    len(cfg.Fields),
		parallel: cfg.Parallel,
	}

	byPath := make(map[string]int)
	for i, fc := range cfg.Fields {
		f := field{index: i, key: fc.Key, args: fc.Args}
		if fc.Transform != "" {
			t, err := LookupTransform(fc.Transform)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fc.Label, err)
			}
			f.transform = t
		}

		path := cfg.Endpoint + fc.Path
		n, ok := byPath[path]
		if !ok {
			n = len(src.requests)
			byPath[path] = n
			src.requests = append(src.requests, request{path: path})
		}
		src.requests[n].fields = append(src.requests[n].fields, f)
	}

	return src, nil
}

func (s *fieldSource) fetch(ctx context.Context, client signalk.Client) ([]models.Value, error) {
	values := make([]models.Value, s.width)

	if !s.parallel || len(s.requests) == 1 {
		for _, r := range s.requests {
			if err := r.fill(ctx, client, values); err != nil {
				return nil, err
			}
		}
		return values, nil
	}

	// Each request writes disjoint indices of values
	g, gctx := errgroup.WithContext(ctx)
	for _, r := range s.requests {
		g.Go(func() error {
			return r.fill(gctx, client, values)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *fieldSource) zero() []models.Value {
	values := make([]models.Value, s.width)
	for i := range values {
		values[i] = models.Text("")
	}
	return values
}

func (r request) fill(ctx context.Context, client signalk.Client, values []models.Value) error {
	if !r.keyed() {
		text, err := client.FetchText(ctx, r.path)
		if err != nil {
			return err
		}
		for _, f := range r.fields {
			values[f.index] = f.apply(models.Text(text))
		}
		return nil
	}

	var doc map[string]any
	if err := client.FetchJSON(ctx, r.path, &doc); err != nil {
		return err
	}
	for _, f := range r.fields {
		member, ok := doc[f.key]
		if !ok || member == nil {
			return fmt.Errorf("%w: %s: missing %q", signalk.ErrNoValue, r.path, f.key)
		}
		v, err := scalar(member)
		if err != nil {
			return fmt.Errorf("%s: %q: %w", r.path, f.key, err)
		}
		values[f.index] = f.apply(v)
	}
	return nil
}

func (r request) keyed() bool {
	for _, f := range r.fields {
		if f.key != "" {
			return true
		}
	}
	return false
}

func (f field) apply(v models.Value) models.Value {
	if f.transform == nil {
		return v
	}
	return models.Text(f.transform(v.String(), f.args...))
}

func scalar(v any) (models.Value, error) {
	switch x := v.(type) {
	case float64:
		return models.Number(x), nil
	case string:
		return models.Text(x), nil
	case bool:
		return models.Text(strconv.FormatBool(x)), nil
	default:
		return models.Value{}, fmt.Errorf("%w: expected a scalar, got %T", signalk.ErrDecode, v)
	}
}

// nearestSource fetches the vessel registry and resolves the closest contact
// into mmsi, class and distance.
type nearestSource struct {
	path string
}

func (s *nearestSource) fetch(ctx context.Context, client signalk.Client) ([]models.Value, error) {
	registry, err := client.FetchRegistry(ctx, s.path)
	if err != nil {
		return nil, err
	}

	nearest, err := ais.Nearest(registry)
	if err != nil && !errors.Is(err, ais.ErrNoCandidates) && !errors.Is(err, ais.ErrNoSelfPosition) {
		return nil, err
	}

	// No contact is a valid reading: the fields show empty values
	return nearestValues(nearest), nil
}

func (s *nearestSource) zero() []models.Value {
	return nearestValues(models.NearestVessel{})
}

func nearestValues(n models.NearestVessel) []models.Value {
	return []models.Value{
		models.Text(n.MMSI),
		models.Text(n.VesselClass),
		models.Number(n.DistanceMeters),
	}
}
