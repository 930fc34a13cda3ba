package config

import (
	"fmt"
	"time"
)

// Transforms lists the transform names a field may reference
var Transforms = map[string]bool{
	"trim": true,
}

// Validate checks configuration correctness.
// It performs declarative validation only and does not mutate cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if cfg.Host.Name == "" {
		if _, ok := Targets[cfg.Target]; !ok {
			return fmt.Errorf("unknown target %q (want %q or %q, or set host.name)", cfg.Target, TargetLocal, TargetDemo)
		}
	}
	if cfg.Host.Scheme != "" && cfg.Host.Scheme != "http" && cfg.Host.Scheme != "https" {
		return fmt.Errorf("host.scheme must be http or https, got %q", cfg.Host.Scheme)
	}

	if err := validateDuration("interval", cfg.IntervalStr); err != nil {
		return err
	}
	if err := validateDuration("timeout", cfg.TimeoutStr); err != nil {
		return err
	}

	if len(cfg.Widgets) == 0 {
		return fmt.Errorf("at least one widget must be configured")
	}

	seen := make(map[string]bool)
	for i, w := range cfg.Widgets {
		if w.ID == "" {
			return fmt.Errorf("widget %d: id required", i)
		}
		if seen[w.ID] {
			return fmt.Errorf("widget %q: duplicate id", w.ID)
		}
		seen[w.ID] = true

		if err := validateDuration(fmt.Sprintf("widget %q: interval", w.ID), w.IntervalStr); err != nil {
			return err
		}
		if len(w.Fields) == 0 {
			return fmt.Errorf("widget %q: at least one field required", w.ID)
		}

		switch w.Kind {
		case "", KindFields:
			keyed := make(map[string]bool)
			for _, f := range w.Fields {
				if f.Key != "" {
					keyed[f.Path] = true
				}
			}
			for j, f := range w.Fields {
				if f.Label == "" {
					return fmt.Errorf("widget %q: field %d: label required", w.ID, j)
				}
				if f.Path == "" && w.Endpoint == "" {
					return fmt.Errorf("widget %q: field %q: path or widget endpoint required", w.ID, f.Label)
				}
				if f.Key == "" && keyed[f.Path] {
					return fmt.Errorf("widget %q: field %q: path %q is read as an object by other fields, key required", w.ID, f.Label, f.Path)
				}
				if f.Transform != "" && !Transforms[f.Transform] {
					return fmt.Errorf("widget %q: field %q: unknown transform %q", w.ID, f.Label, f.Transform)
				}
			}
		case KindNearest:
			if len(w.Fields) != 3 {
				return fmt.Errorf("widget %q: nearest widgets have exactly 3 fields (mmsi, class, distance), got %d", w.ID, len(w.Fields))
			}
			if w.Endpoint == "" {
				return fmt.Errorf("widget %q: endpoint required", w.ID)
			}
		default:
			return fmt.Errorf("widget %q: unknown kind %q", w.ID, w.Kind)
		}
	}

	return nil
}

func validateDuration(name, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if d <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}
