package config

import "time"

// Normalize fills defaults and parses duration strings.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Host.Name == "" {
		cfg.Host = Targets[cfg.Target]
	}
	if cfg.Host.Scheme == "" {
		cfg.Host.Scheme = "https"
	}

	cfg.Interval = parseOr(cfg.IntervalStr, DefaultInterval)
	cfg.Timeout = parseOr(cfg.TimeoutStr, DefaultTimeout)

	for i := range cfg.Widgets {
		w := &cfg.Widgets[i]
		if w.Kind == "" {
			w.Kind = KindFields
		}
		if w.Title == "" {
			w.Title = w.ID
		}
		w.Interval = parseOr(w.IntervalStr, cfg.Interval)
	}
}

func parseOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
