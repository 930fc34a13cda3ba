// Package config describes the dashboard: which SignalK server to poll and the
// declarative list of widgets built at startup.
package config

import "time"

const (
	// DefaultInterval is the delay between the end of one poll cycle and the next
	DefaultInterval = 3 * time.Second
	// DefaultTimeout bounds a single HTTP request
	DefaultTimeout = 10 * time.Second

	// TargetLocal points at a SignalK server on the development machine
	TargetLocal = "local"
	// TargetDemo points at the public SignalK demo server
	TargetDemo = "demo"

	// KindFields widgets read one value per field
	KindFields = "fields"
	// KindNearest widgets resolve the nearest AIS contact from the vessel registry
	KindNearest = "nearest"
)

// Host is a SignalK server address
type Host struct {
	Scheme string `toml:"scheme" yaml:"scheme"`
	Name   string `toml:"name" yaml:"name"`
}

// Targets are the built-in server presets
var Targets = map[string]Host{
	TargetLocal: {Scheme: "https", Name: "localhost:3443"},
	TargetDemo:  {Scheme: "https", Name: "demo.signalk.org"},
}

type Config struct {
	Target      string         `toml:"target" yaml:"target"`
	Host        Host           `toml:"host" yaml:"host"`
	IntervalStr string         `toml:"interval" yaml:"interval"`
	TimeoutStr  string         `toml:"timeout" yaml:"timeout"`
	Widgets     []WidgetConfig `toml:"widgets" yaml:"widgets"`

	Interval time.Duration `toml:"-" yaml:"-"`
	Timeout  time.Duration `toml:"-" yaml:"-"`
}

// ---- WIDGET ----

type WidgetConfig struct {
	ID          string        `toml:"id" yaml:"id"`
	Title       string        `toml:"title" yaml:"title"`
	Kind        string        `toml:"kind" yaml:"kind"`         // "fields" (default) or "nearest"
	Endpoint    string        `toml:"endpoint" yaml:"endpoint"` // relative to the API root
	Parallel    bool          `toml:"parallel" yaml:"parallel"` // fetch field paths concurrently
	Visible     *bool         `toml:"visible" yaml:"visible"`   // nil means visible
	IntervalStr string        `toml:"interval" yaml:"interval"` // overrides Config.Interval
	Fields      []FieldConfig `toml:"fields" yaml:"fields"`

	Interval time.Duration `toml:"-" yaml:"-"`
}

// ---- FIELD ----

type FieldConfig struct {
	Label     string `toml:"label" yaml:"label"`
	Path      string `toml:"path" yaml:"path"`           // relative to the widget endpoint
	Key       string `toml:"key" yaml:"key"`             // member of a JSON object document
	Transform string `toml:"transform" yaml:"transform"` // named transform, e.g. "trim"
	Args      []int  `toml:"args" yaml:"args"`
}

// IsVisible reports whether the widget is shown at startup
func (w WidgetConfig) IsVisible() bool {
	return w.Visible == nil || *w.Visible
}
