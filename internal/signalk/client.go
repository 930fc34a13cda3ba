// Package signalk fetches vessel telemetry from a SignalK server's REST API
package signalk

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ngmaloney/signalk-terminal/internal/models"
)

// APIRoot is the REST API prefix on every SignalK server
const APIRoot = "/signalk/v1/api/"

var (
	// ErrTransport covers network failures and non-200 responses
	ErrTransport = errors.New("signalk: transport error")
	// ErrDecode covers bodies that are not the expected JSON
	ErrDecode = errors.New("signalk: decode error")
	// ErrNoValue is returned when a path exists but holds null
	ErrNoValue = errors.New("signalk: no value")
)

// Client defines the interface for reading SignalK data
type Client interface {
	// FetchJSON decodes the document at path into out
	FetchJSON(ctx context.Context, path string, out any) error

	// FetchText returns a scalar leaf as display text
	FetchText(ctx context.Context, path string) (string, error)

	// FetchRegistry retrieves and decodes the full vessel registry
	FetchRegistry(ctx context.Context, path string) (models.Registry, error)
}

// Observer is notified after every request completes
type Observer interface {
	ObserveFetch(path string, elapsed time.Duration, err error)
}

// BaseURL builds the API root URL for a host such as "demo.signalk.org"
func BaseURL(scheme, host string) string {
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimSuffix(host, "/") + APIRoot
}

// joinPath appends a relative API path to base
func joinPath(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}
