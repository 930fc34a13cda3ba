package signalk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ngmaloney/signalk-terminal/internal/models"
)

// HTTPClient implements Client over the SignalK REST API
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	observer   Observer
}

// NewClient creates a SignalK client rooted at baseURL (see BaseURL)
func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "SignalKTerminal/1.0 (github.com/ngmaloney/signalk-terminal)",
	}
}

// SetObserver registers an observer for request outcomes
func (c *HTTPClient) SetObserver(o Observer) {
	c.observer = o
}

// BaseURL returns the API root this client talks to
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// FetchJSON decodes the document at path into out
func (c *HTTPClient) FetchJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return nil
}

// FetchText returns a scalar leaf as text. JSON strings are unquoted,
// numbers and booleans keep their literal form.
func (c *HTTPClient) FetchText(ctx context.Context, path string) (string, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return "", err
	}
	return decodeText(path, body)
}

// FetchRegistry retrieves the vessel registry at path (normally "vessels/").
// Records that do not decode are skipped; only a malformed registry fails.
func (c *HTTPClient) FetchRegistry(ctx context.Context, path string) (models.Registry, error) {
	var docs map[string]json.RawMessage
	if err := c.FetchJSON(ctx, path, &docs); err != nil {
		return nil, err
	}
	return buildRegistry(docs), nil
}

func (c *HTTPClient) get(ctx context.Context, path string) (body []byte, err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveFetch(path, time.Since(start), err)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, joinPath(c.baseURL, path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %s: API returned status %d: %s",
			ErrTransport, path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %v", ErrTransport, path, err)
	}
	return body, nil
}

func decodeText(path string, body []byte) (string, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	raw = bytes.TrimSpace(raw)
	switch {
	case bytes.Equal(raw, []byte("null")):
		return "", fmt.Errorf("%w: %s", ErrNoValue, path)
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
		return s, nil
	case raw[0] == '{' || raw[0] == '[':
		return "", fmt.Errorf("%w: %s: expected a scalar value", ErrDecode, path)
	default:
		return string(raw), nil
	}
}
