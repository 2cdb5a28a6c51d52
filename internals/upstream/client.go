// file: internals/upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// ErrUpstreamStatus menandai response non-2xx dari backend.
var ErrUpstreamStatus = errors.New("upstream returned non-2xx status")

// Client adalah HTTP client tipis ke backend REST (survey storage, scoring,
// auth decisions). Tidak ada retry otomatis di layer ini — kegagalan
// diserahkan ke controller untuk di-surface ke user (pola toast di UI).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// doJSON kirim request JSON dan decode response JSON.
// out boleh nil untuk endpoint tanpa body yang dipedulikan.
func (c *Client) doJSON(ctx context.Context, method, path, bearer string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := sonic.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[ERROR] upstream %s %s: %v", method, path, err)
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[WARN] upstream %s %s → %d", method, path, resp.StatusCode)
		return resp.StatusCode, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}
	if out != nil && len(raw) > 0 {
		if err := sonic.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
