package health

import (
	"context"
	"fmt"
	"net/http"
)

// HTTPChecker reports a remote HTTP dependency as up when it answers at all.
// Any status code counts: only transport failures mark it down.
type HTTPChecker struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPChecker creates a checker that issues HEAD requests against url.
func NewHTTPChecker(name, url string, client *http.Client) *HTTPChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPChecker{name: name, url: url, client: client}
}

// Name returns the configured component name.
func (c *HTTPChecker) Name() string {
	return c.name
}

// Check sends a HEAD request to the configured URL.
func (c *HTTPChecker) Check(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return Result{Status: StatusDown, Message: fmt.Sprintf("build request: %v", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	_ = resp.Body.Close()

	return Result{Status: StatusUp}
}
