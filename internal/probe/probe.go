package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/yougoldberg/yougoldberg/internal/httpx"
)

// maxDrainBytes bounds how much of a stray response body is read before the
// connection is released.
const maxDrainBytes = 64 << 10

// Prober performs a single presence check and returns the final status code.
type Prober interface {
	Probe(ctx context.Context, url string, timeout time.Duration) (int, error)
}

// TransportError is returned when a probe did not produce an HTTP response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPProber issues HEAD requests through a single client that it owns.
// It is not safe for concurrent use.
type HTTPProber struct {
	client    httpx.Doer
	userAgent string
}

func NewHTTPProber(client httpx.Doer, userAgent string) *HTTPProber {
	if userAgent == "" {
		userAgent = httpx.DefaultUserAgent
	}
	return &HTTPProber{client: client, userAgent: userAgent}
}

// Probe sends a HEAD request to url, following redirects, and returns the
// status code of the final response. Every failure to obtain a response is
// reported as a *TransportError.
func (p *HTTPProber) Probe(ctx context.Context, url string, timeout time.Duration) (int, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := httpx.NewRequest(ctx, http.MethodHead, url, nil, p.userAgent)
	if err != nil {
		return 0, &TransportError{URL: url, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return resp.StatusCode, nil
}

// Classify is the found/not-found rule: a profile exists only when the
// request completed and the final status is exactly 200.
func Classify(succeeded bool, statusCode int) bool {
	return succeeded && statusCode == http.StatusOK
}
