// Package fetch provides the timed HTTP GET primitive used by discovery and
// extraction, with a fixed identity header and a per-origin politeness delay.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Error describes a failed page download: a transport error, a timeout, or a
// non-2xx status. All of these are transient from the pipeline's point of
// view and skip only the affected seed or candidate.
type Error struct {
	URL        string
	StatusCode int // zero when the request never completed
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher downloads pages with a shared client, a fixed User-Agent, and a
// minimum delay between consecutive requests to the same host. It is safe
// for concurrent use; workers hitting one origin are serialized by the
// throttle, not by the caller.
type Fetcher struct {
	client    *http.Client
	userAgent string
	delay     time.Duration

	mu   sync.Mutex
	next map[string]time.Time // host -> earliest time the next request may start
}

// New creates a Fetcher with the given per-request timeout and per-origin
// delay.
func New(userAgent string, timeout, delay time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		delay:     delay,
		next:      make(map[string]time.Time),
	}
}

// Get downloads rawURL and returns its body. The per-origin delay is applied
// before the request is issued; context cancellation while waiting or in
// flight is reported as a fetch Error.
func (f *Fetcher) Get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}

	if err := f.wait(ctx, u.Host); err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: rawURL, Err: err}
	}
	return body, nil
}

// wait reserves the next request slot for host and sleeps until it arrives.
// Reserving under the lock keeps concurrent workers a full delay apart even
// when they ask at the same instant.
func (f *Fetcher) wait(ctx context.Context, host string) error {
	f.mu.Lock()
	now := time.Now()
	at := f.next[host]
	if at.Before(now) {
		at = now
	}
	f.next[host] = at.Add(f.delay)
	f.mu.Unlock()

	d := time.Until(at)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
