// Package httputil fetches charts over HTTP so CLI commands can take a
// URL wherever they take a file path. Transient failures (network errors,
// 5xx responses) are retried with [cache.RetryWithBackoff].
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/orgflow/pkg/cache"
)

const requestTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the remote chart doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// IsURL reports whether s looks like an HTTP or HTTPS URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch performs an HTTP GET and returns the response body. Network errors
// and 5xx responses are retried up to three times with exponential backoff;
// a 404 fails immediately with [ErrNotFound].
func Fetch(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: requestTimeout}

	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		var fetchErr error
		data, fetchErr = fetchOnce(ctx, client, url)
		return fetchErr
	})
	return data, err
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
