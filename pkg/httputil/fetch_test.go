package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/orgflow/pkg/cache"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"http://example.com/chart.json", true},
		{"https://example.com/chart.json", true},
		{"chart.json", false},
		{"./charts/acme.json", false},
		{"ftp://example.com/chart.json", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q, want application/json", got)
		}
		w.Write([]byte(`{"version":"1.0"}`))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != `{"version":"1.0"}` {
		t.Errorf("Fetch() = %q, want chart body", data)
	}
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Fetch() error = %v, want ErrNotFound", err)
	}
}

func TestFetchOnceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := fetchOnce(context.Background(), server.Client(), server.URL)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("fetchOnce() error = %v, want ErrNetwork", err)
	}
	if !cache.IsRetryable(err) {
		t.Error("fetchOnce() 5xx error should be retryable")
	}
}

func TestFetchOnceClientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := fetchOnce(context.Background(), server.Client(), server.URL)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("fetchOnce() error = %v, want ErrNetwork", err)
	}
	if cache.IsRetryable(err) {
		t.Error("fetchOnce() 4xx error should not be retryable")
	}
}

func TestFetchOnceConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := fetchOnce(context.Background(), &http.Client{}, server.URL)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("fetchOnce() error = %v, want ErrNetwork", err)
	}
	if !cache.IsRetryable(err) {
		t.Error("fetchOnce() connection error should be retryable")
	}
}
