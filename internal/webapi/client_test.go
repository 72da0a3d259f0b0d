package webapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

// TestGetJSON_Success tests decoding, query parameters and headers
func TestGetJSON_Success(t *testing.T) {
	var gotQuery url.Values
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotHeader = r.Header.Get("X-Test")
		w.Write([]byte(`{"value": 42}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second, nil)

	params := url.Values{}
	params.Set("units", "metric")
	headers := map[string]string{"X-Test": "yes"}

	var out struct {
		Value int `json:"value"`
	}
	if err := client.GetJSON(params, headers, &out); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if out.Value != 42 {
		t.Errorf("expected 42, got %d", out.Value)
	}
	if gotQuery.Get("units") != "metric" {
		t.Errorf("expected units=metric, got %q", gotQuery.Get("units"))
	}
	if gotHeader != "yes" {
		t.Errorf("expected X-Test header, got %q", gotHeader)
	}
}

// TestGetJSON_StatusError tests that non-2xx responses surface as
// StatusError with the status code
func TestGetJSON_StatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"not found", http.StatusNotFound},
		{"unauthorized", http.StatusUnauthorized},
		{"server error", http.StatusInternalServerError},
		{"too many requests", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			t.Cleanup(srv.Close)

			client := NewClient(srv.URL, time.Second, nil)

			var out map[string]interface{}
			err := client.GetJSON(nil, nil, &out)

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected StatusError, got: %v", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, statusErr.StatusCode)
			}
		})
	}
}

// TestGetJSON_TransportError tests that network failures are not
// StatusErrors
func TestGetJSON_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	client := NewClient(endpoint, time.Second, nil)

	var out map[string]interface{}
	err := client.GetJSON(nil, nil, &out)

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Error("transport failure must not read as a status error")
	}
}

// TestGetJSON_MalformedBody tests decode failures
func TestGetJSON_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": `))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second, nil)

	var out map[string]interface{}
	if err := client.GetJSON(nil, nil, &out); err == nil {
		t.Error("expected decode error, got nil")
	}
}

// TestGetJSON_Timeout tests that the client enforces its bounded timeout
func TestGetJSON_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	client := NewClient(srv.URL, 50*time.Millisecond, nil)

	var out map[string]interface{}
	start := time.Now()
	err := client.GetJSON(nil, nil, &out)

	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("request was not bounded by the timeout, took %v", elapsed)
	}
}
