package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ServeRequest executes the given request against the handler.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus verifies the response status code.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d", want, rr.Code)
	}
}

// DecodeJSON decodes the recorder body into dest, failing the test on error.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// RoundTripFunc adapts a function into an http.RoundTripper.
type RoundTripFunc func(req *http.Request) (*http.Response, error)

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewStubClient returns an http.Client whose transport is fn.
func NewStubClient(fn RoundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

// StubResponse builds an in-memory response with the given status and body.
func StubResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

// RequestLog records requests seen by a stub transport.
type RequestLog struct {
	mu   sync.Mutex
	reqs []*http.Request
}

// Record appends req to the log.
func (l *RequestLog) Record(req *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reqs = append(l.reqs, req)
}

// Count returns how many requests were recorded.
func (l *RequestLog) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.reqs)
}

// Paths returns the URL paths of recorded requests in arrival order.
func (l *RequestLog) Paths() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.reqs))
	for _, r := range l.reqs {
		out = append(out, r.URL.Path)
	}
	return out
}

// Routes maps a URL path to a canned status and body. Unknown paths answer 404.
type Routes map[string]Route

// Route is a canned upstream response.
type Route struct {
	Status int
	Body   string
}

// Client returns an http.Client serving the routes and recording requests into log (which may be nil).
func (r Routes) Client(log *RequestLog) *http.Client {
	return NewStubClient(func(req *http.Request) (*http.Response, error) {
		if log != nil {
			log.Record(req)
		}
		route, ok := r[req.URL.Path]
		if !ok {
			return StubResponse(http.StatusNotFound, `{"error":"not found"}`), nil
		}
		status := route.Status
		if status == 0 {
			status = http.StatusOK
		}
		return StubResponse(status, route.Body), nil
	})
}
