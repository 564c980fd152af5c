// Package testutil provides testing utilities for the SharePoint client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockSharePoint is a configurable mock SharePoint REST server for testing.
type MockSharePoint struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
}

// NewMockSharePoint creates a new mock server. Paths without a registered
// handler answer an empty item page.
func NewMockSharePoint() *MockSharePoint {
	mock := &MockSharePoint{
		handlers: make(map[string]http.HandlerFunc),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockSharePoint) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockSharePoint) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockSharePoint) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockSharePoint) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// defaultHandler answers any unregistered path with an empty item page.
func (m *MockSharePoint) defaultHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json;odata=nometadata")
	fmt.Fprint(w, `{"value":[]}`)
}

// JSONHandler returns a handler serving a fixed status and JSON body.
func JSONHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json;odata=nometadata")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

// ItemsPage builds a response body with the given raw item objects and an
// optional continuation link under linkField.
func ItemsPage(items []string, linkField, nextLink string) string {
	body := `{"value":[`
	for i, item := range items {
		if i > 0 {
			body += ","
		}
		body += item
	}
	body += `]`
	if nextLink != "" {
		body += fmt.Sprintf(`,%q:%q`, linkField, nextLink)
	}
	return body + `}`
}
