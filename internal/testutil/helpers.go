package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// JPEGData is a minimal JPEG header, enough for content sniffing
var JPEGData = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}

// NewImageServer serves JPEGData on /cat.jpg and 404 everywhere else.
// The server is closed when the test ends.
func NewImageServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cat.jpg" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(JPEGData)
	}))
	t.Cleanup(srv.Close)

	return srv
}

// NewObservedLogger returns a logger that records entries at debug level and above
func NewObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// AssertLogged checks that a log entry with the given message was recorded
func AssertLogged(t *testing.T, logs *observer.ObservedLogs, message string) {
	t.Helper()

	if logs.FilterMessage(message).Len() == 0 {
		var seen []string
		for _, e := range logs.All() {
			seen = append(seen, e.Message)
		}
		t.Errorf("Expected log entry %q, got: %s", message, strings.Join(seen, ", "))
	}
}

// AssertNotLogged checks that no log entry with the given message was recorded
func AssertNotLogged(t *testing.T, logs *observer.ObservedLogs, message string) {
	t.Helper()

	if n := logs.FilterMessage(message).Len(); n > 0 {
		t.Errorf("Expected no log entry %q, got %d", message, n)
	}
}
