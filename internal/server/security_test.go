package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cs2-crosshair/internal/handler"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(time.Minute, 3)
	h := RateLimitMiddleware(nil, limiter)(okHandler())

	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get(HeaderRetryAfter))
	assert.Contains(t, rec.Body.String(), handler.ErrMsgTooManyRequests)

	// Other clients keep their own budget
	other := httptest.NewRequest("GET", "/test", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(15*time.Minute, 1)
	limiter.now = func() time.Time { return now }
	limiter.windowStart = now

	ok, _ := limiter.Allow("1.1.1.1")
	assert.True(t, ok)
	ok, retry := limiter.Allow("1.1.1.1")
	assert.False(t, ok)
	assert.Equal(t, 15*time.Minute, retry)

	now = now.Add(15 * time.Minute)
	ok, _ = limiter.Allow("1.1.1.1")
	assert.True(t, ok)
}

func TestHostValidationMiddleware(t *testing.T) {
	allowed := AllowedHosts(8080, "https://xhair.example", "localhost")
	h := HostValidationMiddleware(allowed, []string{".up.railway.app"}, []string{"10.0.0.1"})(okHandler())

	tests := []struct {
		name       string
		host       string
		forwarded  string
		remoteAddr string
		want       int
	}{
		{"configured domain", "xhair.example", "", "", http.StatusOK},
		{"domain with https port", "xhair.example:443", "", "", http.StatusOK},
		{"case insensitive", "XHAIR.example", "", "", http.StatusOK},
		{"local dev port", "localhost:8080", "", "", http.StatusOK},
		{"railway suffix", "cs2-crosshair-production.up.railway.app", "", "", http.StatusOK},
		{"empty host", "", "", "", http.StatusOK},
		{"foreign host", "evil.example", "", "", http.StatusForbidden},
		{"foreign port", "xhair.example:9999", "", "", http.StatusForbidden},
		{"forwarded host from trusted proxy", "internal:8080", "xhair.example", "10.0.0.1:5555", http.StatusOK},
		{"forwarded host from untrusted client", "evil.example", "xhair.example", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.Host = tt.host
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedHost, tt.forwarded)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), handler.ErrMsgAccessDenied)
			}
		})
	}
}

func TestAllowedHosts(t *testing.T) {
	hosts := AllowedHosts(3000, "http://localhost:3000/", "")
	assert.ElementsMatch(t, []string{"localhost", "localhost:80", "localhost:443", "localhost:3000"}, hosts)
}

func TestPathSanitizationMiddleware(t *testing.T) {
	h := PathSanitizationMiddleware(64)(okHandler())

	tests := []struct {
		path string
		want int
	}{
		{"/CSGO-O4Jsi-V36wY-rTMGK-9w7qF-jQ8WB", http.StatusOK},
		{"/id/some.user", http.StatusOK},
		{"/image/../../etc/passwd", http.StatusBadRequest},
		{"/id/a\\b", http.StatusBadRequest},
		{"/id/a\x00b", http.StatusBadRequest},
		{"/id/a\tb", http.StatusBadRequest},
		{"/" + strings.Repeat("a", 64), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.URL.Path = tt.path
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestStaticAssetMiddleware(t *testing.T) {
	h := StaticAssetMiddleware("/image/")(okHandler())

	for path, want := range map[string]int{
		"/favicon.ico":        http.StatusNoContent,
		"/robots.txt":         http.StatusNoContent,
		"/apple-touch.PNG":    http.StatusNoContent,
		"/image/CSGO-abc.png": http.StatusOK,
		"/ropz":               http.StatusOK,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		assert.Equal(t, want, rec.Code, path)
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	req.Header.Set(HeaderForwardedFor, "203.0.113.7, 198.51.100.2")

	assert.Equal(t, "10.0.0.1", extractIP(req, nil))
	assert.Equal(t, "198.51.100.2", extractIP(req, []string{"10.0.0.1"}))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	expectedHeaders := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for header, expected := range expectedHeaders {
		assert.Equal(t, expected, rec.Header().Get(header), header)
	}
}
