package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/osse101/cs2-crosshair/internal/handler"
	"github.com/osse101/cs2-crosshair/internal/logger"
	"github.com/osse101/cs2-crosshair/internal/metrics"
)

// RateLimiter counts requests per client IP in fixed windows.
type RateLimiter struct {
	mu               sync.Mutex
	window           time.Duration
	max              int
	requestCountByIP map[string]int
	windowStart      time.Time
	now              func() time.Time
}

// NewRateLimiter allows max requests per IP in each window.
func NewRateLimiter(window time.Duration, max int) *RateLimiter {
	return &RateLimiter{
		window:           window,
		max:              max,
		requestCountByIP: make(map[string]int),
		windowStart:      time.Now(),
		now:              time.Now,
	}
}

// Allow records a request and returns false if the IP is over its limit,
// along with the time left in the current window.
func (l *RateLimiter) Allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.resetIfNeeded()
	l.requestCountByIP[ip]++
	remaining := l.window - l.now().Sub(l.windowStart)

	count := l.requestCountByIP[ip]
	if count > l.max {
		if (count-l.max)%100 == 1 { // Log every 100 requests to avoid log spam
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count", count, "window", l.window)
		}
		return false, remaining
	}
	return true, remaining
}

// resetIfNeeded starts a new window once the current one has passed.
// Caller must hold the mutex.
func (l *RateLimiter) resetIfNeeded() {
	if l.now().Sub(l.windowStart) >= l.window {
		l.requestCountByIP = make(map[string]int)
		l.windowStart = l.now()
	}
}

// RateLimitMiddleware rejects clients over their request budget with 429.
func RateLimitMiddleware(trustedProxies []string, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)

			ok, retry := limiter.Allow(ip)
			if !ok {
				metrics.HTTPRateLimited.Inc()
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(retry.Round(time.Second).Seconds())))
				handler.RespondError(w, http.StatusTooManyRequests, handler.ErrMsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HostValidationMiddleware rejects requests whose Host does not belong to
// this deployment. Requests without a host pass so bare health checks work.
func HostValidationMiddleware(allowed []string, suffixes []string, trustedProxies []string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, h := range allowed {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			set[h] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := requestHost(r, trustedProxies)
			if host == "" {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := set[host]; ok {
				next.ServeHTTP(w, r)
				return
			}
			for _, suffix := range suffixes {
				if suffix != "" && strings.HasSuffix(host, strings.ToLower(suffix)) {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.FromContext(r.Context()).Warn(SecurityAlertInvalidHost,
				"host", host,
				"ip", extractIP(r, trustedProxies))
			handler.RespondError(w, http.StatusForbidden, handler.ErrMsgAccessDenied)
		})
	}
}

// AllowedHosts expands the configured names into the host values a client
// may send: each name bare, with :80 and :443, and with the listen port.
func AllowedHosts(port int, names ...string) []string {
	var hosts []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, rest, ok := strings.Cut(name, "://"); ok {
			name = rest
		}
		name = strings.TrimRight(name, "/")
		if name == "" {
			continue
		}
		if h, _, err := net.SplitHostPort(name); err == nil {
			hosts = append(hosts, name)
			name = h
		}
		hosts = append(hosts, name, name+":80", name+":443", name+":"+strconv.Itoa(port))
	}
	slices.Sort(hosts)
	return slices.Compact(hosts)
}

// requestHost returns the lowercase host the client asked for. The
// forwarded host is only honored from a trusted proxy.
func requestHost(r *http.Request, trustedProxies []string) string {
	host := r.Host
	if isTrustedProxy(r, trustedProxies) {
		if fh := r.Header.Get(HeaderForwardedHost); fh != "" {
			host = fh
		}
	}
	host, _, _ = strings.Cut(host, ",")
	return strings.ToLower(strings.TrimSpace(host))
}

// PathSanitizationMiddleware rejects traversal attempts, backslashes,
// control characters and over-long paths with 400.
func PathSanitizationMiddleware(maxLength int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if reason := unsafePath(r.URL.Path, maxLength); reason != "" {
				logger.FromContext(r.Context()).Warn(SecurityAlertBadPath,
					"reason", reason,
					"path_length", len(r.URL.Path))
				handler.RespondError(w, http.StatusBadRequest, handler.ErrMsgInvalidPath)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unsafePath(p string, maxLength int) string {
	switch {
	case len(p) > maxLength:
		return "too_long"
	case strings.Contains(p, ".."):
		return "traversal"
	case strings.ContainsRune(p, '\\'):
		return "backslash"
	case strings.ContainsFunc(p, unicode.IsControl):
		return "control_character"
	}
	return ""
}

// StaticAssetMiddleware answers 204 for static-looking files outside the
// image route.
func StaticAssetMiddleware(imagePrefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet && !strings.HasPrefix(r.URL.Path, imagePrefix) && isStaticAsset(r.URL.Path) {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isStaticAsset(p string) bool {
	p = strings.ToLower(p)
	for _, ext := range StaticExtensions {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return false
}

func isTrustedProxy(r *http.Request, trustedProxies []string) bool {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}
	return slices.Contains(trustedProxies, remoteIP)
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	// Get remote IP (direct connection)
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// For X-Forwarded-For: client, proxy1, proxy2
			// We want the rightmost IP (the one that connected to our trusted proxy)
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			// Prevent clickjacking
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			// Enable XSS protection (for older browsers)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			// Control referrer information
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
