package server

import "time"

// Security alert message templates
const (
	SecurityAlertHighRate    = "SECURITY ALERT: Blocking high request rate"
	SecurityAlertInvalidHost = "SECURITY ALERT: Invalid host header"
	SecurityAlertBadPath     = "Rejected unsafe request path"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgPanicRecovered   = "Recovered from handler panic"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderForwardedHost  = "X-Forwarded-Host"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Request limits
const (
	MaxPathLength     = 256
	ReadHeaderTimeout = 5 * time.Second
	WriteTimeout      = 30 * time.Second
	IdleTimeout       = 120 * time.Second
)

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// StaticExtensions are answered with 204 outside the image route so
// crawlers asking for favicons and the like do not hit the resolver.
var StaticExtensions = []string{
	".ico", ".png", ".jpg", ".jpeg", ".gif", ".svg", ".css", ".js", ".txt", ".xml",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
