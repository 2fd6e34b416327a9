package handler

// User-facing messages. These do not expose internal error details; tests
// should reference the constants rather than literal strings.
const (
	ErrMsgInvalidIdentifier  = "invalid format >:("
	ErrMsgInvalidCode        = "invalid crosshair code"
	ErrMsgInvalidImageName   = "invalid crosshair code image cache format"
	ErrMsgProfileNotFound    = "profile not found"
	ErrMsgNoCrosshair        = "no crosshair code on that profile"
	ErrMsgUpstreamFailed     = "profile lookup failed, try again later"
	ErrMsgImageFailed        = "failed to generate image"
	ErrMsgGenericServerError = "something went wwong"
	ErrMsgNotFound           = "not found :p"
	ErrMsgAccessDenied       = "access denied"
	ErrMsgTooManyRequests    = "too many requests, slow down"
	ErrMsgInvalidPath        = "invalid path"
)

// Usage response values
const (
	UsageStatus  = "okak"
	UsageService = "silly cs2 crosshair generator :3c"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMessageNotReady   = "dependency check failed"
)

// Response headers for rendered images
const (
	ContentTypePNG   = "image/png"
	ContentTypeHTML  = "text/html; charset=utf-8"
	ImageCacheHeader = "public, max-age=3600"
)
