package server

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/osse101/cs2-crosshair/internal/config"
	"github.com/osse101/cs2-crosshair/internal/crosshair"
	"github.com/osse101/cs2-crosshair/internal/handler"
	"github.com/osse101/cs2-crosshair/internal/logger"
	"github.com/osse101/cs2-crosshair/internal/metrics"
)

const imageRoutePrefix = "/image/"

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. checkers gate /readyz.
func NewServer(cfg *config.Config, service crosshair.Service, checkers ...handler.HealthChecker) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(HostValidationMiddleware(AllowedHosts(cfg.Port, cfg.Domain, cfg.Host), cfg.AllowedHostSuffixes, cfg.TrustedProxies))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)))
	r.Use(PathSanitizationMiddleware(MaxPathLength))
	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}).Handler)
	r.Use(StaticAssetMiddleware(imageRoutePrefix))

	// Health check routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(checkers...))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	h := handler.NewCrosshairHandler(service, cfg.Domain)
	usage := h.HandleUsage()

	r.Get("/", usage)
	r.Get(imageRoutePrefix+"{file}", h.HandleImage())

	// Bare prefixes document the URL shapes instead of resolving anything
	for _, p := range []string{"/id", "/profiles", "/c", "/c/id", "/c/profiles"} {
		r.Get(p, usage)
		r.Get(p+"/", usage)
	}

	r.Get("/id/{ident}", h.HandleEmbed(handler.PrefixVanity))
	r.Get("/profiles/{ident}", h.HandleEmbed(handler.PrefixProfiles))
	r.Get("/c/id/{ident}", h.HandleJSON(handler.PrefixVanity))
	r.Get("/c/profiles/{ident}", h.HandleJSON(handler.PrefixProfiles))
	r.Get("/c/{ident}", h.HandleJSON(handler.PrefixNone))
	r.Get("/{ident}", h.HandleEmbed(handler.PrefixNone))

	r.NotFound(h.HandleNotFound())
	r.MethodNotAllowed(h.HandleNotFound())

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddr(),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// recoverMiddleware turns a handler panic into a logged 500.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.FromContext(r.Context()).Error(LogMsgPanicRecovered,
				"panic", rec,
				"path", r.URL.Path,
				"stack", string(debug.Stack()))
			handler.RespondError(w, http.StatusInternalServerError, handler.ErrMsgGenericServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
