package handler

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/cs2-crosshair/internal/crosshair"
	"github.com/osse101/cs2-crosshair/internal/domain"
	"github.com/osse101/cs2-crosshair/internal/logger"
	"github.com/osse101/cs2-crosshair/internal/render"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
)

//go:embed templates/embed.html.tmpl
var templateFS embed.FS

var embedTemplate = template.Must(template.ParseFS(templateFS, "templates/embed.html.tmpl"))

// Path prefixes the router hands to the resolve handlers
const (
	PrefixNone     = ""
	PrefixVanity   = domain.VanityPathPrefix
	PrefixProfiles = domain.ProfilesPathPrefix

	imagePath   = "/image/"
	imageSuffix = ".png"
)

// UsageResponse documents the accepted URL shapes.
type UsageResponse struct {
	Status   string   `json:"status"`
	Service  string   `json:"service"`
	Usage    []string `json:"usage"`
	Examples []string `json:"examples"`
}

// NotFoundResponse is returned for unknown routes.
type NotFoundResponse struct {
	Error string   `json:"error"`
	Usage []string `json:"usage"`
}

// CrosshairResponse is the JSON form of a resolved crosshair.
type CrosshairResponse struct {
	Code     string                   `json:"code"`
	Settings domain.CrosshairSettings `json:"settings"`
	ImageURL string                   `json:"image_url"`
}

type embedPage struct {
	Title       string
	Description string
	Code        string
	PageURL     string
	ImageURL    string
	ThemeColor  string
	Size        int
}

var usageExamples = []string{
	"CSGO-O4Jsi-V36wY-rTMGK-9w7qF-jQ8WB",
	"76561198123456789",
	"profiles/76561198123456789",
	"id/exampleuser",
	"ropz",
}

// CrosshairHandler serves the public crosshair routes.
type CrosshairHandler struct {
	service crosshair.Service
	baseURL string
}

// NewCrosshairHandler creates a handler. baseURL is the public origin used
// in usage text and image links; a bare host gets an https scheme.
func NewCrosshairHandler(service crosshair.Service, baseURL string) *CrosshairHandler {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}
	return &CrosshairHandler{service: service, baseURL: baseURL}
}

func (h *CrosshairHandler) usageLines() []string {
	return []string{
		h.baseURL + "/{crosshair-code}",
		h.baseURL + "/{steamid64}",
		h.baseURL + "/profiles/{steamid64}",
		h.baseURL + "/id/{steamvanity}",
		h.baseURL + "/{leetifyvanity}",
	}
}

func (h *CrosshairHandler) imageURL(code string) string {
	return h.baseURL + imagePath + url.PathEscape(code) + imageSuffix
}

// HandleUsage returns the usage document.
func (h *CrosshairHandler) HandleUsage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, UsageResponse{
			Status:   UsageStatus,
			Service:  UsageService,
			Usage:    h.usageLines(),
			Examples: usageExamples,
		})
	}
}

// HandleNotFound returns the 404 body with usage hints.
func (h *CrosshairHandler) HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, NotFoundResponse{
			Error: ErrMsgNotFound,
			Usage: h.usageLines(),
		})
	}
}

// HandleImage serves /image/{file}, where file is <share code>.png.
func (h *CrosshairHandler) HandleImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		file := chi.URLParam(r, "file")
		code, ok := strings.CutSuffix(file, imageSuffix)
		if !ok || !sharecode.IsShareCode(code) {
			log.Debug("Rejected image request", "file", file)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidImageName)
			return
		}

		data, err := h.service.Image(r.Context(), code)
		if err != nil {
			log.Error("Failed to produce image", "code", code, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			if status == http.StatusInternalServerError {
				msg = ErrMsgImageFailed
			}
			respondError(w, status, msg)
			return
		}

		w.Header().Set("Content-Type", ContentTypePNG)
		w.Header().Set("Cache-Control", ImageCacheHeader)
		w.Header().Set("Content-Length", fmt.Sprint(len(data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			log.Warn("Failed to write image", "error", err)
		}
	}
}

// HandleEmbed resolves an identifier and serves an HTML page whose
// OpenGraph and Twitter image tags point at the rendered crosshair.
// prefix is prepended to the {ident} URL parameter.
func (h *CrosshairHandler) HandleEmbed(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := h.resolve(w, r, prefix)
		if !ok {
			return
		}

		c := render.CrosshairColor(res.Settings)
		page := embedPage{
			Title:       "CS2 crosshair " + res.Code,
			Description: describe(res.Settings),
			Code:        res.Code,
			PageURL:     h.baseURL + r.URL.Path,
			ImageURL:    h.imageURL(res.Code),
			ThemeColor:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			Size:        h.service.CanvasSize(),
		}

		buf := getBuffer()
		defer putBuffer(buf)
		if err := embedTemplate.Execute(buf, page); err != nil {
			logger.FromContext(r.Context()).Error("Failed to execute embed template", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		w.Header().Set("Content-Type", ContentTypeHTML)
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

// HandleJSON resolves an identifier and returns its code, settings and
// image URL.
func (h *CrosshairHandler) HandleJSON(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := h.resolve(w, r, prefix)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, CrosshairResponse{
			Code:     res.Code,
			Settings: res.Settings,
			ImageURL: h.imageURL(res.Code),
		})
	}
}

// resolve writes the error response itself and reports false on failure.
func (h *CrosshairHandler) resolve(w http.ResponseWriter, r *http.Request, prefix string) (crosshair.Resolution, bool) {
	ident := chi.URLParam(r, "ident")
	if ident == "" {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIdentifier)
		return crosshair.Resolution{}, false
	}

	res, err := h.service.Resolve(r.Context(), prefix+ident)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		log := logger.FromContext(r.Context())
		if status >= http.StatusInternalServerError {
			log.Error("Failed to resolve crosshair", "identifier", prefix+ident, "error", err)
		} else {
			log.Info("Crosshair lookup rejected", "identifier", prefix+ident, "status", status, "error", err)
		}
		respondError(w, status, msg)
		return crosshair.Resolution{}, false
	}
	return res, true
}

func describe(s domain.CrosshairSettings) string {
	var b strings.Builder
	fmt.Fprintf(&b, "style %s, gap %.1f, length %.1f, thickness %.1f", s.Style, s.Gap, s.Length, s.Thickness)
	if s.CenterDotEnabled {
		b.WriteString(", dot")
	}
	if s.TStyleEnabled {
		b.WriteString(", t-style")
	}
	if s.OutlineEnabled {
		fmt.Fprintf(&b, ", outline %.1f", s.OutlineThickness)
	}
	return b.String()
}
