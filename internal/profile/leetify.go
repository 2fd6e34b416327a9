package profile

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/cs2-crosshair/internal/domain"
	"github.com/osse101/cs2-crosshair/internal/sharecode"
)

// Query selects a stats profile by SteamID64 or by handle. Exactly one
// field is expected to be set; SteamID wins when both are.
type Query struct {
	SteamID string
	Handle  string
}

// LeetifyClient reads crosshair codes from the public stats API.
type LeetifyClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewLeetifyClient creates a client for baseURL.
func NewLeetifyClient(baseURL, apiKey string, timeout time.Duration) *LeetifyClient {
	return &LeetifyClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(timeout),
	}
}

type leetifyProfile struct {
	CrosshairCode string `json:"crosshair_code"`
	Crosshair     *struct {
		ShareCode string `json:"share_code"`
	} `json:"crosshair"`
}

func (p leetifyProfile) code() string {
	if c := strings.TrimSpace(p.CrosshairCode); c != "" {
		return c
	}
	if p.Crosshair != nil {
		return strings.TrimSpace(p.Crosshair.ShareCode)
	}
	return ""
}

// CrosshairCode looks up the profile and returns its crosshair share code.
// A profile without a well-formed code yields domain.ErrNoCrosshair.
func (c *LeetifyClient) CrosshairCode(ctx context.Context, query Query) (string, error) {
	q := url.Values{}
	switch {
	case query.SteamID != "":
		q.Set(leetifySteamIDParam, query.SteamID)
	case query.Handle != "":
		q.Set(leetifyHandleParam, query.Handle)
	default:
		return "", fmt.Errorf("%w: empty profile query", domain.ErrInvalidIdentifier)
	}

	var header http.Header
	if c.apiKey != "" {
		header = http.Header{leetifyAPIKeyHeader: []string{c.apiKey}}
	}

	var body leetifyProfile
	if err := getJSON(ctx, c.client, c.baseURL+leetifyProfilePath, q, header, &body); err != nil {
		return "", err
	}

	code := body.code()
	if code == "" || !sharecode.IsShareCode(code) {
		return "", domain.ErrNoCrosshair
	}
	return code, nil
}
