package profile

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

// SteamClient resolves Steam vanity names through the Steam Web API.
type SteamClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSteamClient creates a client for baseURL (e.g. https://api.steampowered.com).
func NewSteamClient(baseURL, apiKey string, timeout time.Duration) *SteamClient {
	return &SteamClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(timeout),
	}
}

type resolveVanityResponse struct {
	Response struct {
		SteamID string `json:"steamid"`
		Success int    `json:"success"`
		Message string `json:"message"`
	} `json:"response"`
}

// ResolveVanity returns the SteamID64 behind a custom profile URL name.
func (c *SteamClient) ResolveVanity(ctx context.Context, vanity string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: steam api key not configured", domain.ErrUpstream)
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("vanityurl", vanity)

	var body resolveVanityResponse
	if err := getJSON(ctx, c.client, c.baseURL+steamResolveVanityPath, q, nil, &body); err != nil {
		return "", err
	}

	if body.Response.Success != steamSuccess {
		return "", fmt.Errorf("%w: vanity %q", domain.ErrProfileNotFound, vanity)
	}
	if !domain.IsSteamID64(body.Response.SteamID) {
		return "", fmt.Errorf("%w: unexpected steam id %q", domain.ErrUpstream, body.Response.SteamID)
	}
	return body.Response.SteamID, nil
}
