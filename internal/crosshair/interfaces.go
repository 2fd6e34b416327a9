package crosshair

import (
	"context"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

// Resolution is a resolved identifier: the canonical code and its settings.
type Resolution struct {
	Identifier domain.Identifier        `json:"-"`
	Code       string                   `json:"code"`
	Settings   domain.CrosshairSettings `json:"settings"`
}

// Service resolves identifiers and renders crosshair images.
type Service interface {
	Resolve(ctx context.Context, raw string) (Resolution, error)
	Image(ctx context.Context, code string) ([]byte, error)
	CanvasSize() int
}

// CodeResolver turns a classified identifier into a share code.
type CodeResolver interface {
	Resolve(ctx context.Context, id domain.Identifier) (string, error)
}

// ImageStore caches rendered PNGs by share code.
type ImageStore interface {
	Get(ctx context.Context, code string) ([]byte, bool)
	Put(ctx context.Context, code string, data []byte) error
}
