package domain

import (
	"fmt"
	"strings"
)

// IdentifierKind tells the resolver which lookup chain an identifier needs.
type IdentifierKind int

const (
	KindShareCode IdentifierKind = iota
	KindSteamID
	KindSteamVanity
	KindHandle
)

func (k IdentifierKind) String() string {
	switch k {
	case KindShareCode:
		return "share_code"
	case KindSteamID:
		return "steam_id"
	case KindSteamVanity:
		return "steam_vanity"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Identifier is a classified, user-supplied lookup key.
type Identifier struct {
	Kind  IdentifierKind
	Value string
}

func (i Identifier) String() string {
	return i.Kind.String() + ":" + i.Value
}

// ShapeCheck reports whether s looks like a share code. It is injected so the
// domain package stays free of codec imports.
type ShapeCheck func(s string) bool

// ParseIdentifier classifies raw into an Identifier.
//
//	CSGO-xxxxx-...          share code
//	76561198000000000       SteamID64
//	profiles/7656119...     SteamID64
//	id/<vanity>             Steam vanity name
//	anything else           third-party profile handle
func ParseIdentifier(raw string, maxLen int, isShareCode ShapeCheck) (Identifier, error) {
	// Trailing slashes are dropped only after the path prefixes are matched,
	// so "id/" stays an empty vanity instead of becoming the handle "id".
	raw = strings.TrimLeft(strings.TrimSpace(raw), "/")
	body := strings.TrimRight(raw, "/")
	if maxLen <= 0 {
		maxLen = DefaultMaxIdentifierLength
	}

	if body == "" || len(body) > maxLen || strings.ContainsAny(body, ForbiddenIdentifierChars) {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, body)
	}

	if rest, ok := strings.CutPrefix(raw, ProfilesPathPrefix); ok {
		rest = strings.TrimRight(rest, "/")
		if !IsSteamID64(rest) {
			return Identifier{}, fmt.Errorf("%w: bad steam id %q", ErrInvalidIdentifier, rest)
		}
		return Identifier{Kind: KindSteamID, Value: rest}, nil
	}

	if rest, ok := strings.CutPrefix(raw, VanityPathPrefix); ok {
		rest = strings.TrimRight(rest, "/")
		if rest == "" || strings.Contains(rest, "/") {
			return Identifier{}, fmt.Errorf("%w: bad vanity %q", ErrInvalidIdentifier, rest)
		}
		return Identifier{Kind: KindSteamVanity, Value: rest}, nil
	}

	if isShareCode != nil && isShareCode(body) {
		return Identifier{Kind: KindShareCode, Value: body}, nil
	}

	if IsSteamID64(body) {
		return Identifier{Kind: KindSteamID, Value: body}, nil
	}

	if strings.Contains(body, "/") {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, body)
	}
	return Identifier{Kind: KindHandle, Value: body}, nil
}

// IsSteamID64 matches ^7656119\d{10}$.
func IsSteamID64(s string) bool {
	if len(s) != SteamID64Length || !strings.HasPrefix(s, SteamID64Prefix) {
		return false
	}
	for i := len(SteamID64Prefix); i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
