// Package sharecode converts CS2 crosshair share codes to and from
// domain.CrosshairSettings.
//
// A share code is "CSGO" plus five hyphenated groups of five symbols. The 25
// symbols are base-57 digits, least significant first, of an integer that is
// serialized big-endian into an 18-byte payload:
//
//	byte 0     checksum, sum of bytes 1..17 mod 256
//	byte 1     format version
//	bytes 2-17 settings fields (see fields.go)
//
// Decode and Encode are pure and safe for concurrent use.
package sharecode

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/osse101/cs2-crosshair/internal/domain"
)

// IsShareCode reports whether s has the exact share code shape and alphabet.
// It does not look at the payload.
func IsShareCode(s string) bool {
	if len(s) != CodeLength || !strings.HasPrefix(s, Prefix) {
		return false
	}
	for g := 0; g < GroupCount; g++ {
		start := len(Prefix) + g*(GroupSize+1)
		if s[start] != Separator {
			return false
		}
		for i := start + 1; i <= start+GroupSize; i++ {
			if symbolValue[s[i]] < 0 {
				return false
			}
		}
	}
	return true
}

// Decode parses a share code into crosshair settings.
//
// Errors, in the order they are checked: domain.ErrMalformedCode,
// domain.ErrChecksumMismatch, domain.ErrUnsupportedVersion,
// domain.ErrFieldOutOfRange (as *domain.FieldOutOfRangeError).
func Decode(code string) (domain.CrosshairSettings, error) {
	if !IsShareCode(code) {
		return domain.CrosshairSettings{}, fmt.Errorf("%w: %q", domain.ErrMalformedCode, code)
	}

	p, err := payloadFromCode(code)
	if err != nil {
		return domain.CrosshairSettings{}, err
	}

	if want := checksum(p); p[0] != want {
		return domain.CrosshairSettings{}, fmt.Errorf("%w: got %d, want %d", domain.ErrChecksumMismatch, p[0], want)
	}

	version := uint8(fVersion.read(p))
	if !supportedVersions[version] {
		return domain.CrosshairSettings{}, fmt.Errorf("%w: %d", domain.ErrUnsupportedVersion, version)
	}

	if v := fReservedStyleLow.read(p) | fReservedTail.read(p); v != 0 {
		return domain.CrosshairSettings{}, domain.NewFieldOutOfRange(domain.FieldReserved, float64(v))
	}

	s := domain.CrosshairSettings{
		FormatVersion: version,

		Gap:               float64(int8(fGap.read(p))) / tenths,
		FixedCrosshairGap: float64(int8(fFixedGap.read(p))) / tenths,
		Thickness:         float64(fThickness.read(p)) / tenths,
		Length:            float64(fLength.read(p)) / tenths,

		OutlineEnabled:   fOutlineEnabled.readBool(p),
		OutlineThickness: float64(fOutlineThickness.read(p)) / halves,

		ColorPreset:       domain.ColorPreset(fColorPreset.read(p)),
		Red:               uint8(fRed.read(p)),
		Green:             uint8(fGreen.read(p)),
		Blue:              uint8(fBlue.read(p)),
		Alpha:             uint8(fAlpha.read(p)),
		ColorAlphaEnabled: fAlphaEnabled.readBool(p),

		SplitDistance:   uint8(fSplitDistance.read(p)),
		InnerSplitAlpha: float64(fInnerSplitAlpha.read(p)) / tenths,
		OuterSplitAlpha: float64(fOuterSplitAlpha.read(p)) / tenths,
		SplitSizeRatio:  float64(fSplitSizeRatio.read(p)) / tenths,

		Style:                    domain.CrosshairStyle(fStyle.read(p)),
		CenterDotEnabled:         fCenterDot.readBool(p),
		TStyleEnabled:            fTStyle.readBool(p),
		FollowRecoilEnabled:      fFollowRecoil.readBool(p),
		DeployedWeaponGapEnabled: fDeployedGap.readBool(p),
	}

	if err := s.Validate(); err != nil {
		return domain.CrosshairSettings{}, err
	}
	return s, nil
}

// Encode packs settings into a share code. Settings that fail Validate are
// rejected unchanged.
func Encode(s domain.CrosshairSettings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	p := make([]byte, PayloadSize)
	fVersion.write(p, uint32(s.FormatVersion))

	fGap.write(p, signedFixed(s.Gap, tenths))
	fFixedGap.write(p, signedFixed(s.FixedCrosshairGap, tenths))
	fThickness.write(p, unsignedFixed(s.Thickness, tenths))
	fLength.write(p, unsignedFixed(s.Length, tenths))

	fOutlineEnabled.writeBool(p, s.OutlineEnabled)
	fOutlineThickness.write(p, unsignedFixed(s.OutlineThickness, halves))

	fColorPreset.write(p, uint32(s.ColorPreset))
	fRed.write(p, uint32(s.Red))
	fGreen.write(p, uint32(s.Green))
	fBlue.write(p, uint32(s.Blue))
	fAlpha.write(p, uint32(s.Alpha))
	fAlphaEnabled.writeBool(p, s.ColorAlphaEnabled)

	fSplitDistance.write(p, uint32(s.SplitDistance))
	fInnerSplitAlpha.write(p, unsignedFixed(s.InnerSplitAlpha, tenths))
	fOuterSplitAlpha.write(p, unsignedFixed(s.OuterSplitAlpha, tenths))
	fSplitSizeRatio.write(p, unsignedFixed(s.SplitSizeRatio, tenths))

	fStyle.write(p, uint32(s.Style))
	fCenterDot.writeBool(p, s.CenterDotEnabled)
	fTStyle.writeBool(p, s.TStyleEnabled)
	fFollowRecoil.writeBool(p, s.FollowRecoilEnabled)
	fDeployedGap.writeBool(p, s.DeployedWeaponGapEnabled)

	p[0] = checksum(p)
	return codeFromPayload(p), nil
}

// Normalize decodes and re-encodes code, returning its canonical form.
func Normalize(code string) (string, error) {
	s, err := Decode(code)
	if err != nil {
		return "", err
	}
	return Encode(s)
}

// payloadFromCode turns the 25 symbols into the 18-byte payload. The caller
// has already checked the shape.
func payloadFromCode(code string) ([]byte, error) {
	symbols := strings.ReplaceAll(code[len(Prefix):], string(Separator), "")

	n := new(big.Int)
	base := big.NewInt(radix)
	digit := new(big.Int)
	for i := len(symbols) - 1; i >= 0; i-- {
		n.Mul(n, base)
		n.Add(n, digit.SetInt64(int64(symbolValue[symbols[i]])))
	}

	if n.BitLen() > PayloadSize*8 {
		return nil, fmt.Errorf("%w: payload exceeds %d bytes", domain.ErrMalformedCode, PayloadSize)
	}
	return n.FillBytes(make([]byte, PayloadSize)), nil
}

func codeFromPayload(p []byte) string {
	n := new(big.Int).SetBytes(p)
	base := big.NewInt(radix)
	rem := new(big.Int)

	var b strings.Builder
	b.Grow(CodeLength)
	b.WriteString(Prefix)
	for i := 0; i < SymbolCount; i++ {
		if i%GroupSize == 0 {
			b.WriteByte(Separator)
		}
		n.DivMod(n, base, rem)
		b.WriteByte(Alphabet[rem.Int64()])
	}
	return b.String()
}

func signedFixed(v float64, scale float64) uint32 {
	return uint32(uint8(int8(math.Round(v * scale))))
}

func unsignedFixed(v float64, scale float64) uint32 {
	return uint32(math.Round(v * scale))
}
