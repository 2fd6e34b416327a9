package domain

// Share code format version understood by this build
const CurrentFormatVersion uint8 = 1

// Field names reported by FieldOutOfRangeError
const (
	FieldGap               = "gap"
	FieldFixedCrosshairGap = "fixed_crosshair_gap"
	FieldOutlineThickness  = "outline_thickness"
	FieldThickness         = "thickness"
	FieldLength            = "length"
	FieldInnerSplitAlpha   = "inner_split_alpha"
	FieldOuterSplitAlpha   = "outer_split_alpha"
	FieldSplitSizeRatio    = "split_size_ratio"
	FieldSplitDistance     = "split_distance"
	FieldColorPreset       = "color_preset"
	FieldStyle             = "style"
	FieldReserved          = "reserved"
)

// Documented field ranges (scaled values)
const (
	GapMin              = -12.8
	GapMax              = 12.7
	OutlineThicknessMax = 3.0
	ThicknessMax        = 6.0
	LengthMax           = 100.0
	SplitDistanceMax    = 127
)

// Identifier limits and patterns
const (
	DefaultMaxIdentifierLength = 45
	SteamID64Prefix            = "7656119"
	SteamID64Length            = 17
	ProfilesPathPrefix         = "profiles/"
	VanityPathPrefix           = "id/"
	ForbiddenIdentifierChars   = `<>"'&`
)
