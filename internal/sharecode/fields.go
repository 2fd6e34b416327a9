package sharecode

// bitField locates a field in the payload. Bits are numbered LSB-first within
// a byte and bytes in payload order, so bit n lives in payload[n/8] at n%8.
type bitField struct {
	offset int
	width  int
}

// Format version 1 layout. Byte 0 is the checksum.
var (
	fVersion          = bitField{8, 8}
	fGap              = bitField{16, 8}
	fOutlineThickness = bitField{24, 8}
	fRed              = bitField{32, 8}
	fGreen            = bitField{40, 8}
	fBlue             = bitField{48, 8}
	fAlpha            = bitField{56, 8}
	fSplitDistance    = bitField{64, 7}
	fFollowRecoil     = bitField{71, 1}
	fFixedGap         = bitField{72, 8}
	fColorPreset      = bitField{80, 3}
	fOutlineEnabled   = bitField{83, 1}
	fInnerSplitAlpha  = bitField{84, 4}
	fOuterSplitAlpha  = bitField{88, 4}
	fSplitSizeRatio   = bitField{92, 4}
	fThickness        = bitField{96, 8}
	fReservedStyleLow = bitField{104, 1}
	fStyle            = bitField{105, 3}
	fCenterDot        = bitField{108, 1}
	fDeployedGap      = bitField{109, 1}
	fAlphaEnabled     = bitField{110, 1}
	fTStyle           = bitField{111, 1}
	fLength           = bitField{112, 13}
	fReservedTail     = bitField{125, 19}
)

// supportedVersions lists the payload layouts this package can read.
var supportedVersions = map[uint8]bool{1: true}

func (f bitField) read(p []byte) uint32 {
	var v uint32
	for i := 0; i < f.width; i++ {
		bit := f.offset + i
		v |= uint32(p[bit/8]>>(bit%8)&1) << i
	}
	return v
}

func (f bitField) write(p []byte, v uint32) {
	for i := 0; i < f.width; i++ {
		bit := f.offset + i
		mask := byte(1) << (bit % 8)
		if v>>i&1 == 1 {
			p[bit/8] |= mask
		} else {
			p[bit/8] &^= mask
		}
	}
}

func (f bitField) readBool(p []byte) bool {
	return f.read(p) == 1
}

func (f bitField) writeBool(p []byte, b bool) {
	if b {
		f.write(p, 1)
		return
	}
	f.write(p, 0)
}

// checksum is the byte sum of everything after the checksum byte, mod 256.
func checksum(p []byte) byte {
	var sum byte
	for _, b := range p[1:] {
		sum += b
	}
	return sum
}
