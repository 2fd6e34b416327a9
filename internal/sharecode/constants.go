package sharecode

// Alphabet is the share code symbol set; a symbol's index is its digit value.
const Alphabet = "ABCDEFGHJKLMNOPQRSTUVWXYZabcdefhijkmnopqrstuvwxyz23456789"

// Share code layout
const (
	Prefix      = "CSGO"
	Separator   = '-'
	GroupCount  = 5
	GroupSize   = 5
	SymbolCount = GroupCount * GroupSize
	CodeLength  = len(Prefix) + GroupCount*(GroupSize+1)

	radix = int64(len(Alphabet))
)

// PayloadSize is the decoded payload length in bytes: checksum, version and
// the settings fields.
const PayloadSize = 18

// Fixed-point scales
const (
	tenths = 10
	halves = 2
)

// symbolValue maps a byte to its digit value, or -1.
var symbolValue = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = int8(i)
	}
	return t
}()
