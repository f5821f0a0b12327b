package huffpress

import (
	"errors"
	"fmt"
)

// ErrEmptyAlphabet is returned when a Huffman tree is requested for a
// frequency table with zero entries.
var ErrEmptyAlphabet = errors.New("huffpress: empty alphabet, cannot build tree")

// UnknownSymbolError is returned by Pack when the input contains a symbol
// that has no entry in the encoding table.  It indicates an internal
// inconsistency between the frequency analysis and the table derivation.
type UnknownSymbolError struct {
	Sym Symbol
}

func (e UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffpress: symbol %q has no code in the encoding table", rune(e.Sym))
}

// MisalignedError is returned by Pack when the total bit length at
// byte-grouping time is not a multiple of 8.  The padding step makes this
// unreachable, but a misaligned stream must fail rather than corrupt output.
type MisalignedError struct {
	BitLen int
}

func (e MisalignedError) Error() string {
	return fmt.Sprintf("huffpress: bit stream length %d is not a multiple of 8", e.BitLen)
}
