package huffpress

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits as a string of '0' and '1' characters,
// first bit first.  A valid Code is never empty: even a single-symbol
// alphabet assigns a one-bit code.
type Code string

// Len is the number of bits in this Code.
func (c Code) Len() int {
	return len(c)
}

// IsPrefixOf reports whether this Code is a prefix of other.  A prefix-free
// code table has no pair of distinct codes for which this holds.
func (c Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(c))
}

// String returns the quoted string representation of this Code.
func (c Code) String() string {
	return strconv.Quote(string(c))
}

var _ fmt.Stringer = Code("")
