package huffpress

import (
	"strconv"
)

// Symbol represents a single symbol of the input alphabet.  Symbols are
// rune-valued: one Symbol per decoded character of the input text.
type Symbol rune

// Escaped returns the printable representation of this Symbol, i.e. the
// standard Go quoted form with the surrounding quote delimiters stripped.
// Control characters render as their two-character escape sequences ("\n",
// "\t", and so on).  The representation is invertible via UnescapeSymbol.
func (s Symbol) Escaped() string {
	quoted := strconv.Quote(string(rune(s)))
	return quoted[1 : len(quoted)-1]
}

// UnescapeSymbol inverts Symbol.Escaped.
func UnescapeSymbol(escaped string) (Symbol, error) {
	unquoted, err := strconv.Unquote(`"` + escaped + `"`)
	if err != nil {
		return 0, err
	}
	runes := []rune(unquoted)
	if len(runes) != 1 {
		return 0, strconv.ErrSyntax
	}
	return Symbol(runes[0]), nil
}
