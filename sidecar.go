package huffpress

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSidecar serializes a frequency table to its recoverable text form:
// the first line is the decimal count of distinct symbols, then one line per
// pair in table order, formatted as "<escaped-symbol> <frequency>".  The
// sidecar is everything a decoder needs to rebuild the exact tree.
func WriteSidecar(w io.Writer, ft FreqTable) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(ft))
	for _, pair := range ft {
		fmt.Fprintf(bw, "%s %d\n", pair.Sym.Escaped(), pair.Freq)
	}
	return bw.Flush()
}

// ReadSidecar parses the format written by WriteSidecar, returning the pairs
// in file order.
//
// The escaped symbol never contains a raw space (space itself escapes to a
// single space character, and every other spacing character escapes to a
// backslash sequence), so the last space on each line always separates
// symbol from frequency.
//
func ReadSidecar(r io.Reader) (FreqTable, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("huffpress: reading sidecar: %w", err)
		}
		return nil, fmt.Errorf("huffpress: sidecar is empty")
	}
	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("huffpress: sidecar symbol count: %w", err)
	}

	ft := make(FreqTable, 0, count)
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("huffpress: reading sidecar: %w", err)
			}
			return nil, fmt.Errorf("huffpress: sidecar truncated: expected %d entries, got %d", count, i)
		}
		line := scanner.Text()
		sep := strings.LastIndexByte(line, ' ')
		if sep < 0 {
			return nil, fmt.Errorf("huffpress: sidecar line %d: no separator in %q", i+2, line)
		}
		sym, err := UnescapeSymbol(line[:sep])
		if err != nil {
			return nil, fmt.Errorf("huffpress: sidecar line %d: bad symbol %q: %w", i+2, line[:sep], err)
		}
		freq, err := strconv.ParseUint(line[sep+1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("huffpress: sidecar line %d: bad frequency: %w", i+2, err)
		}
		ft = append(ft, FreqPair{Sym: sym, Freq: freq})
	}
	return ft, nil
}
