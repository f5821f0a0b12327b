package huffpress

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// FreqPair associates a Symbol with its number of occurrences in the input.
type FreqPair struct {
	Sym  Symbol
	Freq uint64
}

// FreqTable is an ordered list of (symbol, frequency) pairs, one per distinct
// symbol of the input.  The order is part of the contract: pairs are sorted
// by symbol ascending and then stable-sorted by frequency ascending, and the
// tree builder consumes them in exactly this order.  Reordering a FreqTable
// changes tie-breaking and therefore the emitted bit stream.
type FreqTable []FreqPair

// Count reads the entire input as a stream of runes and returns its
// frequency table.  Empty input yields an empty table.
func Count(r io.Reader) (FreqTable, error) {
	br := bufio.NewReader(r)
	counts := make(map[Symbol]uint64)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("huffpress: reading input: %w", err)
		}
		counts[Symbol(ch)]++
	}
	return tableFromCounts(counts), nil
}

// CountString is a convenience wrapper around Count for in-memory input.
func CountString(s string) FreqTable {
	ft, _ := Count(strings.NewReader(s))
	return ft
}

func tableFromCounts(counts map[Symbol]uint64) FreqTable {
	ft := make(FreqTable, 0, len(counts))
	for sym, freq := range counts {
		ft = append(ft, FreqPair{Sym: sym, Freq: freq})
	}

	// Two-stage sort: symbol ascending first, then a stable re-sort by
	// frequency ascending.  Equal-frequency symbols therefore end up in
	// symbol order, which is what the tree builder's tie-breaking relies on.
	sort.Slice(ft, func(i, j int) bool {
		return ft[i].Sym < ft[j].Sym
	})
	sort.SliceStable(ft, func(i, j int) bool {
		return ft[i].Freq < ft[j].Freq
	})
	return ft
}

// Total returns the summed frequency of all pairs, i.e. the total number of
// symbols in the original input.
func (ft FreqTable) Total() uint64 {
	var total uint64
	for _, pair := range ft {
		total += pair.Freq
	}
	return total
}
