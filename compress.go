package huffpress

import (
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffpress")

// Stats reports the derived metrics of one compression run.  They are purely
// informational and feed nothing back into the algorithm.
type Stats struct {
	// OriginalSize is the input size in bytes.
	OriginalSize int64

	// CompressedSize is the packed payload size in bytes, header included.
	CompressedSize int64

	// SymbolCount is the total number of symbols in the input.
	SymbolCount uint64
}

// Ratio returns the compression ratio, 1 - compressed/original.
func (st Stats) Ratio() float64 {
	if st.OriginalSize == 0 {
		return 0
	}
	return 1 - float64(st.CompressedSize)/float64(st.OriginalSize)
}

// AvgBitsPerSymbol returns the average number of compressed bits spent per
// input symbol.
func (st Stats) AvgBitsPerSymbol() float64 {
	if st.SymbolCount == 0 {
		return 0
	}
	return 8 * float64(st.CompressedSize) / float64(st.SymbolCount)
}

// OutputPaths derives the artifact paths for a given input path: a ".txt"
// suffix is replaced by "_comp.bin" for the payload and "_freq.txt" for the
// sidecar.  Inputs without the suffix get the same endings appended, so the
// input file is never overwritten.
func OutputPaths(path string) (binPath, freqPath string) {
	base := strings.TrimSuffix(path, ".txt")
	return base + "_comp.bin", base + "_freq.txt"
}

// Compress runs the whole pipeline on one file: frequency analysis, tree
// construction, table derivation, sidecar write, bit packing, payload write.
// Both artifacts land next to the input per OutputPaths.
func Compress(path string) (Stats, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, fmt.Errorf("huffpress: reading %s: %w", path, err)
	}
	text := string(content)

	ft := CountString(text)
	root, err := BuildTree(ft)
	if err != nil {
		return Stats{}, err
	}
	table := BuildTable(root)
	log.Debugf("%s: %d distinct symbols, %d total", path, len(ft), root.Frequency())

	binPath, freqPath := OutputPaths(path)

	f, err := os.Create(freqPath)
	if err != nil {
		return Stats{}, fmt.Errorf("huffpress: creating %s: %w", freqPath, err)
	}
	err = WriteSidecar(f, ft)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Stats{}, fmt.Errorf("huffpress: writing %s: %w", freqPath, err)
	}

	payload, err := Pack(text, table)
	if err != nil {
		return Stats{}, err
	}
	if err := os.WriteFile(binPath, payload, 0666); err != nil {
		return Stats{}, fmt.Errorf("huffpress: writing %s: %w", binPath, err)
	}

	st := Stats{
		OriginalSize:   int64(len(content)),
		CompressedSize: int64(len(payload)),
		SymbolCount:    ft.Total(),
	}
	log.Infof("%s: compression ratio %.2f%%, average %.2f bits per symbol",
		path, 100*st.Ratio(), st.AvgBitsPerSymbol())
	return st, nil
}
