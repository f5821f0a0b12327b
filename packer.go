package huffpress

import (
	"bytes"

	"github.com/icza/bitio"
)

// Pack encodes the input text into the packed payload format: a single
// header byte holding the padding count, followed by the concatenated
// Huffman codes for every symbol in input order, followed by that many zero
// bits of padding.
//
// The padding count is 8 - bodyBits%8.  When the body is already
// byte-aligned this evaluates to 8, not 0: a full extra byte of zeros is
// appended and the header records 8.  A decoder must treat a header value of
// 8 as "drop the entire trailing byte".
//
func Pack(text string, table Table) ([]byte, error) {
	bitLen := 0
	for _, ch := range text {
		code, ok := table[Symbol(ch)]
		if !ok {
			return nil, UnknownSymbolError{Sym: Symbol(ch)}
		}
		bitLen += code.Len()
	}

	extra := 8 - bitLen%8
	total := 8 + bitLen + extra
	if total%8 != 0 {
		return nil, MisalignedError{BitLen: total}
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := w.WriteByte(byte(extra)); err != nil {
		return nil, err
	}
	for _, ch := range text {
		for _, bit := range table[Symbol(ch)] {
			if err := w.WriteBool(bit == '1'); err != nil {
				return nil, err
			}
		}
	}
	if err := w.WriteBits(0, byte(extra)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
