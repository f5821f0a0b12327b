// Package huffpress implements single-pass static Huffman compression for
// text streams.  It analyzes symbol frequencies, builds an optimal
// prefix-free binary code, packs the input into a byte-aligned bit stream
// with a self-describing padding header, and writes a recoverable frequency
// sidecar alongside the compressed payload.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpress
