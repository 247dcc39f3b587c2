// Package textscan counts lines, words and bytes over raw buffers. The scan
// walks fixed-size chunks so the newline count can use batched byte search
// and the word-boundary state machine stays branch-light via a class table.
package textscan

import (
	"bytes"

	"github.com/bytesift/bytesift/internal/types"
)

const chunkSize = 4096

// MaxScanBytes is the largest buffer the scanner accepts. The cap keeps every
// counter exactly representable in consumer runtimes that only have 64-bit
// floats; larger buffers fail with an overflow error instead of wrapping.
const MaxScanBytes = uint64(1) << 53

var newline = []byte{'\n'}

// asciiSpace classifies word-separator bytes. It mirrors unicode.IsSpace for
// the ASCII range, which is the distinction a byte-level scan can make.
var asciiSpace = [256]bool{'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true}

// Scan computes TextMetrics in a single pass. Lines counts '\n' terminators
// plus one for a non-empty buffer that does not end in '\n': a trailing
// unterminated line still counts. Words are maximal runs of non-whitespace
// bytes.
func Scan(data []byte) (types.TextMetrics, error) {
	if uint64(len(data)) > MaxScanBytes {
		return types.TextMetrics{}, &types.Error{Kind: types.KindOverflow, Msg: "buffer exceeds counter range"}
	}
	m := types.TextMetrics{Bytes: uint64(len(data))}
	inWord := false
	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[off:end]
		m.Lines += uint64(bytes.Count(chunk, newline))
		for _, b := range chunk {
			if asciiSpace[b] {
				if inWord {
					m.Words++
					inWord = false
				}
			} else {
				inWord = true
			}
		}
	}
	if inWord {
		m.Words++
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		m.Lines++
	}
	return m, nil
}
