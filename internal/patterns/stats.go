package patterns

import (
	"math"
	"unicode/utf8"

	"github.com/bytesift/bytesift/internal/textscan"
	"github.com/bytesift/bytesift/internal/types"
)

// Statistics computes the statistical fingerprint of data. Entropy uses the
// Shannon formula over the byte-value histogram, so a buffer of identical
// bytes scores 0 and uniformly random bytes approach 8 bits per byte.
// Line lengths are byte lengths excluding the '\n' terminator; the average
// is total non-terminator bytes over the line count, 0 when there are no
// lines.
func Statistics(data []byte) types.ContentStatistics {
	st := types.ContentStatistics{
		Characters: uint64(utf8.RuneCount(data)),
		Bytes:      uint64(len(data)),
	}
	if len(data) == 0 {
		return st
	}

	var hist [256]uint64
	for _, b := range data {
		hist[b]++
	}
	var ws uint64
	for _, b := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		ws += hist[b]
	}
	st.WhitespaceRatio = float64(ws) / float64(len(data))
	st.Entropy = histEntropy(hist[:], uint64(len(data)))

	// Scan cannot overflow here: callers bound input well below the cap.
	m, _ := textscan.Scan(data)
	st.Lines, st.Words = m.Lines, m.Words

	var cur, total uint64
	for _, b := range data {
		if b == '\n' {
			total += cur
			if cur > st.MaxLineLength {
				st.MaxLineLength = cur
			}
			cur = 0
			continue
		}
		cur++
	}
	if cur > 0 {
		total += cur
		if cur > st.MaxLineLength {
			st.MaxLineLength = cur
		}
	}
	if st.Lines > 0 {
		st.AvgLineLength = float64(total) / float64(st.Lines)
	}
	return st
}

func histEntropy(hist []uint64, total uint64) float64 {
	if total == 0 {
		return 0
	}
	h := 0.0
	n := float64(total)
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		h -= p * math.Log2(p)
	}
	return h
}
