// Package classify infers file type, MIME type, encoding, binary status and
// source language from a filename and a bounded content sample. Ambiguity
// lowers confidence; it never fails the classification.
package classify

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/bytesift/bytesift/internal/types"
)

// DefaultSampleBytes bounds how much content the classifier inspects.
const DefaultSampleBytes = 8 << 10

const (
	confExtension = 0.9  // extension table hit
	confAgreement = 0.95 // extension and content agree
	confContent   = 0.6  // content signal only, against or without a name
	confFallback  = 0.5  // neither signal
	confLexer     = 0.75 // language recovered by lexer analysis alone
)

// Classify inspects path and sample in decision order: extension table,
// content sniff, generic fallback. Classification with two agreeing signals
// never scores below either signal alone.
func Classify(path string, sample []byte) types.FileClassification {
	if len(sample) > DefaultSampleBytes {
		sample = sample[:DefaultSampleBytes]
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	binContent := looksBinary(sample)

	cls := types.FileClassification{Path: path}
	if info, ok := extTable[ext]; ok {
		cls.FileType = info.FileType
		cls.MimeType = info.Mime
		cls.Language = info.Language
		cls.IsBinary = info.Binary
		switch {
		case len(sample) == 0:
			cls.Confidence = confExtension
		case binContent == info.Binary:
			cls.Confidence = confAgreement
		default:
			// the bytes win over the name; the extension-derived language
			// no longer applies
			cls.IsBinary = binContent
			if binContent {
				cls.Language = ""
				cls.MimeType = "application/octet-stream"
			}
			cls.Confidence = confContent
		}
	} else {
		switch {
		case len(sample) == 0:
			cls.FileType = "Empty"
			cls.MimeType = "text/plain"
			cls.Confidence = confFallback
		case binContent:
			cls.FileType = "Unknown binary"
			cls.MimeType = "application/octet-stream"
			cls.IsBinary = true
			cls.Confidence = confContent
		default:
			cls.FileType = "Plain text"
			cls.MimeType = "text/plain"
			cls.Confidence = confFallback
		}
	}

	cls.Encoding = detectEncoding(sample, cls.IsBinary)
	if !cls.IsBinary && cls.Encoding == "binary" {
		// sample is not valid UTF-8: report the encoding signal and lower
		// confidence rather than failing
		cls.Confidence *= 0.8
	}

	if !cls.IsBinary && cls.Language == "" {
		cls.Language = detectLanguage(path, sample)
		if cls.Language != "" && cls.Confidence < confLexer {
			cls.Confidence = confLexer
		}
	}
	return cls
}

// looksBinary samples up to 1 KiB: a NUL byte or a high proportion of
// non-text bytes marks binary content.
func looksBinary(sample []byte) bool {
	n := len(sample)
	if n == 0 {
		return false
	}
	if n > 1024 {
		n = 1024
	}
	nonPrintable := 0
	for _, b := range sample[:n] {
		if b == 0 {
			return true
		}
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			nonPrintable++
		}
	}
	return nonPrintable > n/20
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func detectEncoding(sample []byte, isBinary bool) string {
	switch {
	case bytes.HasPrefix(sample, bomUTF8):
		return "utf-8-sig"
	case bytes.HasPrefix(sample, bomUTF16LE):
		return "utf-16le"
	case bytes.HasPrefix(sample, bomUTF16BE):
		return "utf-16be"
	}
	if isBinary {
		return "binary"
	}
	if utf8.Valid(sample) {
		return "utf-8"
	}
	return "binary"
}

// detectLanguage falls back to chroma's lexer registry: first by filename,
// then by content analysis, which covers shebang lines.
func detectLanguage(path string, sample []byte) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil && len(sample) > 0 {
		lexer = lexers.Analyse(string(sample))
	}
	if lexer == nil {
		return ""
	}
	name := strings.ToLower(lexer.Config().Name)
	if name == "plaintext" || name == "text" {
		return ""
	}
	return name
}
