package classify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPythonScript(t *testing.T) {
	cls := Classify("script.py", []byte("#!/usr/bin/env python3\nprint('hi')\n"))
	assert.Equal(t, "python", cls.Language)
	assert.False(t, cls.IsBinary)
	assert.Equal(t, "utf-8", cls.Encoding)

	baseline := Classify("mystery.qqq", []byte("some plain words\n"))
	assert.Greater(t, cls.Confidence, baseline.Confidence,
		"known extension with agreeing content must beat the unknown baseline")
}

func TestClassifyNullByteIsBinary(t *testing.T) {
	cls := Classify("data.txt", []byte("printable ascii\x00more text"))
	require.True(t, cls.IsBinary)
	assert.Empty(t, cls.Language)
	assert.Equal(t, "binary", cls.Encoding)
}

func TestClassifyAgreementIsMonotonic(t *testing.T) {
	content := []byte("package main\n\nfunc main() {}\n")
	both := Classify("main.go", content)
	nameOnly := Classify("main.go", nil)
	contentOnly := Classify("noext", content)

	assert.GreaterOrEqual(t, both.Confidence, nameOnly.Confidence)
	assert.GreaterOrEqual(t, both.Confidence, contentOnly.Confidence)
	assert.Equal(t, "go", both.Language)
}

func TestClassifyUnknownExtensionFallback(t *testing.T) {
	cls := Classify("blob.zzz", []byte{0x7F, 0x45, 0x4C, 0x46, 0x02, 0x01, 0x01, 0x00, 0x00, 0x00})
	assert.True(t, cls.IsBinary)
	assert.Equal(t, "Unknown binary", cls.FileType)
	assert.Equal(t, "application/octet-stream", cls.MimeType)
}

func TestClassifyEmptySample(t *testing.T) {
	cls := Classify("notes.md", nil)
	assert.Equal(t, "Markdown", cls.FileType)
	assert.False(t, cls.IsBinary)

	unknown := Classify("nothing", nil)
	assert.Equal(t, "Empty", unknown.FileType)
}

func TestClassifyBOMEncodings(t *testing.T) {
	cases := map[string][]byte{
		"utf-8-sig": append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...),
		"utf-16le":  {0xFF, 0xFE, 'h', 0x00, 'i', 0x00},
		"utf-16be":  {0xFE, 0xFF, 0x00, 'h', 0x00, 'i'},
	}
	for want, sample := range cases {
		cls := Classify("doc.txt", sample)
		assert.Equal(t, want, cls.Encoding)
	}
}

func TestClassifyInvalidUTF8LowersConfidence(t *testing.T) {
	valid := Classify("a.txt", []byte("plain text"))
	invalid := Classify("a.txt", []byte{'p', 'l', 0xFF, 0xFE, 0xFD, 'x', 't', ' ', 'y'})
	// no BOM, not binary enough to sniff, just malformed: a signal, not an error
	if !invalid.IsBinary {
		assert.Less(t, invalid.Confidence, valid.Confidence)
	}
}

func TestClassifyShebangWithoutExtension(t *testing.T) {
	cls := Classify("deploy", []byte("#!/bin/bash\necho hi\n"))
	require.False(t, cls.IsBinary)
	assert.Contains(t, cls.Language, "bash")
}

func TestClassifySampleCap(t *testing.T) {
	// NUL beyond the sample cap must not flip the verdict
	sample := append(bytes.Repeat([]byte{'a'}, DefaultSampleBytes), 0x00)
	cls := Classify("big.txt", sample)
	assert.False(t, cls.IsBinary)
}
