package textscan

import (
	"bytes"
	"testing"
)

func TestScanEmpty(t *testing.T) {
	m, err := Scan(nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m.Lines != 0 || m.Words != 0 || m.Bytes != 0 {
		t.Fatalf("expected zero metrics, got %+v", m)
	}
}

func TestScanTerminatedLines(t *testing.T) {
	m, err := Scan([]byte("one two\nthree\n"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m.Lines != 2 {
		t.Fatalf("lines = %d, want 2", m.Lines)
	}
	if m.Words != 3 {
		t.Fatalf("words = %d, want 3", m.Words)
	}
	if m.Bytes != 14 {
		t.Fatalf("bytes = %d, want 14", m.Bytes)
	}
}

func TestScanUnterminatedFinalLine(t *testing.T) {
	// the trailing line without '\n' still counts
	m, err := Scan([]byte("one\ntwo"))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m.Lines != 2 {
		t.Fatalf("lines = %d, want 2", m.Lines)
	}
	if m.Words != 2 {
		t.Fatalf("words = %d, want 2", m.Words)
	}
}

func TestScanWhitespaceOnly(t *testing.T) {
	m, err := Scan([]byte("  \t \r "))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m.Words != 0 {
		t.Fatalf("words = %d, want 0", m.Words)
	}
	if m.Lines != 1 {
		t.Fatalf("lines = %d, want 1", m.Lines)
	}
}

func TestScanChunkBoundary(t *testing.T) {
	// a word straddling the 4096-byte chunk boundary must count once
	data := bytes.Repeat([]byte("a"), chunkSize-2)
	data = append(data, []byte(" bridge word\n")...)
	m, err := Scan(data)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m.Words != 3 {
		t.Fatalf("words = %d, want 3", m.Words)
	}
	if m.Lines != 1 {
		t.Fatalf("lines = %d, want 1", m.Lines)
	}
}

func TestScanLargeBufferManyChunks(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 3000; i++ {
		buf.WriteString("alpha beta gamma\n")
	}
	m, err := Scan(buf.Bytes())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if m.Lines != 3000 {
		t.Fatalf("lines = %d, want 3000", m.Lines)
	}
	if m.Words != 9000 {
		t.Fatalf("words = %d, want 9000", m.Words)
	}
	if m.Bytes != uint64(buf.Len()) {
		t.Fatalf("bytes = %d, want %d", m.Bytes, buf.Len())
	}
}
