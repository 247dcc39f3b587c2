package core

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytesift/bytesift/internal/types"
)

func TestHandles_AcquireReadRelease(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(p, []byte("hello world\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := AcquireFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := HandleLen(h); err != nil || n != 12 {
		t.Fatalf("HandleLen = %d, %v", n, err)
	}
	if s, err := HandleLenString(h); err != nil || s != "12" {
		t.Fatalf("HandleLenString = %q, %v", s, err)
	}
	got, err := HandleRead(h, 6, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("world")) {
		t.Fatalf("HandleRead = %q", got)
	}
	if b, err := HandleByteAt(h, 0); err != nil || b != 'h' {
		t.Fatalf("HandleByteAt = %q, %v", b, err)
	}
	if err := Release(h); err != nil {
		t.Fatal(err)
	}
}

func TestHandles_OutOfBoundsRead(t *testing.T) {
	h := AcquireBytes([]byte("short"))
	defer func() { _ = Release(h) }()

	_, err := HandleRead(h, 3, 10)
	if types.KindOf(err) != types.KindBounds {
		t.Fatalf("expected bounds kind, got %v", err)
	}
}

func TestHandles_FindCountMetrics(t *testing.T) {
	h := AcquireBytes([]byte("ab ab ab\n"))
	defer func() { _ = Release(h) }()

	offs, err := HandleFind(h, []byte("ab"))
	if err != nil {
		t.Fatal(err)
	}
	if len(offs) != 3 || offs[0] != 0 || offs[1] != 3 || offs[2] != 6 {
		t.Fatalf("HandleFind = %v", offs)
	}
	if n, err := HandleCountByte(h, ' '); err != nil || n != 2 {
		t.Fatalf("HandleCountByte = %d, %v", n, err)
	}
	m, err := HandleMetrics(h)
	if err != nil {
		t.Fatal(err)
	}
	if m.Lines != 1 || m.Words != 3 || m.Bytes != 9 {
		t.Fatalf("HandleMetrics = %+v", m)
	}
}

func TestHandles_DoubleReleaseAndStaleUse(t *testing.T) {
	h := AcquireBytes([]byte("x"))
	if err := Release(h); err != nil {
		t.Fatal(err)
	}
	if err := Release(h); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("expected ErrInvalidHandle on double release, got %v", err)
	}
	if _, err := HandleRead(h, 0, 1); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("expected ErrInvalidHandle on stale read, got %v", err)
	}
}

func TestHandles_NeverReused(t *testing.T) {
	a := AcquireBytes([]byte("one"))
	if err := Release(a); err != nil {
		t.Fatal(err)
	}
	b := AcquireBytes([]byte("two"))
	defer func() { _ = Release(b) }()
	if a == b {
		t.Fatalf("handle %d reused after release", a)
	}
}
