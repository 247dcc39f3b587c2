package core

import (
	"errors"
	"strconv"
	"sync"

	"github.com/bytesift/bytesift/internal/memregion"
)

// ErrInvalidHandle is returned for unknown or already released handles.
var ErrInvalidHandle = errors.New("invalid or released handle")

// The handle registry lets foreign runtimes hold regions as opaque ids
// instead of Go pointers. Handles are never reused within a process, so a
// stale id from a released region fails instead of aliasing a new one.
var (
	handleMu   sync.Mutex
	handleSeq  uint64
	handleRefs = map[uint64]*memregion.Region{}
)

// AcquireFile maps a file and returns an opaque handle for it.
func AcquireFile(path string) (uint64, error) {
	r, err := memregion.Open(path)
	if err != nil {
		return 0, err
	}
	return register(r), nil
}

// AcquireBytes wraps an in-memory buffer in a handle. The buffer must not
// be mutated while the handle is live.
func AcquireBytes(buf []byte) uint64 {
	return register(memregion.FromBytes(buf))
}

func register(r *memregion.Region) uint64 {
	handleMu.Lock()
	defer handleMu.Unlock()
	handleSeq++
	handleRefs[handleSeq] = r
	return handleSeq
}

// Release unmaps the region behind h. Releasing an unknown or already
// released handle is an error, not a no-op.
func Release(h uint64) error {
	handleMu.Lock()
	r, ok := handleRefs[h]
	if ok {
		delete(handleRefs, h)
	}
	handleMu.Unlock()
	if !ok {
		return ErrInvalidHandle
	}
	return r.Close()
}

func lookup(h uint64) (*memregion.Region, error) {
	handleMu.Lock()
	r, ok := handleRefs[h]
	handleMu.Unlock()
	if !ok {
		return nil, ErrInvalidHandle
	}
	return r, nil
}

// HandleLen returns the mapped size of the region behind h.
func HandleLen(h uint64) (uint64, error) {
	r, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return r.Len(), nil
}

// HandleLenString returns the region size as a decimal string for
// runtimes that cannot represent 64-bit integers exactly.
func HandleLenString(h uint64) (string, error) {
	n, err := HandleLen(h)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n, 10), nil
}

// HandleRead copies length bytes starting at offset out of the region.
// The returned slice is owned by the caller.
func HandleRead(h, offset, length uint64) ([]byte, error) {
	r, err := lookup(h)
	if err != nil {
		return nil, err
	}
	view, err := r.Read(offset, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(view))
	copy(out, view)
	return out, nil
}

// HandleByteAt returns the single byte at offset.
func HandleByteAt(h, offset uint64) (byte, error) {
	r, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return r.ByteAt(offset)
}

// HandleFind returns the start offsets of non-overlapping occurrences of
// pattern in the region.
func HandleFind(h uint64, pattern []byte) ([]uint64, error) {
	r, err := lookup(h)
	if err != nil {
		return nil, err
	}
	return r.Find(pattern)
}

// HandleCountByte counts occurrences of value in the region.
func HandleCountByte(h uint64, value byte) (uint64, error) {
	r, err := lookup(h)
	if err != nil {
		return 0, err
	}
	return r.CountByte(value)
}

// HandleMetrics computes text metrics over the full region.
func HandleMetrics(h uint64) (TextMetrics, error) {
	r, err := lookup(h)
	if err != nil {
		return TextMetrics{}, err
	}
	return r.TextMetrics()
}
