// Package memregion provides read-only, bounds-checked access to file bytes
// via memory mapping. A Region never hands out memory beyond its mapped
// length: invalid ranges fail with a bounds error instead of reading adjacent
// memory. Release is explicit; Close unmaps exactly once.
package memregion

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"

	"github.com/bytesift/bytesift/internal/textscan"
	"github.com/bytesift/bytesift/internal/types"
)

// maxMapBytes caps mappings so offsets stay exactly representable in every
// consumer runtime's native number type.
const maxMapBytes = uint64(1) << 53

// Region is a contiguous, immutable byte range backed by a mapped file or an
// in-memory buffer. The mapping is read-only, so concurrent readers need no
// locking as long as the backing file is not modified while the Region is
// open; that external invariant is the caller's responsibility.
type Region struct {
	data   []byte
	mapped bool // data came from mmap and needs munmap
	closed bool
}

// Open maps the file at path read-only. Zero-length files cannot be mapped
// and fail with a map error; callers must special-case empty files.
func Open(path string) (*Region, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, &types.Error{Kind: types.KindNotFound, Path: path, Err: err}
		case errors.Is(err, fs.ErrPermission):
			return nil, &types.Error{Kind: types.KindAccessDenied, Path: path, Err: err}
		default:
			return nil, &types.Error{Kind: types.KindMapFailed, Path: path, Err: err}
		}
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, &types.Error{Kind: types.KindMapFailed, Path: path, Err: err}
	}
	size := st.Size()
	if size == 0 {
		return nil, &types.Error{Kind: types.KindMapFailed, Path: path, Msg: "cannot map empty file"}
	}
	if uint64(size) > maxMapBytes {
		return nil, &types.Error{Kind: types.KindOverflow, Path: path, Msg: "file too large to map"}
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, &types.Error{Kind: types.KindMapFailed, Path: path, Err: err}
	}
	return &Region{data: data, mapped: true}, nil
}

// FromBytes wraps an in-memory buffer in the same bounds-checked API. The
// Region borrows buf; the caller must not mutate it while the Region is open.
func FromBytes(buf []byte) *Region {
	return &Region{data: buf}
}

// Len returns the total length of the region in bytes.
func (r *Region) Len() uint64 { return uint64(len(r.data)) }

// Mapped reports whether the region is still valid for reads.
func (r *Region) Mapped() bool { return !r.closed }

func (r *Region) released() error {
	return &types.Error{Kind: types.KindMapFailed, Msg: "region released"}
}

// Read returns the bytes in [offset, offset+length). The returned slice
// aliases the mapping and is valid only until Close. Ranges beyond the
// region length fail with a bounds error, never a partial result.
func (r *Region) Read(offset, length uint64) ([]byte, error) {
	if r.closed {
		return nil, r.released()
	}
	end := offset + length
	if end < offset || end > uint64(len(r.data)) {
		return nil, &types.Error{
			Kind: types.KindBounds,
			Msg:  fmt.Sprintf("read [%d,%d) beyond length %d", offset, end, len(r.data)),
		}
	}
	return r.data[offset:end], nil
}

// ByteAt returns the byte at offset, or a bounds error.
func (r *Region) ByteAt(offset uint64) (byte, error) {
	if r.closed {
		return 0, r.released()
	}
	if offset >= uint64(len(r.data)) {
		return 0, &types.Error{
			Kind: types.KindBounds,
			Msg:  fmt.Sprintf("offset %d beyond length %d", offset, len(r.data)),
		}
	}
	return r.data[offset], nil
}

// Find returns the start offset of every non-overlapping occurrence of
// pattern, left to right. An empty pattern matches nothing.
func (r *Region) Find(pattern []byte) ([]uint64, error) {
	if r.closed {
		return nil, r.released()
	}
	if len(pattern) == 0 {
		return nil, nil
	}
	var offs []uint64
	start := 0
	for {
		i := bytes.Index(r.data[start:], pattern)
		if i < 0 {
			return offs, nil
		}
		offs = append(offs, uint64(start+i))
		start += i + len(pattern)
	}
}

// CountByte counts occurrences of value in the region.
func (r *Region) CountByte(value byte) (uint64, error) {
	if r.closed {
		return 0, r.released()
	}
	return uint64(bytes.Count(r.data, []byte{value})), nil
}

// TextMetrics scans the full mapping once. Scanning through a Region and
// scanning the same bytes in memory yield identical metrics.
func (r *Region) TextMetrics() (types.TextMetrics, error) {
	if r.closed {
		return types.TextMetrics{}, r.released()
	}
	return textscan.Scan(r.data)
}

// Close releases the mapping. The first call unmaps; later calls are no-ops
// and return nil, so a deferred Close after an explicit one is safe.
func (r *Region) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if !r.mapped {
		r.data = nil
		return nil
	}
	data := r.data
	r.data = nil
	if err := unix.Munmap(data); err != nil {
		return &types.Error{Kind: types.KindMapFailed, Msg: "unmap failed", Err: err}
	}
	return nil
}
