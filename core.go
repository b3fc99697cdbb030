// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"fmt"
	"sync/atomic"
)

// storage is the bigstring: a fixed, non-moving byte array that may be
// shared by several handles (via SubShared or SetBoundsAndBuffer). It is
// released back to its origin (a tiered BoundedPool, or nothing) when the
// last handle referencing it is dropped.
type storage struct {
	_ noCopy

	b       []byte
	refs    atomic.Int32
	release func([]byte)
}

func newStorage(b []byte, release func([]byte)) *storage {
	s := &storage{b: b, release: release}
	s.refs.Store(1)
	return s
}

func (s *storage) retain() { s.refs.Add(1) }

// Release drops one reference. When the last reference goes away and the
// storage came from a pool, the backing array is returned to that pool.
// Calling Release more times than the storage has live handles is a
// programmer error and is not defended against, matching the rest of the
// package's treatment of bounds and ownership violations.
func (s *storage) Release() {
	if s.refs.Add(-1) == 0 && s.release != nil {
		s.release(s.b)
		s.release = nil
	}
}

// core is the mutable 5-tuple (buf, lo_min, lo, hi, hi_max) shared by every
// capability-typed handle over the same window. Capability is a purely
// static (phantom) property of which wrapper type holds the *core; core
// itself never checks permissions.
type core struct {
	buf          *storage
	loMin, lo, hi, hiMax int
}

func (c *core) capacity() int { return c.hiMax - c.loMin }
func (c *core) length() int   { return c.hi - c.lo }

// Four capability-typed handles over the same underlying core, per the
// spec's two independent axes (data permission, seek permission). Each
// wraps a *core; none adds runtime state of its own, so converting between
// them (in the allowed, weakening direction) is free.
type (
	// T is the strongest handle: read_write data permission, seek
	// permission. Every constructor returns a T; everything else is
	// reached by a weakening coercion from it.
	T struct{ c *core }

	// ReadSeek holds read-only data permission with seek permission. It
	// may reposition the window and limits but never mutate bytes.
	ReadSeek struct{ c *core }

	// ReadWriteNoSeek holds read_write data permission without seek
	// permission. It may mutate bytes within the current window but
	// never move lo, hi, lo_min, or hi_max.
	ReadWriteNoSeek struct{ c *core }

	// ReadNoSeek is the weakest handle: read-only, no seek. This is the
	// shape typically handed to a sub-parser that must not be able to
	// widen its own view or move the parent's cursor.
	ReadNoSeek struct{ c *core }
)

// iocore exposes the shared *core to package-internal accessor code. It is
// unexported so no type outside this package can satisfy Reader/Writer/
// Seeker — capabilities are sealed to the handle types above.
type iocore interface {
	iocore() *core
}

func (t T) iocore() *core               { return t.c }
func (t ReadSeek) iocore() *core        { return t.c }
func (t ReadWriteNoSeek) iocore() *core { return t.c }
func (t ReadNoSeek) iocore() *core      { return t.c }

// seekMarker is implemented only by handles carrying seek permission.
type seekMarker interface{ seekMarker() }

func (t T) seekMarker()        {}
func (t ReadSeek) seekMarker() {}

// writeMarker is implemented only by handles carrying read_write data
// permission.
type writeMarker interface{ writeMarker() }

func (t T) writeMarker()               {}
func (t ReadWriteNoSeek) writeMarker() {}

// Reader is any handle with read data permission, regardless of seek
// permission. Peek operates on a Reader.
type Reader interface {
	iocore
}

// Writer is any handle with read_write data permission, regardless of
// seek permission. Poke operates on a Writer.
type Writer interface {
	iocore
	writeMarker
}

// Seeker is any handle with seek permission, regardless of data
// permission. Bound mutators that only reposition (not mutate bytes) —
// Advance, Resize, Rewind, flips, narrows — operate on a Seeker.
type Seeker interface {
	iocore
	seekMarker
}

// WriteSeeker is the strongest capability pairing: read_write and seek.
// Fill and Compact, which both mutate bytes and move the cursor, operate
// on a WriteSeeker. Only T satisfies this in practice.
type WriteSeeker interface {
	Writer
	seekMarker
}

// ReadOnly performs the free, zero-cost coercion from T to ReadSeek,
// discarding write permission. The inverse is intentionally not provided.
func (t T) ReadOnly() ReadSeek { return ReadSeek{t.c} }

// NoSeek performs the free coercion from T to ReadWriteNoSeek, discarding
// seek permission.
func (t T) NoSeek() ReadWriteNoSeek { return ReadWriteNoSeek{t.c} }

// ReadOnlyNoSeek discards both write and seek permission in one step,
// producing the weakest handle shape.
func (t T) ReadOnlyNoSeek() ReadNoSeek { return ReadNoSeek{t.c} }

// NoSeek discards seek permission from a ReadSeek handle.
func (t ReadSeek) NoSeek() ReadNoSeek { return ReadNoSeek{t.c} }

// ReadOnly discards write permission from a ReadWriteNoSeek handle.
func (t ReadWriteNoSeek) ReadOnly() ReadNoSeek { return ReadNoSeek{t.c} }

func boundsErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrOutOfBounds}, args...)...)
}

// Create allocates a fresh bigstring of len bytes. buf has size len,
// lo_min = lo = 0, hi = hi_max = len.
func Create(length int) T {
	if length < 0 {
		panic(boundsErrorf("create: negative length %d", length))
	}
	return T{&core{buf: newStorage(make([]byte, length), nil), loMin: 0, lo: 0, hi: length, hiMax: length}}
}

// OfBigstring adopts (without copying) the subrange [pos, pos+len) of an
// existing byte slice. Both window and limits are set to that subrange.
//
// The spec's provenance check ("reject read_write access when the
// bigstring's provenance would allow aliasing into an immutable view") has
// no referent in Go: there is no separate immutable-string type here, so
// any []byte the caller hands in is, by definition, one they are willing
// to let this handle mutate. Callers that must not allow mutation should
// keep only a ReadSeek/ReadNoSeek handle (via ReadOnly/ReadOnlyNoSeek).
func OfBigstring(buf []byte, pos, length int) T {
	if pos < 0 || length < 0 || pos+length > len(buf) {
		panic(boundsErrorf("of_bigstring: range [%d,%d) outside buffer of length %d", pos, pos+length, len(buf)))
	}
	sub := buf[pos : pos+length : pos+length]
	return T{&core{buf: newStorage(sub, nil), loMin: 0, lo: 0, hi: length, hiMax: length}}
}

// OfString allocates a fresh iobuf with contents byte-identical to s.
func OfString(s string) T {
	b := make([]byte, len(s))
	copy(b, s)
	return T{&core{buf: newStorage(b, nil), loMin: 0, lo: 0, hi: len(b), hiMax: len(b)}}
}

func subCore(parent *core, pos, length int) *core {
	if pos < 0 || length < 0 {
		panic(boundsErrorf("sub_shared: negative pos=%d len=%d", pos, length))
	}
	lo := parent.lo + pos
	hi := lo + length
	if hi > parent.hi {
		panic(boundsErrorf("sub_shared: range [%d,%d) outside window [%d,%d)", lo, hi, parent.lo, parent.hi))
	}
	parent.buf.retain()
	return &core{buf: parent.buf, loMin: lo, lo: lo, hi: hi, hiMax: hi}
}

// SubShared returns a new, independent seekable handle over the same
// bigstring as t, with window and limits set to [lo(t)+pos, lo(t)+pos+len).
// Data permission is inherited from t; seek permission is granted freely,
// as the spec allows.
func (t T) SubShared(pos, length int) T { return T{subCore(t.c, pos, length)} }

// SubSharedNoSeek is SubShared but the returned handle carries no seek
// permission — the shape to hand to a sub-parser that must not be able to
// move its own window.
func (t T) SubSharedNoSeek(pos, length int) ReadWriteNoSeek {
	return ReadWriteNoSeek{subCore(t.c, pos, length)}
}

// SubShared is SubShared, preserving t's read-only data permission.
func (t ReadSeek) SubShared(pos, length int) ReadSeek { return ReadSeek{subCore(t.c, pos, length)} }

// SubSharedNoSeek is SubShared without seek permission.
func (t ReadSeek) SubSharedNoSeek(pos, length int) ReadNoSeek {
	return ReadNoSeek{subCore(t.c, pos, length)}
}

// SubShared is SubShared; seek permission may be freely granted even
// though the receiver itself lacks it, because the sub-view is a wholly
// independent iobuf value over the same bigstring.
func (t ReadWriteNoSeek) SubShared(pos, length int) T { return T{subCore(t.c, pos, length)} }

// SubSharedNoSeek is SubShared, keeping the receiver's lack of seek
// permission.
func (t ReadWriteNoSeek) SubSharedNoSeek(pos, length int) ReadWriteNoSeek {
	return ReadWriteNoSeek{subCore(t.c, pos, length)}
}

// SubShared is SubShared, upgrading to seek permission on the new handle.
func (t ReadNoSeek) SubShared(pos, length int) ReadSeek { return ReadSeek{subCore(t.c, pos, length)} }

// SubSharedNoSeek is SubShared, preserving the lack of seek permission.
func (t ReadNoSeek) SubSharedNoSeek(pos, length int) ReadNoSeek {
	return ReadNoSeek{subCore(t.c, pos, length)}
}

// setBoundsAndBuffer overwrites dst's buf and all four indices with src's.
// Both src and dst must carry write permission — this is what prevents
// laundering a read-only view into a read_write one.
func setBoundsAndBuffer(src *core, dst *core) {
	src.buf.retain()
	dst.buf.Release()
	dst.buf, dst.loMin, dst.lo, dst.hi, dst.hiMax = src.buf, src.loMin, src.lo, src.hi, src.hiMax
}

// SetBoundsAndBuffer overwrites dst's buf and all four indices with those
// from src, creating an explicit alias. Both handles must carry write
// permission; src need not carry seek permission.
func SetBoundsAndBuffer(src Writer, dst T) {
	setBoundsAndBuffer(src.iocore(), dst.c)
}

// SetBoundsAndBufferSub is SetBoundsAndBuffer followed by narrowing dst to
// [pos, pos+len), performed without allocating an intermediate sub-view.
func SetBoundsAndBufferSub(src Writer, dst T, pos, length int) {
	s := src.iocore()
	if pos < 0 || length < 0 || s.lo+pos+length > s.hi {
		panic(boundsErrorf("set_bounds_and_buffer_sub: range [%d,%d) outside window", s.lo+pos, s.lo+pos+length))
	}
	setBoundsAndBuffer(s, dst.c)
	c := dst.c
	c.loMin, c.lo = c.lo+pos, c.lo+pos
	c.hi, c.hiMax = c.loMin+length, c.loMin+length
}

// Capacity returns hi_max - lo_min.
func Capacity(t Reader) int { return t.iocore().capacity() }

// Length returns hi - lo.
func Length(t Reader) int { return t.iocore().length() }

// IsEmpty reports whether the window is empty (hi == lo).
func IsEmpty(t Reader) bool { return t.iocore().length() == 0 }

// Release drops this handle's reference on the shared bigstring, allowing
// pooled backing storage to be returned once the last handle is gone.
func Release(t Reader) { t.iocore().buf.Release() }
