// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

// Narrow sets lo_min ← lo and hi_max ← hi, permanently retiring whatever
// lay outside the current window. Limits only ever shrink; calling Narrow
// again on an already-narrowed iobuf is a no-op.
func Narrow(t Seeker) {
	c := t.iocore()
	c.loMin, c.hiMax = c.lo, c.hi
}

// NarrowLo sets lo_min ← lo, retiring everything below the window.
func NarrowLo(t Seeker) { c := t.iocore(); c.loMin = c.lo }

// NarrowHi sets hi_max ← hi, retiring everything above the window.
func NarrowHi(t Seeker) { c := t.iocore(); c.hiMax = c.hi }

// Advance sets lo ← lo + n. It fails without mutating anything if n < 0 or
// lo + n would exceed hi.
func Advance(t Seeker, n int) error {
	c := t.iocore()
	if n < 0 || c.lo+n > c.hi {
		return boundsErrorf("advance: n=%d exceeds window [%d,%d)", n, c.lo, c.hi)
	}
	c.lo += n
	return nil
}

// UnsafeAdvance is Advance with the bounds check elided. Callers must have
// already proven n is in range; violating that corrupts the invariant and
// may read/write outside the intended window on subsequent accesses.
func UnsafeAdvance(t Seeker, n int) { t.iocore().lo += n }

// Resize sets hi ← lo + len. It fails without mutating anything if len < 0
// or lo + len would exceed hi_max.
func Resize(t Seeker, length int) error {
	c := t.iocore()
	if length < 0 || c.lo+length > c.hiMax {
		return boundsErrorf("resize: len=%d exceeds limit hi_max=%d from lo=%d", length, c.hiMax, c.lo)
	}
	c.hi = c.lo + length
	return nil
}

// UnsafeResize is Resize with the bounds check elided.
func UnsafeResize(t Seeker, length int) { c := t.iocore(); c.hi = c.lo + length }

// Rewind sets lo ← lo_min, re-exposing everything back to the floor of the
// current limits without touching hi.
func Rewind(t Seeker) { c := t.iocore(); c.lo = c.loMin }

// Reset sets lo ← lo_min and hi ← hi_max, re-exposing the iobuf's full
// current capacity as its window. Calling Reset twice is idempotent.
func Reset(t Seeker) { c := t.iocore(); c.lo, c.hi = c.loMin, c.hiMax }

// FlipLo sets hi ← lo, lo ← lo_min: the window that was just filled
// becomes the window ready to be consumed.
func FlipLo(t Seeker) { c := t.iocore(); c.hi, c.lo = c.lo, c.loMin }

// FlipHi sets lo ← hi, hi ← hi_max: the dual of FlipLo, used to advance
// past a frame that has just been consumed and expose fresh room to fill.
func FlipHi(t Seeker) { c := t.iocore(); c.lo, c.hi = c.hi, c.hiMax }

// BoundedFlipLo is FlipLo but uses a previously captured Lo_bound instead
// of lo_min as the new lo.
func BoundedFlipLo(t Seeker, snap LoBound) error {
	c := t.iocore()
	if snap.value < c.loMin || snap.value > c.lo {
		return boundsErrorf("bounded_flip_lo: snapshot %d outside [%d,%d]", snap.value, c.loMin, c.lo)
	}
	c.hi, c.lo = c.lo, snap.value
	return nil
}

// BoundedFlipHi is the symmetric dual of BoundedFlipLo for a Hi_bound
// snapshot.
func BoundedFlipHi(t Seeker, snap HiBound) error {
	c := t.iocore()
	if snap.value > c.hiMax || snap.value < c.hi {
		return boundsErrorf("bounded_flip_hi: snapshot %d outside [%d,%d]", snap.value, c.hi, c.hiMax)
	}
	c.lo, c.hi = c.hi, snap.value
	return nil
}

// Compact memmoves buf[lo..hi) down to start at lo_min, preserving the
// unread window contents, then sets lo ← lo_min + (hi-lo) and hi ← hi_max —
// freeing the upper portion of the limits for further Fills.
func Compact(t WriteSeeker) {
	c := t.iocore()
	n := c.hi - c.lo
	copy(c.buf.b[c.loMin:c.loMin+n], c.buf.b[c.lo:c.hi])
	c.lo, c.hi = c.loMin+n, c.hiMax
}

// BoundedCompact is Compact, but uses the snapshotted bounds as the
// destination floor (in place of lo_min) and ceiling (in place of hi_max).
func BoundedCompact(t WriteSeeker, loSnap LoBound, hiSnap HiBound) error {
	c := t.iocore()
	if loSnap.value < c.loMin || loSnap.value > c.lo {
		return boundsErrorf("bounded_compact: lo snapshot %d outside [%d,%d]", loSnap.value, c.loMin, c.lo)
	}
	if hiSnap.value > c.hiMax || hiSnap.value < c.hi {
		return boundsErrorf("bounded_compact: hi snapshot %d outside [%d,%d]", hiSnap.value, c.hi, c.hiMax)
	}
	n := c.hi - c.lo
	copy(c.buf.b[loSnap.value:loSnap.value+n], c.buf.b[c.lo:c.hi])
	c.lo, c.hi = loSnap.value+n, hiSnap.value
	return nil
}

// ProtectWindowAndBounds snapshots all four indices of t, invokes f with a
// seek-capable view of the same core, and restores the snapshot on every
// exit path of f — including a panic, which is re-raised after restoring.
// This is the scoped-acquisition idiom for code that needs to reposition a
// handle temporarily (e.g. to peek past the declared window) without
// leaking the repositioning to its caller.
func ProtectWindowAndBounds(t Reader, f func(T)) {
	c := t.iocore()
	loMin, lo, hi, hiMax := c.loMin, c.lo, c.hi, c.hiMax
	defer func() {
		c.loMin, c.lo, c.hi, c.hiMax = loMin, lo, hi, hiMax
	}()
	f(T{c})
}

// LoBound is an opaque, value-typed snapshot of an iobuf's lo edge,
// restorable later to implement speculative parsing: take a snapshot,
// attempt to parse, and restore it if the attempt fails for lack of data.
type LoBound struct{ value int }

// LoBoundWindow captures t's current lo.
func LoBoundWindow(t Reader) LoBound { return LoBound{t.iocore().lo} }

// Restore sets t's lo to the captured value. It fails if the captured
// value no longer lies within t's current limits (e.g. because the iobuf
// has since been narrowed past it) — restoring must never widen a limit.
func (s LoBound) Restore(t Seeker) error {
	c := t.iocore()
	if s.value < c.loMin || s.value > c.hiMax {
		return boundsErrorf("lo_bound.restore: snapshot %d outside limits [%d,%d]", s.value, c.loMin, c.hiMax)
	}
	c.lo = s.value
	if c.lo > c.hi {
		c.hi = c.lo
	}
	return nil
}

// HiBound is the Hi-edge counterpart of LoBound.
type HiBound struct{ value int }

// HiBoundWindow captures t's current hi.
func HiBoundWindow(t Reader) HiBound { return HiBound{t.iocore().hi} }

// Restore sets t's hi to the captured value, subject to the same
// within-limits check as LoBound.Restore.
func (s HiBound) Restore(t Seeker) error {
	c := t.iocore()
	if s.value < c.loMin || s.value > c.hiMax {
		return boundsErrorf("hi_bound.restore: snapshot %d outside limits [%d,%d]", s.value, c.loMin, c.hiMax)
	}
	c.hi = s.value
	if c.hi < c.lo {
		c.lo = c.hi
	}
	return nil
}
