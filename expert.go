// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

// Expert exposes the raw geometry of an iobuf for collaborators that must
// step outside the capability system entirely — most notably the syscall
// adapters in iosys, which need the live backing slice and its limits to
// hand to a read(2)/write(2) family call directly. Constructing an Expert
// is itself capability-checked (it requires at least a Reader); what the
// caller does with the exposed slice afterward is not.
type Expert struct {
	c *core
}

// OfExpert builds an Expert view over t's shared core.
func OfExpert(t Reader) Expert { return Expert{t.iocore()} }

// Buf returns the entire backing array underlying this iobuf, not just the
// current window — syscall adapters need this to compute an absolute
// pointer+length pair from Lo()/Hi() themselves.
func (e Expert) Buf() []byte { return e.c.buf.b }

// LoMin returns the current lo_min index.
func (e Expert) LoMin() int { return e.c.loMin }

// Lo returns the current lo index.
func (e Expert) Lo() int { return e.c.lo }

// Hi returns the current hi index.
func (e Expert) Hi() int { return e.c.hi }

// HiMax returns the current hi_max index.
func (e Expert) HiMax() int { return e.c.hiMax }

// Window returns Buf()[Lo():Hi()], the same bytes an ordinary Peek/Poke
// sequence would touch, for callers that want the slice without computing
// the two indices themselves.
func (e Expert) Window() []byte { return e.c.buf.b[e.c.lo:e.c.hi] }

// SetLo forcibly repositions lo without any of the checks Advance/Rewind
// perform. Misuse — setting lo outside [lo_min, hi_max] — violates the
// core invariant and will surface as a panic or corrupted read on whatever
// subsequent call first indexes past the backing array.
func (e Expert) SetLo(v int) { e.c.lo = v }

// SetHi forcibly repositions hi without any of the checks Resize performs.
func (e Expert) SetHi(v int) { e.c.hi = v }
