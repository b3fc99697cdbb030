// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

// consumeSlice returns the n bytes at the window's lower edge and advances
// lo past them. With checked=true it fails (leaving lo untouched) if fewer
// than n bytes remain in the window; with checked=false the range is
// assumed valid and the check is skipped entirely, per the Unsafe mirror's
// contract.
func (c *core) consumeSlice(n int, checked bool) ([]byte, error) {
	if checked && c.lo+n > c.hi {
		return nil, boundsErrorf("consume: need %d bytes, have %d", n, c.hi-c.lo)
	}
	b := c.buf.b[c.lo : c.lo+n]
	c.lo += n
	return b, nil
}

// fillSlice returns a writable n-byte slice at the window's lower edge,
// for the caller to encode into, and advances lo past it.
func (c *core) fillSlice(n int, checked bool) ([]byte, error) {
	if checked && c.lo+n > c.hi {
		return nil, boundsErrorf("fill: need %d bytes, have %d", n, c.hi-c.lo)
	}
	b := c.buf.b[c.lo : c.lo+n]
	c.lo += n
	return b, nil
}

// peekSlice returns the n bytes at window-relative pos without advancing
// lo or hi.
func (c *core) peekSlice(pos, n int, checked bool) ([]byte, error) {
	if checked && (pos < 0 || c.lo+pos+n > c.hi) {
		return nil, boundsErrorf("peek: pos=%d len=%d outside window of length %d", pos, n, c.hi-c.lo)
	}
	start := c.lo + pos
	return c.buf.b[start : start+n], nil
}

// pokeSlice returns a writable n-byte slice at window-relative pos,
// without advancing lo or hi.
func (c *core) pokeSlice(pos, n int, checked bool) ([]byte, error) {
	if checked && (pos < 0 || c.lo+pos+n > c.hi) {
		return nil, boundsErrorf("poke: pos=%d len=%d outside window of length %d", pos, n, c.hi-c.lo)
	}
	start := c.lo + pos
	return c.buf.b[start : start+n], nil
}
