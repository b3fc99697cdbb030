// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"encoding/binary"

	"code.hybscloud.com/cursorbuf/binprot"
)

// FillBinProt writes a 4-byte little-endian length prefix followed by
// value's encoding, advancing t by the total bytes written. It fails,
// leaving t untouched, if the window cannot hold prefix+payload or if
// sizer and writer disagree on the encoded length.
func FillBinProt[V any](t WriteSeeker, sizer binprot.Sizer[V], writer binprot.Writer[V], value V) error {
	n := sizer(value)
	c := t.iocore()
	window, err := c.fillSlice(4+n, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(window[:4], uint32(n))
	written, err := writer(window, 4, value)
	if err != nil {
		c.lo -= 4 + n
		return err
	}
	if written != n {
		c.lo -= 4 + n
		return boundsErrorf("fill_bin_prot: sizer reported %d bytes but writer wrote %d", n, written)
	}
	return nil
}

// ConsumeBinProt reads a 4-byte length prefix, then that many bytes as a
// bin-prot value, advancing t by the total. It fails, leaving lo
// untouched, if the window holds fewer than 4+prefix bytes — including
// the case where there are not even 4 bytes to read the prefix itself.
func ConsumeBinProt[V any](t Seeker, reader binprot.Reader[V]) (V, error) {
	var zero V
	c := t.iocore()
	prefix, err := c.peekSlice(0, 4, true)
	if err != nil {
		return zero, ErrIncompleteFrame
	}
	n := int(binary.LittleEndian.Uint32(prefix))
	payload, err := c.consumeSlice(4+n, true)
	if err != nil {
		return zero, ErrIncompleteFrame
	}
	v, _, err := reader(payload, 4)
	if err != nil {
		c.lo -= 4 + n
		return zero, ErrIncompleteFrame
	}
	return v, nil
}
