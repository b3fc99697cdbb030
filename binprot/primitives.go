// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binprot

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned by a built-in Reader when fewer bytes
// remain than its fixed-width encoding requires.
var ErrShortBuffer = errors.New("binprot: short buffer")

// Int64LEWriter, Int64LEReader, and Int64LESizer are a fixed 8-byte
// little-endian codec for int64, usable directly as type arguments for
// the framed helpers when no richer bin-prot registry is wired in.
var (
	Int64LEWriter Writer[int64] = func(dst []byte, pos int, v int64) (int, error) {
		if pos+8 > len(dst) {
			return 0, ErrShortBuffer
		}
		binary.LittleEndian.PutUint64(dst[pos:], uint64(v))
		return 8, nil
	}
	Int64LEReader Reader[int64] = func(buf []byte, pos int) (int64, int, error) {
		if pos+8 > len(buf) {
			return 0, 0, ErrShortBuffer
		}
		return int64(binary.LittleEndian.Uint64(buf[pos:])), 8, nil
	}
	Int64LESizer Sizer[int64] = func(int64) int { return 8 }
)

// BytesWriter writes v verbatim starting at dst[pos:], unframed — the
// caller is expected to have already sized the destination with
// BytesSizer.
func BytesWriter(dst []byte, pos int, v []byte) (int, error) {
	if pos+len(v) > len(dst) {
		return 0, ErrShortBuffer
	}
	return copy(dst[pos:], v), nil
}

// BytesSizer reports len(v).
func BytesSizer(v []byte) int { return len(v) }
