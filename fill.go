// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"encoding/binary"
	"math"
)

// Fill* write the primitive at the window's lower edge and advance lo by
// its width. They fail, leaving lo and the window's bytes untouched, if
// the window cannot hold the width.
func FillU8(t WriteSeeker, v uint8) error {
	b, err := t.iocore().fillSlice(1, true)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func FillU16LE(t WriteSeeker, v uint16) error {
	b, err := t.iocore().fillSlice(2, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

func FillU16BE(t WriteSeeker, v uint16) error {
	b, err := t.iocore().fillSlice(2, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, v)
	return nil
}

func FillU32LE(t WriteSeeker, v uint32) error {
	b, err := t.iocore().fillSlice(4, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

func FillU32BE(t WriteSeeker, v uint32) error {
	b, err := t.iocore().fillSlice(4, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, v)
	return nil
}

func FillU64LE(t WriteSeeker, v uint64) error {
	b, err := t.iocore().fillSlice(8, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

func FillU64BE(t WriteSeeker, v uint64) error {
	b, err := t.iocore().fillSlice(8, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, v)
	return nil
}

func FillI8(t WriteSeeker, v int8) error {
	b, err := t.iocore().fillSlice(1, true)
	if err != nil {
		return err
	}
	b[0] = byte(v)
	return nil
}

func FillI16LE(t WriteSeeker, v int16) error {
	b, err := t.iocore().fillSlice(2, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, uint16(v))
	return nil
}

func FillI16BE(t WriteSeeker, v int16) error {
	b, err := t.iocore().fillSlice(2, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

func FillI32LE(t WriteSeeker, v int32) error {
	b, err := t.iocore().fillSlice(4, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, uint32(v))
	return nil
}

func FillI32BE(t WriteSeeker, v int32) error {
	b, err := t.iocore().fillSlice(4, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, uint32(v))
	return nil
}

func FillI64LE(t WriteSeeker, v int64) error {
	b, err := t.iocore().fillSlice(8, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, uint64(v))
	return nil
}

func FillI64BE(t WriteSeeker, v int64) error {
	b, err := t.iocore().fillSlice(8, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, uint64(v))
	return nil
}

func FillF32LE(t WriteSeeker, v float32) error {
	b, err := t.iocore().fillSlice(4, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	return nil
}

func FillF32BE(t WriteSeeker, v float32) error {
	b, err := t.iocore().fillSlice(4, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, math.Float32bits(v))
	return nil
}

func FillF64LE(t WriteSeeker, v float64) error {
	b, err := t.iocore().fillSlice(8, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return nil
}

func FillF64BE(t WriteSeeker, v float64) error {
	b, err := t.iocore().fillSlice(8, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
	return nil
}

// FillBytes writes p at the window's lower edge and advances lo by len(p).
func FillBytes(t WriteSeeker, p []byte) error {
	b, err := t.iocore().fillSlice(len(p), true)
	if err != nil {
		return err
	}
	copy(b, p)
	return nil
}

// FillString is FillBytes for a string source.
func FillString(t WriteSeeker, s string) error {
	b, err := t.iocore().fillSlice(len(s), true)
	if err != nil {
		return err
	}
	copy(b, s)
	return nil
}

// FillDecimal writes the ASCII decimal representation of i, with no
// separators or terminator, and advances lo by the number of bytes
// written. It fails if the window is too small to hold the rendered
// digits. MIN_INT renders as "-" followed by its absolute value's digits,
// computed via strconv.AppendInt rather than a naive negation (which would
// overflow for the most negative value of the width).
func FillDecimal(t WriteSeeker, i int64) error {
	digits := strconvAppendInt(i)
	b, err := t.iocore().fillSlice(len(digits), true)
	if err != nil {
		return err
	}
	copy(b, digits)
	return nil
}
