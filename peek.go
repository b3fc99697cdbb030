// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"encoding/binary"
	"math"
)

// Peek* read the primitive at window-relative pos without advancing lo or
// hi.
func PeekU8(t Reader, pos int) (uint8, error) {
	b, err := t.iocore().peekSlice(pos, 1, true)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func PeekU16LE(t Reader, pos int) (uint16, error) {
	b, err := t.iocore().peekSlice(pos, 2, true)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func PeekU16BE(t Reader, pos int) (uint16, error) {
	b, err := t.iocore().peekSlice(pos, 2, true)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func PeekU32LE(t Reader, pos int) (uint32, error) {
	b, err := t.iocore().peekSlice(pos, 4, true)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func PeekU32BE(t Reader, pos int) (uint32, error) {
	b, err := t.iocore().peekSlice(pos, 4, true)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func PeekU64LE(t Reader, pos int) (uint64, error) {
	b, err := t.iocore().peekSlice(pos, 8, true)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func PeekU64BE(t Reader, pos int) (uint64, error) {
	b, err := t.iocore().peekSlice(pos, 8, true)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func PeekI8(t Reader, pos int) (int8, error) {
	b, err := t.iocore().peekSlice(pos, 1, true)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func PeekI16LE(t Reader, pos int) (int16, error) {
	b, err := t.iocore().peekSlice(pos, 2, true)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func PeekI16BE(t Reader, pos int) (int16, error) {
	b, err := t.iocore().peekSlice(pos, 2, true)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func PeekI32LE(t Reader, pos int) (int32, error) {
	b, err := t.iocore().peekSlice(pos, 4, true)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func PeekI32BE(t Reader, pos int) (int32, error) {
	b, err := t.iocore().peekSlice(pos, 4, true)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func PeekI64LE(t Reader, pos int) (int64, error) {
	b, err := t.iocore().peekSlice(pos, 8, true)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func PeekI64BE(t Reader, pos int) (int64, error) {
	b, err := t.iocore().peekSlice(pos, 8, true)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func PeekF32LE(t Reader, pos int) (float32, error) {
	b, err := t.iocore().peekSlice(pos, 4, true)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func PeekF32BE(t Reader, pos int) (float32, error) {
	b, err := t.iocore().peekSlice(pos, 4, true)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

func PeekF64LE(t Reader, pos int) (float64, error) {
	b, err := t.iocore().peekSlice(pos, 8, true)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func PeekF64BE(t Reader, pos int) (float64, error) {
	b, err := t.iocore().peekSlice(pos, 8, true)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// PeekBytes reads n bytes at window-relative pos into a freshly allocated
// slice, without advancing lo or hi.
func PeekBytes(t Reader, pos, n int) ([]byte, error) {
	b, err := t.iocore().peekSlice(pos, n, true)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// PeekString is PeekBytes, returning a string.
func PeekString(t Reader, pos, n int) (string, error) {
	b, err := PeekBytes(t, pos, n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
