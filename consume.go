// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"encoding/binary"
	"math"
)

// Consume* read the primitive at the window's lower edge and advance lo by
// its width. They fail, leaving lo untouched, if the window holds fewer
// bytes than the width.
func ConsumeU8(t Seeker) (uint8, error) {
	b, err := t.iocore().consumeSlice(1, true)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func ConsumeU16LE(t Seeker) (uint16, error) {
	b, err := t.iocore().consumeSlice(2, true)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func ConsumeU16BE(t Seeker) (uint16, error) {
	b, err := t.iocore().consumeSlice(2, true)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func ConsumeU32LE(t Seeker) (uint32, error) {
	b, err := t.iocore().consumeSlice(4, true)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func ConsumeU32BE(t Seeker) (uint32, error) {
	b, err := t.iocore().consumeSlice(4, true)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func ConsumeU64LE(t Seeker) (uint64, error) {
	b, err := t.iocore().consumeSlice(8, true)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func ConsumeU64BE(t Seeker) (uint64, error) {
	b, err := t.iocore().consumeSlice(8, true)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func ConsumeI8(t Seeker) (int8, error) {
	b, err := t.iocore().consumeSlice(1, true)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func ConsumeI16LE(t Seeker) (int16, error) {
	b, err := t.iocore().consumeSlice(2, true)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func ConsumeI16BE(t Seeker) (int16, error) {
	b, err := t.iocore().consumeSlice(2, true)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b)), nil
}

func ConsumeI32LE(t Seeker) (int32, error) {
	b, err := t.iocore().consumeSlice(4, true)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func ConsumeI32BE(t Seeker) (int32, error) {
	b, err := t.iocore().consumeSlice(4, true)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func ConsumeI64LE(t Seeker) (int64, error) {
	b, err := t.iocore().consumeSlice(8, true)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func ConsumeI64BE(t Seeker) (int64, error) {
	b, err := t.iocore().consumeSlice(8, true)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func ConsumeF32LE(t Seeker) (float32, error) {
	b, err := t.iocore().consumeSlice(4, true)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func ConsumeF32BE(t Seeker) (float32, error) {
	b, err := t.iocore().consumeSlice(4, true)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

func ConsumeF64LE(t Seeker) (float64, error) {
	b, err := t.iocore().consumeSlice(8, true)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func ConsumeF64BE(t Seeker) (float64, error) {
	b, err := t.iocore().consumeSlice(8, true)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// ConsumeBytes reads the next n bytes at the window's lower edge, copies
// them into a freshly allocated slice, and advances lo by n.
func ConsumeBytes(t Seeker, n int) ([]byte, error) {
	b, err := t.iocore().consumeSlice(n, true)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ConsumeString is ConsumeBytes, returning a string instead of a []byte.
func ConsumeString(t Seeker, n int) (string, error) {
	b, err := ConsumeBytes(t, n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ConsumeToBytes is the blit-style bulk reader To_bigstring: it copies
// srcLen bytes from t's window into dst starting at dstPos, advancing t's
// window by srcLen. srcLen defaults to len(dst) when passed as -1; dstPos
// is used as given.
func ConsumeToBytes(t Seeker, dst []byte, dstPos, srcLen int) error {
	if srcLen < 0 {
		srcLen = len(dst)
	}
	if dstPos < 0 || dstPos+srcLen > len(dst) {
		return boundsErrorf("consume.to_bigstring: dst range [%d,%d) outside destination of length %d", dstPos, dstPos+srcLen, len(dst))
	}
	b, err := t.iocore().consumeSlice(srcLen, true)
	if err != nil {
		return err
	}
	copy(dst[dstPos:dstPos+srcLen], b)
	return nil
}

// ConsumeToString is ConsumeToBytes via a strings.Builder-friendly string
// return instead of an in-place destination.
func ConsumeToString(t Seeker, srcLen int) (string, error) {
	return ConsumeString(t, srcLen)
}
