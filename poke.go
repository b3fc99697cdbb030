// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"encoding/binary"
	"math"
)

// Poke* write the primitive at window-relative pos without advancing lo
// or hi.
func PokeU8(t Writer, pos int, v uint8) error {
	b, err := t.iocore().pokeSlice(pos, 1, true)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func PokeU16LE(t Writer, pos int, v uint16) error {
	b, err := t.iocore().pokeSlice(pos, 2, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

func PokeU16BE(t Writer, pos int, v uint16) error {
	b, err := t.iocore().pokeSlice(pos, 2, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, v)
	return nil
}

func PokeU32LE(t Writer, pos int, v uint32) error {
	b, err := t.iocore().pokeSlice(pos, 4, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

func PokeU32BE(t Writer, pos int, v uint32) error {
	b, err := t.iocore().pokeSlice(pos, 4, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, v)
	return nil
}

func PokeU64LE(t Writer, pos int, v uint64) error {
	b, err := t.iocore().pokeSlice(pos, 8, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

func PokeU64BE(t Writer, pos int, v uint64) error {
	b, err := t.iocore().pokeSlice(pos, 8, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, v)
	return nil
}

func PokeI8(t Writer, pos int, v int8) error {
	b, err := t.iocore().pokeSlice(pos, 1, true)
	if err != nil {
		return err
	}
	b[0] = byte(v)
	return nil
}

func PokeI16LE(t Writer, pos int, v int16) error {
	b, err := t.iocore().pokeSlice(pos, 2, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, uint16(v))
	return nil
}

func PokeI16BE(t Writer, pos int, v int16) error {
	b, err := t.iocore().pokeSlice(pos, 2, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b, uint16(v))
	return nil
}

func PokeI32LE(t Writer, pos int, v int32) error {
	b, err := t.iocore().pokeSlice(pos, 4, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, uint32(v))
	return nil
}

func PokeI32BE(t Writer, pos int, v int32) error {
	b, err := t.iocore().pokeSlice(pos, 4, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, uint32(v))
	return nil
}

func PokeI64LE(t Writer, pos int, v int64) error {
	b, err := t.iocore().pokeSlice(pos, 8, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, uint64(v))
	return nil
}

func PokeI64BE(t Writer, pos int, v int64) error {
	b, err := t.iocore().pokeSlice(pos, 8, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, uint64(v))
	return nil
}

func PokeF32LE(t Writer, pos int, v float32) error {
	b, err := t.iocore().pokeSlice(pos, 4, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	return nil
}

func PokeF32BE(t Writer, pos int, v float32) error {
	b, err := t.iocore().pokeSlice(pos, 4, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b, math.Float32bits(v))
	return nil
}

func PokeF64LE(t Writer, pos int, v float64) error {
	b, err := t.iocore().pokeSlice(pos, 8, true)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return nil
}

func PokeF64BE(t Writer, pos int, v float64) error {
	b, err := t.iocore().pokeSlice(pos, 8, true)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
	return nil
}

// PokeBytes writes p at window-relative pos without advancing lo or hi.
func PokeBytes(t Writer, pos int, p []byte) error {
	b, err := t.iocore().pokeSlice(pos, len(p), true)
	if err != nil {
		return err
	}
	copy(b, p)
	return nil
}

// PokeString is PokeBytes for a string source.
func PokeString(t Writer, pos int, s string) error {
	b, err := t.iocore().pokeSlice(pos, len(s), true)
	if err != nil {
		return err
	}
	copy(b, s)
	return nil
}

// PokeDecimal writes the ASCII decimal representation of i at
// window-relative pos and returns the number of bytes written, so the
// caller may advance the cursor manually (e.g. via Advance) if desired.
func PokeDecimal(t Writer, pos int, i int64) (int, error) {
	digits := strconvAppendInt(i)
	b, err := t.iocore().pokeSlice(pos, len(digits), true)
	if err != nil {
		return 0, err
	}
	copy(b, digits)
	return len(digits), nil
}
