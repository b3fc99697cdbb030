// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"encoding/binary"
	"math"
)

// Unsafe groups the bounds-check-elided mirror of Consume/Fill/Peek/Poke.
// Every function here has exactly the advancement and return semantics of
// its checked counterpart; callers must have already proven the accessed
// subrange lies inside the window, or risk reading/writing outside the
// backing array.
var Unsafe unsafeNamespace

type unsafeNamespace struct{}

func (unsafeNamespace) ConsumeU8(t Seeker) uint8 {
	b, _ := t.iocore().consumeSlice(1, false)
	return b[0]
}

func (unsafeNamespace) FillU8(t WriteSeeker, v uint8) {
	b, _ := t.iocore().fillSlice(1, false)
	b[0] = v
}

func (unsafeNamespace) PeekU8(t Reader, pos int) uint8 {
	b, _ := t.iocore().peekSlice(pos, 1, false)
	return b[0]
}

func (unsafeNamespace) PokeU8(t Writer, pos int, v uint8) {
	b, _ := t.iocore().pokeSlice(pos, 1, false)
	b[0] = v
}

func (unsafeNamespace) ConsumeU16LE(t Seeker) uint16 {
	b, _ := t.iocore().consumeSlice(2, false)
	return binary.LittleEndian.Uint16(b)
}

func (unsafeNamespace) FillU16LE(t WriteSeeker, v uint16) {
	b, _ := t.iocore().fillSlice(2, false)
	binary.LittleEndian.PutUint16(b, v)
}

func (unsafeNamespace) PeekU16LE(t Reader, pos int) uint16 {
	b, _ := t.iocore().peekSlice(pos, 2, false)
	return binary.LittleEndian.Uint16(b)
}

func (unsafeNamespace) PokeU16LE(t Writer, pos int, v uint16) {
	b, _ := t.iocore().pokeSlice(pos, 2, false)
	binary.LittleEndian.PutUint16(b, v)
}

func (unsafeNamespace) ConsumeU16BE(t Seeker) uint16 {
	b, _ := t.iocore().consumeSlice(2, false)
	return binary.BigEndian.Uint16(b)
}

func (unsafeNamespace) FillU16BE(t WriteSeeker, v uint16) {
	b, _ := t.iocore().fillSlice(2, false)
	binary.BigEndian.PutUint16(b, v)
}

func (unsafeNamespace) PeekU16BE(t Reader, pos int) uint16 {
	b, _ := t.iocore().peekSlice(pos, 2, false)
	return binary.BigEndian.Uint16(b)
}

func (unsafeNamespace) PokeU16BE(t Writer, pos int, v uint16) {
	b, _ := t.iocore().pokeSlice(pos, 2, false)
	binary.BigEndian.PutUint16(b, v)
}

func (unsafeNamespace) ConsumeU32LE(t Seeker) uint32 {
	b, _ := t.iocore().consumeSlice(4, false)
	return binary.LittleEndian.Uint32(b)
}

func (unsafeNamespace) FillU32LE(t WriteSeeker, v uint32) {
	b, _ := t.iocore().fillSlice(4, false)
	binary.LittleEndian.PutUint32(b, v)
}

func (unsafeNamespace) PeekU32LE(t Reader, pos int) uint32 {
	b, _ := t.iocore().peekSlice(pos, 4, false)
	return binary.LittleEndian.Uint32(b)
}

func (unsafeNamespace) PokeU32LE(t Writer, pos int, v uint32) {
	b, _ := t.iocore().pokeSlice(pos, 4, false)
	binary.LittleEndian.PutUint32(b, v)
}

func (unsafeNamespace) ConsumeU32BE(t Seeker) uint32 {
	b, _ := t.iocore().consumeSlice(4, false)
	return binary.BigEndian.Uint32(b)
}

func (unsafeNamespace) FillU32BE(t WriteSeeker, v uint32) {
	b, _ := t.iocore().fillSlice(4, false)
	binary.BigEndian.PutUint32(b, v)
}

func (unsafeNamespace) PeekU32BE(t Reader, pos int) uint32 {
	b, _ := t.iocore().peekSlice(pos, 4, false)
	return binary.BigEndian.Uint32(b)
}

func (unsafeNamespace) PokeU32BE(t Writer, pos int, v uint32) {
	b, _ := t.iocore().pokeSlice(pos, 4, false)
	binary.BigEndian.PutUint32(b, v)
}

func (unsafeNamespace) ConsumeU64LE(t Seeker) uint64 {
	b, _ := t.iocore().consumeSlice(8, false)
	return binary.LittleEndian.Uint64(b)
}

func (unsafeNamespace) FillU64LE(t WriteSeeker, v uint64) {
	b, _ := t.iocore().fillSlice(8, false)
	binary.LittleEndian.PutUint64(b, v)
}

func (unsafeNamespace) PeekU64LE(t Reader, pos int) uint64 {
	b, _ := t.iocore().peekSlice(pos, 8, false)
	return binary.LittleEndian.Uint64(b)
}

func (unsafeNamespace) PokeU64LE(t Writer, pos int, v uint64) {
	b, _ := t.iocore().pokeSlice(pos, 8, false)
	binary.LittleEndian.PutUint64(b, v)
}

func (unsafeNamespace) ConsumeU64BE(t Seeker) uint64 {
	b, _ := t.iocore().consumeSlice(8, false)
	return binary.BigEndian.Uint64(b)
}

func (unsafeNamespace) FillU64BE(t WriteSeeker, v uint64) {
	b, _ := t.iocore().fillSlice(8, false)
	binary.BigEndian.PutUint64(b, v)
}

func (unsafeNamespace) PeekU64BE(t Reader, pos int) uint64 {
	b, _ := t.iocore().peekSlice(pos, 8, false)
	return binary.BigEndian.Uint64(b)
}

func (unsafeNamespace) PokeU64BE(t Writer, pos int, v uint64) {
	b, _ := t.iocore().pokeSlice(pos, 8, false)
	binary.BigEndian.PutUint64(b, v)
}

func (unsafeNamespace) ConsumeI8(t Seeker) int8 {
	b, _ := t.iocore().consumeSlice(1, false)
	return int8(b[0])
}

func (unsafeNamespace) FillI8(t WriteSeeker, v int8) {
	b, _ := t.iocore().fillSlice(1, false)
	b[0] = byte(v)
}

func (unsafeNamespace) PeekI8(t Reader, pos int) int8 {
	b, _ := t.iocore().peekSlice(pos, 1, false)
	return int8(b[0])
}

func (unsafeNamespace) PokeI8(t Writer, pos int, v int8) {
	b, _ := t.iocore().pokeSlice(pos, 1, false)
	b[0] = byte(v)
}

func (unsafeNamespace) ConsumeI16LE(t Seeker) int16 {
	b, _ := t.iocore().consumeSlice(2, false)
	return int16(binary.LittleEndian.Uint16(b))
}

func (unsafeNamespace) FillI16LE(t WriteSeeker, v int16) {
	b, _ := t.iocore().fillSlice(2, false)
	binary.LittleEndian.PutUint16(b, uint16(v))
}

func (unsafeNamespace) PeekI16LE(t Reader, pos int) int16 {
	b, _ := t.iocore().peekSlice(pos, 2, false)
	return int16(binary.LittleEndian.Uint16(b))
}

func (unsafeNamespace) PokeI16LE(t Writer, pos int, v int16) {
	b, _ := t.iocore().pokeSlice(pos, 2, false)
	binary.LittleEndian.PutUint16(b, uint16(v))
}

func (unsafeNamespace) ConsumeI16BE(t Seeker) int16 {
	b, _ := t.iocore().consumeSlice(2, false)
	return int16(binary.BigEndian.Uint16(b))
}

func (unsafeNamespace) FillI16BE(t WriteSeeker, v int16) {
	b, _ := t.iocore().fillSlice(2, false)
	binary.BigEndian.PutUint16(b, uint16(v))
}

func (unsafeNamespace) PeekI16BE(t Reader, pos int) int16 {
	b, _ := t.iocore().peekSlice(pos, 2, false)
	return int16(binary.BigEndian.Uint16(b))
}

func (unsafeNamespace) PokeI16BE(t Writer, pos int, v int16) {
	b, _ := t.iocore().pokeSlice(pos, 2, false)
	binary.BigEndian.PutUint16(b, uint16(v))
}

func (unsafeNamespace) ConsumeI32LE(t Seeker) int32 {
	b, _ := t.iocore().consumeSlice(4, false)
	return int32(binary.LittleEndian.Uint32(b))
}

func (unsafeNamespace) FillI32LE(t WriteSeeker, v int32) {
	b, _ := t.iocore().fillSlice(4, false)
	binary.LittleEndian.PutUint32(b, uint32(v))
}

func (unsafeNamespace) PeekI32LE(t Reader, pos int) int32 {
	b, _ := t.iocore().peekSlice(pos, 4, false)
	return int32(binary.LittleEndian.Uint32(b))
}

func (unsafeNamespace) PokeI32LE(t Writer, pos int, v int32) {
	b, _ := t.iocore().pokeSlice(pos, 4, false)
	binary.LittleEndian.PutUint32(b, uint32(v))
}

func (unsafeNamespace) ConsumeI32BE(t Seeker) int32 {
	b, _ := t.iocore().consumeSlice(4, false)
	return int32(binary.BigEndian.Uint32(b))
}

func (unsafeNamespace) FillI32BE(t WriteSeeker, v int32) {
	b, _ := t.iocore().fillSlice(4, false)
	binary.BigEndian.PutUint32(b, uint32(v))
}

func (unsafeNamespace) PeekI32BE(t Reader, pos int) int32 {
	b, _ := t.iocore().peekSlice(pos, 4, false)
	return int32(binary.BigEndian.Uint32(b))
}

func (unsafeNamespace) PokeI32BE(t Writer, pos int, v int32) {
	b, _ := t.iocore().pokeSlice(pos, 4, false)
	binary.BigEndian.PutUint32(b, uint32(v))
}

func (unsafeNamespace) ConsumeI64LE(t Seeker) int64 {
	b, _ := t.iocore().consumeSlice(8, false)
	return int64(binary.LittleEndian.Uint64(b))
}

func (unsafeNamespace) FillI64LE(t WriteSeeker, v int64) {
	b, _ := t.iocore().fillSlice(8, false)
	binary.LittleEndian.PutUint64(b, uint64(v))
}

func (unsafeNamespace) PeekI64LE(t Reader, pos int) int64 {
	b, _ := t.iocore().peekSlice(pos, 8, false)
	return int64(binary.LittleEndian.Uint64(b))
}

func (unsafeNamespace) PokeI64LE(t Writer, pos int, v int64) {
	b, _ := t.iocore().pokeSlice(pos, 8, false)
	binary.LittleEndian.PutUint64(b, uint64(v))
}

func (unsafeNamespace) ConsumeI64BE(t Seeker) int64 {
	b, _ := t.iocore().consumeSlice(8, false)
	return int64(binary.BigEndian.Uint64(b))
}

func (unsafeNamespace) FillI64BE(t WriteSeeker, v int64) {
	b, _ := t.iocore().fillSlice(8, false)
	binary.BigEndian.PutUint64(b, uint64(v))
}

func (unsafeNamespace) PeekI64BE(t Reader, pos int) int64 {
	b, _ := t.iocore().peekSlice(pos, 8, false)
	return int64(binary.BigEndian.Uint64(b))
}

func (unsafeNamespace) PokeI64BE(t Writer, pos int, v int64) {
	b, _ := t.iocore().pokeSlice(pos, 8, false)
	binary.BigEndian.PutUint64(b, uint64(v))
}

func (unsafeNamespace) ConsumeF32LE(t Seeker) float32 {
	b, _ := t.iocore().consumeSlice(4, false)
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func (unsafeNamespace) FillF32LE(t WriteSeeker, v float32) {
	b, _ := t.iocore().fillSlice(4, false)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func (unsafeNamespace) PeekF32LE(t Reader, pos int) float32 {
	b, _ := t.iocore().peekSlice(pos, 4, false)
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func (unsafeNamespace) PokeF32LE(t Writer, pos int, v float32) {
	b, _ := t.iocore().pokeSlice(pos, 4, false)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func (unsafeNamespace) ConsumeF32BE(t Seeker) float32 {
	b, _ := t.iocore().consumeSlice(4, false)
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func (unsafeNamespace) FillF32BE(t WriteSeeker, v float32) {
	b, _ := t.iocore().fillSlice(4, false)
	binary.BigEndian.PutUint32(b, math.Float32bits(v))
}

func (unsafeNamespace) PeekF32BE(t Reader, pos int) float32 {
	b, _ := t.iocore().peekSlice(pos, 4, false)
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func (unsafeNamespace) PokeF32BE(t Writer, pos int, v float32) {
	b, _ := t.iocore().pokeSlice(pos, 4, false)
	binary.BigEndian.PutUint32(b, math.Float32bits(v))
}

func (unsafeNamespace) ConsumeF64LE(t Seeker) float64 {
	b, _ := t.iocore().consumeSlice(8, false)
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func (unsafeNamespace) FillF64LE(t WriteSeeker, v float64) {
	b, _ := t.iocore().fillSlice(8, false)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

func (unsafeNamespace) PeekF64LE(t Reader, pos int) float64 {
	b, _ := t.iocore().peekSlice(pos, 8, false)
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

func (unsafeNamespace) PokeF64LE(t Writer, pos int, v float64) {
	b, _ := t.iocore().pokeSlice(pos, 8, false)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

func (unsafeNamespace) ConsumeF64BE(t Seeker) float64 {
	b, _ := t.iocore().consumeSlice(8, false)
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

func (unsafeNamespace) FillF64BE(t WriteSeeker, v float64) {
	b, _ := t.iocore().fillSlice(8, false)
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
}

func (unsafeNamespace) PeekF64BE(t Reader, pos int) float64 {
	b, _ := t.iocore().peekSlice(pos, 8, false)
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

func (unsafeNamespace) PokeF64BE(t Writer, pos int, v float64) {
	b, _ := t.iocore().pokeSlice(pos, 8, false)
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
}

// ConsumeBytes is the unsafe mirror of ConsumeBytes: it elides the bounds
// check before copying n bytes out of the window and advancing lo.
func (unsafeNamespace) ConsumeBytes(t Seeker, n int) []byte {
	b, _ := t.iocore().consumeSlice(n, false)
	out := make([]byte, n)
	copy(out, b)
	return out
}

// FillBytes is the unsafe mirror of FillBytes.
func (unsafeNamespace) FillBytes(t WriteSeeker, p []byte) {
	b, _ := t.iocore().fillSlice(len(p), false)
	copy(b, p)
}

// PeekBytes is the unsafe mirror of PeekBytes.
func (unsafeNamespace) PeekBytes(t Reader, pos, n int) []byte {
	b, _ := t.iocore().peekSlice(pos, n, false)
	out := make([]byte, n)
	copy(out, b)
	return out
}

// PokeBytes is the unsafe mirror of PokeBytes.
func (unsafeNamespace) PokeBytes(t Writer, pos int, p []byte) {
	b, _ := t.iocore().pokeSlice(pos, len(p), false)
	copy(b, p)
}
