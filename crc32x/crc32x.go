// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package crc32x is the CRC32 collaborator the parent package's spec
// calls out as external: a checksum over an iobuf's current window,
// built on the standard library's table-driven implementation since
// none of the retrieved example repos import a third-party CRC32
// package and hash/crc32 is the idiomatic Go choice for this algorithm.
package crc32x

import (
	"hash/crc32"

	"code.hybscloud.com/cursorbuf"
)

// Sum returns the IEEE CRC-32 checksum of t's current window.
func Sum(t iobuf.ReadSeek) uint32 {
	e := iobuf.OfExpert(t)
	return crc32.ChecksumIEEE(e.Window())
}

// Sum64 is Sum widened to a 64-bit integer, for callers that want a
// single return type shared with other checksum-producing collaborators.
func Sum64(t iobuf.ReadSeek) uint64 { return uint64(Sum(t)) }

// SumBytes is Sum for a plain byte slice, for callers without an iobuf
// handle at hand (e.g. after a Blit.Sub copy).
func SumBytes(b []byte) uint32 { return crc32.ChecksumIEEE(b) }

// Castagnoli returns the Castagnoli CRC-32C checksum of t's current
// window, the variant used by iSCSI, SCTP, and several RPC wire formats
// that favor its better error-detection properties over IEEE.
func Castagnoli(t iobuf.ReadSeek) uint32 {
	e := iobuf.OfExpert(t)
	return crc32.Checksum(e.Window(), crc32.MakeTable(crc32.Castagnoli))
}

// Running accumulates a CRC32 across multiple non-contiguous windows —
// for example the pieces either side of a Compact — without
// concatenating them first.
type Running struct {
	tbl *crc32.Table
	sum uint32
}

// NewRunning starts a running IEEE CRC32 accumulator.
func NewRunning() *Running { return &Running{tbl: crc32.IEEETable} }

// NewRunningCastagnoli starts a running Castagnoli CRC32 accumulator.
func NewRunningCastagnoli() *Running {
	return &Running{tbl: crc32.MakeTable(crc32.Castagnoli)}
}

// Write feeds t's current window into the running checksum.
func (r *Running) Write(t iobuf.ReadSeek) {
	e := iobuf.OfExpert(t)
	r.sum = crc32.Update(r.sum, r.tbl, e.Window())
}

// Sum32 returns the checksum accumulated so far.
func (r *Running) Sum32() uint32 { return r.sum }
