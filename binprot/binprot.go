// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package binprot defines the minimal reader/writer/sizer shape that
// iobuf's framed helpers need from a bin-prot-style serialization
// registry, plus a small set of built-in codecs for the primitive shapes.
// The wire format itself — how a given value's bytes are laid out — is
// deliberately out of scope here, matching the non-goal in the parent
// package: this is only the seam a real codec plugs into. Neither this
// package nor its function types import iobuf; they operate on plain
// byte slices so they can be unit tested and reused without a core
// handle at hand.
package binprot

// Reader decodes a value of type T starting at buf[pos:], returning the
// value, the number of bytes consumed, and an error if buf[pos:] does
// not hold a complete encoding.
type Reader[T any] func(buf []byte, pos int) (T, int, error)

// Writer encodes v into dst starting at dst[pos:], returning the number
// of bytes written. It must not write past len(dst).
type Writer[T any] func(dst []byte, pos int, v T) (int, error)

// Sizer reports the exact encoded size of v, so a Writer's caller can
// size the destination window before encoding.
type Sizer[T any] func(v T) int
