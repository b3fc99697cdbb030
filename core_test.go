// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/cursorbuf"
)

func TestCreateInvariant(t *testing.T) {
	buf := iobuf.Create(16)
	if got := iobuf.Length(buf); got != 16 {
		t.Fatalf("Length() = %d, want 16", got)
	}
	if got := iobuf.Capacity(buf); got != 16 {
		t.Fatalf("Capacity() = %d, want 16", got)
	}
	if iobuf.IsEmpty(buf) {
		t.Fatal("fresh Create() reported empty")
	}
}

func TestOfBigstringOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range OfBigstring")
		}
	}()
	iobuf.OfBigstring(make([]byte, 4), 2, 4)
}

func TestCapabilityCoercionIsWeakeningOnly(t *testing.T) {
	buf := iobuf.Create(8)

	ns := buf.NoSeek()
	if err := iobuf.PokeU8(ns, 0, 0xFF); err != nil {
		t.Fatalf("PokeU8 via ReadWriteNoSeek: %v", err)
	}
	v, err := iobuf.PeekU8(ns, 0)
	if err != nil || v != 0xFF {
		t.Fatalf("PeekU8 via ReadWriteNoSeek = (%d, %v), want (255, nil)", v, err)
	}

	rons := buf.ReadOnlyNoSeek()
	if _, err := iobuf.PeekU8(rons, 0); err != nil {
		t.Fatalf("PeekU8 via ReadNoSeek: %v", err)
	}

	// ReadSeek and ReadNoSeek intentionally expose no Fill/Poke — that is
	// enforced at compile time by which interfaces they satisfy, not by a
	// runtime check, so there is nothing further to assert here.
	_ = buf.ReadOnly()
}

func TestSubSharedAliasesBackingStorage(t *testing.T) {
	buf := iobuf.Create(10)
	if err := iobuf.PokeU8(buf, 3, 0xAA); err != nil {
		t.Fatal(err)
	}
	sub := buf.SubShared(2, 4)
	got, err := iobuf.PeekU8(sub, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xAA {
		t.Fatalf("PeekU8(sub, 1) = %#x, want 0xAA", got)
	}
}

func TestOutOfBoundsErrorSentinel(t *testing.T) {
	buf := iobuf.Create(2)
	_, err := iobuf.ConsumeU64LE(buf)
	if !errors.Is(err, iobuf.ErrOutOfBounds) {
		t.Fatalf("ConsumeU64LE on a 2-byte window: err = %v, want wrapping ErrOutOfBounds", err)
	}
	if iobuf.Length(buf) != 2 {
		t.Fatalf("failed Consume mutated length: got %d, want 2 unchanged", iobuf.Length(buf))
	}
}
