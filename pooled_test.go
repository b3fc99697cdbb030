// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"testing"
)

func TestCreatePooledUsableLikeCreate(t *testing.T) {
	buf, err := CreatePooled(8)
	if err != nil {
		t.Fatal(err)
	}
	if Length(buf) != 8 || Capacity(buf) != 8 {
		t.Fatalf("CreatePooled(8): Length=%d Capacity=%d, want 8,8", Length(buf), Capacity(buf))
	}
	if err := FillString(buf, "abcdefgh"); err != nil {
		t.Fatal(err)
	}
	FlipLo(buf)
	got, err := ConsumeString(buf, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got != "abcdefgh" {
		t.Fatalf("round trip through a pooled buffer = %q, want %q", got, "abcdefgh")
	}
	Release(buf)
}

func TestCreatePooledFallsBackAboveGiantTier(t *testing.T) {
	// Regression: this length used to be handed a fixed BufferSizeGiant
	// pool item while hi/hiMax were set to the (larger) requested length,
	// so any access past the pool item's actual size would run off the
	// end of its backing array. CreatePooled must allocate plain storage
	// of the full requested size instead once length exceeds Giant.
	const big = BufferSizeGiant + BufferSizePico
	buf, err := CreatePooled(big)
	if err != nil {
		t.Fatal(err)
	}
	if Length(buf) != big || Capacity(buf) != big {
		t.Fatalf("CreatePooled(%d) above the pooled range: Length=%d Capacity=%d, want %d,%d", big, Length(buf), Capacity(buf), big, big)
	}
	if err := PokeU8(buf, big-1, 0xAB); err != nil {
		t.Fatalf("poking the last byte of an over-Giant pooled buffer: %v", err)
	}
	Release(buf)
}

// TestCreatePooledRoundTripsThroughPool exhausts the pico pool, confirms
// a further acquire fails in non-blocking mode, then confirms Release
// returns the backing array so the next acquire succeeds again.
func TestCreatePooledRoundTripsThroughPool(t *testing.T) {
	poolInit.Do(initPools)
	picoPool.SetNonblock(true)
	defer picoPool.SetNonblock(false)

	held := make([]T, 0, defaultPoolCapacity)
	for i := 0; i < defaultPoolCapacity; i++ {
		buf, err := CreatePooled(BufferSizePico)
		if err != nil {
			t.Fatalf("CreatePooled exhausting slot %d: %v", i, err)
		}
		held = append(held, buf)
	}

	if _, err := CreatePooled(BufferSizePico); err == nil {
		t.Fatal("expected CreatePooled to fail once the pico pool is exhausted in non-blocking mode")
	}

	Release(held[0])
	held = held[1:]

	buf, err := CreatePooled(BufferSizePico)
	if err != nil {
		t.Fatalf("CreatePooled after releasing one slot: %v", err)
	}
	held = append(held, buf)

	for _, b := range held {
		Release(b)
	}
}

func TestReleaseOnPlainCreateIsSafeNoOp(t *testing.T) {
	buf := Create(4)
	// Create's storage has a nil release callback; Release must still
	// drop the refcount without panicking or touching anything.
	Release(buf)
}

func TestReleaseAfterSubSharedDropsIndependently(t *testing.T) {
	buf, err := CreatePooled(BufferSizePico)
	if err != nil {
		t.Fatal(err)
	}
	sub := buf.SubShared(0, 4)

	// Releasing the sub-view's reference must not invalidate buf, which
	// still holds its own reference to the shared storage.
	Release(sub)
	if err := PokeU8(buf, 0, 0x42); err != nil {
		t.Fatal(err)
	}
	Release(buf)
}
