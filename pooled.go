// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import (
	"sync"
	"unsafe"
)

// defaultPoolCapacity is how many backing arrays each lazily-created tier
// pool holds. It is deliberately small: these pools exist to avoid
// allocator churn for short-lived request/response buffers, not to cap
// total memory use across the process.
const defaultPoolCapacity = 64

var (
	picoPool   *PicoBufferBoundedPool
	nanoPool   *NanoBufferBoundedPool
	microPool  *MicroBufferBoundedPool
	smallPool  *SmallBufferBoundedPool
	mediumPool *MediumBufferBoundedPool
	largePool  *LargeBufferBoundedPool
	hugePool   *HugeBufferBoundedPool
	giantPool  *GiantBufferBoundedPool

	poolInit sync.Once
)

func initPools() {
	picoPool = NewPicoBufferPool(defaultPoolCapacity)
	picoPool.Fill(NewPicoBuffer)
	nanoPool = NewNanoBufferPool(defaultPoolCapacity)
	nanoPool.Fill(NewNanoBuffer)
	microPool = NewMicroBufferPool(defaultPoolCapacity)
	microPool.Fill(NewMicroBuffer)
	smallPool = NewSmallBufferPool(defaultPoolCapacity)
	smallPool.Fill(NewSmallBuffer)
	mediumPool = NewMediumBufferPool(defaultPoolCapacity)
	mediumPool.Fill(NewMediumBuffer)
	largePool = NewLargeBufferPool(defaultPoolCapacity)
	largePool.Fill(NewLargeBuffer)
	hugePool = NewHugeBufferPool(defaultPoolCapacity)
	hugePool.Fill(NewHugeBuffer)
	giantPool = NewGiantBufferPool(defaultPoolCapacity)
	giantPool.Fill(NewGiantBuffer)
}

// CreatePooled is Create, but for lengths up to BufferSizeGiant it draws
// its backing array from a lazily-initialized BoundedPool instead of
// allocating fresh, and returns it to that pool once every handle
// sharing the storage has called Release. Lengths above BufferSizeGiant
// (the Titan tier) fall back to Create's plain allocation:
// pre-filling a pool of 128 MiB arrays on first use would be a poor
// default, and nothing in this package currently prevents a caller who
// needs that tier from building its own IndirectPool[TitanBuffer] and
// feeding Create's backing array in via OfBigstring instead.
//
// Returns the pool's iox.ErrWouldBlock if the pool for length's tier is exhausted and
// non-blocking mode was requested by a prior SetNonblock call on that
// tier's pool; by default Get blocks until a buffer is returned.
func CreatePooled(length int) (T, error) {
	if length > BufferSizeGiant {
		buf := make([]byte, length)
		return T{&core{buf: newStorage(buf, nil), loMin: 0, lo: 0, hi: length, hiMax: length}}, nil
	}

	poolInit.Do(initPools)

	tier := TierBySize(length)
	buf, release, err := acquireTierBuffer(tier)
	if err != nil {
		return T{}, err
	}
	// Every tier reachable here (Pico..Giant) maps to a pool whose items
	// are at least as large as the tier's own size, which is in turn at
	// least length by construction of TierBySize, so buf always covers
	// [0,length).
	return T{&core{buf: newStorage(buf[:length], release), loMin: 0, lo: 0, hi: length, hiMax: length}}, nil
}

// acquireTierBuffer is only ever called with a tier at or below
// TierGiant: CreatePooled routes anything larger to a plain allocation
// before reaching here.
func acquireTierBuffer(tier BufferTier) (buf []byte, release func([]byte), err error) {
	switch tier {
	case TierPico:
		return acquireFrom(picoPool)
	case TierNano:
		return acquireFrom(nanoPool)
	case TierMicro:
		return acquireFrom(microPool)
	case TierSmall:
		return acquireFrom(smallPool)
	case TierMedium:
		return acquireFrom(mediumPool)
	case TierBig, TierLarge:
		return acquireFrom(largePool)
	case TierGreat, TierHuge:
		return acquireFrom(hugePool)
	default: // TierVast, TierGiant
		return acquireFrom(giantPool)
	}
}

// acquireFrom is the shared shape behind acquireTierBuffer's per-tier
// cases: get an indirect index, view its backing array as a []byte via
// Ref (zero-copy), and wrap Put as the storage's release callback.
func acquireFrom[B any](pool *BoundedPool[B]) ([]byte, func([]byte), error) {
	idx, err := pool.Get()
	if err != nil {
		return nil, nil, err
	}
	ref := pool.Ref(idx)
	b := unsafe.Slice((*byte)(unsafe.Pointer(ref)), unsafe.Sizeof(*ref))
	return b, func([]byte) { _ = pool.Put(idx) }, nil
}
