// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package iobuf provides a non-moving, contiguous byte region for
// zero-copy network and file I/O, with bounds-checked cursor and
// positional accessors, aliasable sub-views, and a statically enforced
// capability system over what a given handle may do with the region.
//
// # Geometry
//
// Every iobuf tracks five numbers: a backing array buf, and four indices
// lo_min ≤ lo ≤ hi ≤ hi_max, all bounded by len(buf). [lo, hi) is the
// current window — what Consume/Fill/Peek/Poke may touch right now.
// [lo_min, hi_max] are the current limits — how far Reset, Rewind, and
// the flip operations may re-expose. Limits only ever shrink, via Narrow.
//
//	buf:      [ ...................................... ]
//	indices:       lo_min      lo          hi      hi_max
//	                 |           |           |         |
//	                 └─ limits ──┤  window   ├─ limits ─┘
//
// # Capabilities
//
// Four handle types share the same underlying geometry but differ in
// what the type system lets them do with it: T (read_write, seek),
// ReadSeek (read-only, seek), ReadWriteNoSeek (read_write, no seek), and
// ReadNoSeek (read-only, no seek). Coercion only ever weakens a handle
// (T.ReadOnly, T.NoSeek, and so on); there is no way back. Accessors are
// free functions parameterized over the minimal interface they need
// (Reader, Writer, Seeker, WriteSeeker) rather than methods on each
// concrete type, so e.g. Peek works on any of the four handles while
// Fill requires write and seek together.
//
// # Pooled backing storage
//
// CreatePooled draws its backing array from one of several lazily
// initialized, lock-free bounded pools instead of allocating fresh for
// every call — useful on hot paths that otherwise churn the allocator
// with short-lived request/response buffers. The pool machinery
// (BoundedPool, the twelve buffer-size tiers Pico through Titan, and
// IoVec for scatter/gather syscalls) is adapted from a lock-free
// multi-producer multi-consumer queue design (Nikolaev, "A Scalable,
// Portable, and Memory-Efficient Lock-Free FIFO Queue", 2019):
// lock-free CAS-based Get/Put, a fixed capacity rounded to a power of
// two, and cache-line-aligned entries to avoid false sharing between
// concurrent producers and consumers.
//
// # Dependencies
//
// iobuf depends on:
//   - iox: semantic error types (ErrWouldBlock) surfaced by the pool's
//     non-blocking Get/Put
//   - spin: spin-wait primitives used while a pool is briefly contended
//   - golang.org/x/sys/unix (via the iosys subpackage): the nonblocking
//     read/write/recv/send syscall adapters
package iobuf
