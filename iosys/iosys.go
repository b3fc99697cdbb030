// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package iosys is the syscall-adapter collaborator: thin wrappers over
// golang.org/x/sys/unix that fill or consume an iobuf's window directly
// from a nonblocking file descriptor, via Expert's raw slice access.
// Errors are returned untransformed from the underlying unix call so
// callers can test them with errors.Is against unix.EAGAIN, unix.EINTR,
// and friends.
package iosys

import (
	"net"
	"unsafe"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/cursorbuf"
)

// ReadAssumeFDIsNonblocking reads into t's window at its lower edge from
// fd, which the caller must already have set O_NONBLOCK on, and advances
// t by the number of bytes actually read.
func ReadAssumeFDIsNonblocking(t iobuf.ReadWriteNoSeek, fd int) (int, error) {
	e := iobuf.OfExpert(t)
	n, err := unix.Read(fd, e.Window())
	if n > 0 {
		e.SetLo(e.Lo() + n)
	}
	return n, err
}

// PreadAssumeFDIsNonblocking is ReadAssumeFDIsNonblocking via pread(2),
// leaving the file offset of fd untouched.
func PreadAssumeFDIsNonblocking(t iobuf.ReadWriteNoSeek, fd int, offset int64) (int, error) {
	e := iobuf.OfExpert(t)
	n, err := unix.Pread(fd, e.Window(), offset)
	if n > 0 {
		e.SetLo(e.Lo() + n)
	}
	return n, err
}

// RecvfromAssumeFDIsNonblocking reads a single datagram into t's window
// via recvfrom(2), returning the sender's address alongside the usual
// byte count.
func RecvfromAssumeFDIsNonblocking(t iobuf.ReadWriteNoSeek, fd int) (net.Addr, int, error) {
	e := iobuf.OfExpert(t)
	n, from, err := unix.Recvfrom(fd, e.Window(), 0)
	if n > 0 {
		e.SetLo(e.Lo() + n)
	}
	if err != nil {
		return nil, n, err
	}
	return sockaddrToAddr(from), n, nil
}

// recvmmsgAvailable reports whether this build's GOOS supports
// recvmmsg(2). golang.org/x/sys/unix only implements it on Linux; the
// probe is a package-level value rather than a build-tag-guarded
// function so RecvmmsgAssumeFDIsNonblocking has a single implementation
// across platforms, returning the false availability flag on the rest.
var recvmmsgAvailable = unixRecvmmsgAvailable()

// RecvmmsgAssumeFDIsNonblocking reads up to len(bufs) datagrams in one
// syscall into the corresponding windows of bufs. Sender addresses are
// not collected: each slot of srcs that matches a received datagram is
// set to nil.
// The returned bool reports whether this platform implements recvmmsg at
// all; when false, no datagrams were read and the int is always 0.
func RecvmmsgAssumeFDIsNonblocking(fd int, bufs []iobuf.ReadWriteNoSeek, srcs []net.Addr) (int, bool, error) {
	if !recvmmsgAvailable {
		return 0, false, nil
	}
	experts := make([]iobuf.Expert, len(bufs))
	windows := make([][]byte, len(bufs))
	for i, b := range bufs {
		e := iobuf.OfExpert(b)
		experts[i] = e
		windows[i] = e.Window()
	}
	// IoVecFromBytesSlice is the same scatter/gather descriptor builder
	// iov_uring buffer registration uses; struct iovec's C layout (a
	// pointer then a length) is what unix.Iovec and iobuf.IoVec both
	// mirror, so the array it returns can be addressed directly as
	// []unix.Iovec for the syscall below.
	addr, vecN := iobuf.IoVecFromBytesSlice(windows)
	if vecN == 0 {
		return 0, true, nil
	}
	iovs := unsafe.Slice((*unix.Iovec)(unsafe.Pointer(addr)), vecN)
	msgs := make([]unix.Mmsghdr, len(bufs))
	for i := range msgs {
		msgs[i].Hdr.Iov = &iovs[i]
		msgs[i].Hdr.Iovlen = 1
	}
	n, err := unix.Recvmmsg(fd, msgs, 0, nil)
	for i := 0; i < n; i++ {
		got := int(msgs[i].Len)
		experts[i].SetLo(experts[i].Lo() + got)
		if i < len(srcs) {
			// Per-message source addresses need a msg_name buffer wired
			// into each Msghdr, which this adapter doesn't set up; left
			// nil until a caller actually needs per-datagram senders.
			srcs[i] = nil
		}
	}
	return n, true, err
}

// WriteAssumeFDIsNonblocking writes t's window to fd via write(2),
// advancing t by the number of bytes actually written.
func WriteAssumeFDIsNonblocking(t iobuf.ReadNoSeek, fd int) (int, error) {
	e := iobuf.OfExpert(t)
	n, err := unix.Write(fd, e.Window())
	if n > 0 {
		e.SetLo(e.Lo() + n)
	}
	return n, err
}

// PwriteAssumeFDIsNonblocking is WriteAssumeFDIsNonblocking via
// pwrite(2), leaving fd's file offset untouched.
func PwriteAssumeFDIsNonblocking(t iobuf.ReadNoSeek, fd int, offset int64) (int, error) {
	e := iobuf.OfExpert(t)
	n, err := unix.Pwrite(fd, e.Window(), offset)
	if n > 0 {
		e.SetLo(e.Lo() + n)
	}
	return n, err
}

func sockaddrToAddr(sa unix.Sockaddr) net.Addr {
	switch a := sa.(type) {
	case *unix.SockaddrInet4:
		return &net.UDPAddr{IP: a.Addr[:], Port: a.Port}
	case *unix.SockaddrInet6:
		return &net.UDPAddr{IP: a.Addr[:], Port: a.Port}
	default:
		return nil
	}
}
