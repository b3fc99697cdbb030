// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package iosys

import (
	"net"

	"code.hybscloud.com/cursorbuf"
)

func unixRecvmmsgAvailable() bool { return false }

// SendNonblockingNoSigpipe reports unavailable on non-Linux builds: this
// package has no SO_NOSIGPIPE wiring for BSD/Darwin sockets yet, so
// callers must fall back to WriteAssumeFDIsNonblocking and handle SIGPIPE
// themselves (e.g. via signal.Ignore(syscall.SIGPIPE)).
func SendNonblockingNoSigpipe() (func(t iobuf.ReadNoSeek, fd int) (int, error), bool) {
	return nil, false
}

// SendtoNonblockingNoSigpipe is the sendto(2) counterpart, also
// unavailable on non-Linux builds for the same reason.
func SendtoNonblockingNoSigpipe() (func(t iobuf.ReadNoSeek, fd int, addr net.Addr) (int, error), bool) {
	return nil, false
}
