// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package iosys

import (
	"net"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/cursorbuf"
)

func unixRecvmmsgAvailable() bool { return true }

// SendNonblockingNoSigpipe returns a sender that writes t's window to fd
// via send(2) with MSG_NOSIGNAL, so a peer that has closed its end
// surfaces as EPIPE rather than raising SIGPIPE, and the bool reporting
// that this platform supports the no-SIGPIPE send path.
func SendNonblockingNoSigpipe() (func(t iobuf.ReadNoSeek, fd int) (int, error), bool) {
	return func(t iobuf.ReadNoSeek, fd int) (int, error) {
		e := iobuf.OfExpert(t)
		n, err := unix.Send(fd, e.Window(), unix.MSG_NOSIGNAL)
		if n > 0 {
			e.SetLo(e.Lo() + n)
		}
		return n, err
	}, true
}

// SendtoNonblockingNoSigpipe is SendNonblockingNoSigpipe's sendto(2)
// counterpart for unconnected sockets.
func SendtoNonblockingNoSigpipe() (func(t iobuf.ReadNoSeek, fd int, addr net.Addr) (int, error), bool) {
	return func(t iobuf.ReadNoSeek, fd int, addr net.Addr) (int, error) {
		sa, err := addrToSockaddr(addr)
		if err != nil {
			return 0, err
		}
		e := iobuf.OfExpert(t)
		w := e.Window()
		err = unix.Sendto(fd, w, unix.MSG_NOSIGNAL, sa)
		if err != nil {
			return 0, err
		}
		e.SetLo(e.Lo() + len(w))
		return len(w), nil
	}, true
}

func addrToSockaddr(addr net.Addr) (unix.Sockaddr, error) {
	udp, ok := addr.(*net.UDPAddr)
	if !ok {
		return nil, unix.EAFNOSUPPORT
	}
	if ip4 := udp.IP.To4(); ip4 != nil {
		var sa unix.SockaddrInet4
		sa.Port = udp.Port
		copy(sa.Addr[:], ip4)
		return &sa, nil
	}
	var sa unix.SockaddrInet6
	sa.Port = udp.Port
	copy(sa.Addr[:], udp.IP.To16())
	return &sa, nil
}
