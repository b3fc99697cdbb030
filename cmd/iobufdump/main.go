// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command iobufdump reads a file into an iobuf and prints a hex dump and
// CRC32 checksum of its contents, exercising the core, crc32x, and
// hexdump packages end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"code.hybscloud.com/cursorbuf"
	"code.hybscloud.com/cursorbuf/crc32x"
	"code.hybscloud.com/cursorbuf/hexdump"
	"code.hybscloud.com/cursorbuf/iosys"
)

func main() {
	boundsFlag := flag.String("bounds", "window", "region to dump: window, limits, or whole")
	flag.Parse()

	if envPageSize := os.Getenv("IOBUF_PAGE_SIZE"); envPageSize != "" {
		if n, err := strconv.Atoi(envPageSize); err == nil && n > 0 {
			iobuf.SetPageSize(n)
		}
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: iobufdump [-bounds window|limits|whole] <file>")
		os.Exit(2)
	}

	t, err := readIntoBuf(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "iobufdump:", err)
		os.Exit(1)
	}

	ro := t.ReadOnly()
	fmt.Printf("length=%d crc32=%08x\n", iobuf.Length(ro), crc32x.Sum(ro))
	fmt.Print(hexdump.ToStringHum(ro, parseBounds(*boundsFlag)))
}

func parseBounds(s string) hexdump.Bounds {
	switch s {
	case "limits":
		return hexdump.Limits
	case "whole":
		return hexdump.Whole
	default:
		return hexdump.Window
	}
}

func readIntoBuf(path string) (iobuf.T, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return iobuf.T{}, err
	}
	t := iobuf.Create(int(fi.Size()))

	f, err := os.Open(path)
	if err != nil {
		return iobuf.T{}, err
	}
	defer f.Close()

	fd := int(f.Fd())
	var offset int64
	for iobuf.Length(t.ReadOnly()) > 0 {
		n, err := iosys.PreadAssumeFDIsNonblocking(t.NoSeek(), fd, offset)
		if err != nil {
			return iobuf.T{}, err
		}
		if n == 0 {
			break
		}
		offset += int64(n)
	}
	iobuf.FlipLo(t)
	return t, nil
}
