// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hexdump is the human-readable dumper collaborator: a hex+ASCII
// rendering of an iobuf's bytes, with no bit-exact wire contract.
package hexdump

import (
	"encoding/hex"
	"strconv"
	"strings"

	"code.hybscloud.com/cursorbuf"
)

// Bounds selects which region of an iobuf ToStringHum renders.
type Bounds int

const (
	// Window renders only the currently readable/writable region.
	Window Bounds = iota
	// Limits renders everything reachable by a future Reset.
	Limits
	// Whole renders the entire backing array, including bytes outside
	// the current limits.
	Whole
)

func (b Bounds) String() string {
	switch b {
	case Window:
		return "window"
	case Limits:
		return "limits"
	case Whole:
		return "whole"
	default:
		return "unknown"
	}
}

const bytesPerLine = 16

// ToStringHum renders t as a multi-line hex+ASCII dump scoped to bounds.
func ToStringHum(t iobuf.ReadSeek, bounds Bounds) string {
	e := iobuf.OfExpert(t)
	switch bounds {
	case Window:
		return dump(e.Buf(), e.Lo(), e.Hi())
	case Limits:
		return dump(e.Buf(), e.LoMin(), e.HiMax())
	default:
		return dump(e.Buf(), 0, len(e.Buf()))
	}
}

// dump renders buf[lo:hi] one line per 16 bytes, in the style of
// hexdump -C: an offset column (relative to lo), the hex bytes, and
// their printable-ASCII rendering with non-printable bytes shown as '.'.
func dump(buf []byte, lo, hi int) string {
	region := buf[lo:hi]
	var sb strings.Builder
	for off := 0; off < len(region); off += bytesPerLine {
		end := off + bytesPerLine
		if end > len(region) {
			end = len(region)
		}
		line := region[off:end]

		sb.WriteString(pad(strconv.FormatInt(int64(off), 16), 8))
		sb.WriteString("  ")
		sb.WriteString(hex.EncodeToString(line))
		sb.WriteString(strings.Repeat("  ", bytesPerLine-len(line)))
		sb.WriteString("  |")
		for _, c := range line {
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
