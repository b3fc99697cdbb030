// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexdump_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/cursorbuf"
	"code.hybscloud.com/cursorbuf/hexdump"
)

func TestToStringHumWindowContainsPrintableBytes(t *testing.T) {
	buf := iobuf.OfString("Hello, hexdump!")
	out := hexdump.ToStringHum(buf, hexdump.Window)

	if !strings.Contains(out, "Hello, hexdump!") {
		t.Fatalf("hex dump ASCII column missing source text, got:\n%s", out)
	}
	if !strings.Contains(out, "48656c6c6f") {
		t.Fatalf("hex dump hex column missing expected bytes, got:\n%s", out)
	}
}

func TestBoundsStringer(t *testing.T) {
	cases := map[hexdump.Bounds]string{
		hexdump.Window: "window",
		hexdump.Limits: "limits",
		hexdump.Whole:  "whole",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Fatalf("Bounds(%d).String() = %q, want %q", int(b), got, want)
		}
	}
}

func TestToStringHumWholeIncludesBytesOutsideWindow(t *testing.T) {
	buf := iobuf.Create(4)
	if err := iobuf.PokeU8(buf, 0, 0xFF); err != nil {
		t.Fatal(err)
	}
	if err := iobuf.Advance(buf, 4); err != nil {
		t.Fatal(err)
	}
	window := hexdump.ToStringHum(buf, hexdump.Window)
	whole := hexdump.ToStringHum(buf, hexdump.Whole)

	if window != "" {
		t.Fatalf("expected an empty window dump after exhausting all 4 bytes, got:\n%s", window)
	}
	if !strings.Contains(whole, "ff") {
		t.Fatalf("Whole dump should still surface the byte outside the window, got:\n%s", whole)
	}
}
