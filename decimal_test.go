// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf_test

import (
	"math"
	"strconv"
	"testing"

	"code.hybscloud.com/cursorbuf"
)

func TestFillDecimalRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64}
	for _, v := range cases {
		want := strconv.FormatInt(v, 10)
		buf := iobuf.Create(len(want))
		if err := iobuf.FillDecimal(buf, v); err != nil {
			t.Fatalf("FillDecimal(%d): %v", v, err)
		}
		iobuf.FlipLo(buf)
		got, err := iobuf.ConsumeString(buf, len(want))
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("FillDecimal(%d) rendered %q, want %q", v, got, want)
		}
	}
}

func TestFillDecimalMinIntDoesNotOverflow(t *testing.T) {
	want := strconv.FormatInt(math.MinInt64, 10)
	buf := iobuf.Create(len(want))
	if err := iobuf.FillDecimal(buf, math.MinInt64); err != nil {
		t.Fatal(err)
	}
	iobuf.FlipLo(buf)
	got, err := iobuf.ConsumeString(buf, len(want))
	if err != nil {
		t.Fatal(err)
	}
	if got != "-9223372036854775808" {
		t.Fatalf("FillDecimal(MinInt64) = %q, want %q", got, "-9223372036854775808")
	}
}

func TestFillDecimalFailsWhenWindowTooSmall(t *testing.T) {
	buf := iobuf.Create(1)
	if err := iobuf.FillDecimal(buf, 12345); err == nil {
		t.Fatal("expected FillDecimal to fail when the rendered digits do not fit")
	}
	if iobuf.Length(buf) != 1 {
		t.Fatalf("failed FillDecimal mutated length: got %d, want 1 unchanged", iobuf.Length(buf))
	}
}

func TestPokeDecimalReportsWrittenLength(t *testing.T) {
	buf := iobuf.Create(8)
	n, err := iobuf.PokeDecimal(buf, 0, -123)
	if err != nil {
		t.Fatal(err)
	}
	if n != len("-123") {
		t.Fatalf("PokeDecimal returned length %d, want %d", n, len("-123"))
	}
	got, err := iobuf.PeekString(buf, 0, n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "-123" {
		t.Fatalf("PokeDecimal wrote %q, want %q", got, "-123")
	}
	if iobuf.Length(buf) != 8 {
		t.Fatalf("PokeDecimal moved the cursor: Length = %d, want 8 unchanged", iobuf.Length(buf))
	}
}

func TestPokeDecimalMinInt(t *testing.T) {
	buf := iobuf.Create(32)
	n, err := iobuf.PokeDecimal(buf, 0, math.MinInt64)
	if err != nil {
		t.Fatal(err)
	}
	got, err := iobuf.PeekString(buf, 0, n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "-9223372036854775808" {
		t.Fatalf("PokeDecimal(MinInt64) = %q, want %q", got, "-9223372036854775808")
	}
}
