// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crc32x_test

import (
	"testing"

	"code.hybscloud.com/cursorbuf"
	"code.hybscloud.com/cursorbuf/crc32x"
)

func TestSumMatchesSumBytes(t *testing.T) {
	buf := iobuf.OfString("the quick brown fox")
	want := crc32x.SumBytes([]byte("the quick brown fox"))
	if got := crc32x.Sum(buf); got != want {
		t.Fatalf("Sum(buf) = %#x, want %#x", got, want)
	}
	if got := crc32x.Sum64(buf); got != uint64(want) {
		t.Fatalf("Sum64(buf) = %#x, want %#x", got, uint64(want))
	}
}

func TestCastagnoliDiffersFromIEEE(t *testing.T) {
	buf := iobuf.OfString("the quick brown fox")
	if crc32x.Sum(buf) == crc32x.Castagnoli(buf) {
		t.Fatal("IEEE and Castagnoli checksums collided; expected them to differ for this input")
	}
}

func TestRunningAccumulatesAcrossWindows(t *testing.T) {
	wantSum := crc32x.SumBytes([]byte("helloworld"))

	left := iobuf.OfString("hello")
	right := iobuf.OfString("world")

	r := crc32x.NewRunning()
	r.Write(left)
	r.Write(right)

	if r.Sum32() != wantSum {
		t.Fatalf("Running over split windows = %#x, want %#x (matching Sum of the concatenation)", r.Sum32(), wantSum)
	}
}
