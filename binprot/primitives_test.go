// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binprot_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/cursorbuf/binprot"
)

func TestInt64LERoundTrip(t *testing.T) {
	dst := make([]byte, 8)
	n, err := binprot.Int64LEWriter(dst, 0, -42)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("Int64LEWriter wrote %d bytes, want 8", n)
	}
	if binprot.Int64LESizer(-42) != 8 {
		t.Fatalf("Int64LESizer = %d, want 8", binprot.Int64LESizer(-42))
	}

	got, n, err := binprot.Int64LEReader(dst, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != -42 || n != 8 {
		t.Fatalf("Int64LEReader = (%d, %d), want (-42, 8)", got, n)
	}
}

func TestInt64LEShortBuffer(t *testing.T) {
	short := make([]byte, 4)
	if _, _, err := binprot.Int64LEReader(short, 0); !errors.Is(err, binprot.ErrShortBuffer) {
		t.Fatalf("Int64LEReader on a 4-byte buffer: err = %v, want ErrShortBuffer", err)
	}
	if _, err := binprot.Int64LEWriter(short, 0, 1); !errors.Is(err, binprot.ErrShortBuffer) {
		t.Fatalf("Int64LEWriter into a 4-byte buffer: err = %v, want ErrShortBuffer", err)
	}
}

func TestBytesWriterAndSizer(t *testing.T) {
	v := []byte("payload")
	if binprot.BytesSizer(v) != len(v) {
		t.Fatalf("BytesSizer = %d, want %d", binprot.BytesSizer(v), len(v))
	}
	dst := make([]byte, len(v))
	n, err := binprot.BytesWriter(dst, 0, v)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(v) || string(dst) != string(v) {
		t.Fatalf("BytesWriter copied %q (%d bytes), want %q", dst, n, v)
	}
}
