// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

// The four blit namespaces below all perform the same bounded memmove
// between two iobufs; they differ only in which side's cursor, if any,
// they advance. Overlapping source and destination within the same
// bigstring are handled correctly because the underlying copy is Go's
// built-in copy, which has memmove semantics.

// Blit copies len bytes from src's window at srcPos to dst's window at
// dstPos, advancing neither cursor. Neither side needs seek permission.
var Blit blitNamespace

type blitNamespace struct{}

func blitRange(src Reader, dst Writer, srcPos, dstPos, length int) ([]byte, []byte, error) {
	s, err := src.iocore().peekSlice(srcPos, length, true)
	if err != nil {
		return nil, nil, err
	}
	d, err := dst.iocore().pokeSlice(dstPos, length, true)
	if err != nil {
		return nil, nil, err
	}
	return s, d, nil
}

// Copy is Blit's bounded copy. Out-of-range src or dst ranges fail before
// any bytes move.
func (blitNamespace) Copy(src Reader, dst Writer, srcPos, dstPos, length int) error {
	s, d, err := blitRange(src, dst, srcPos, dstPos, length)
	if err != nil {
		return err
	}
	copy(d, s)
	return nil
}

// Copyo is Copy with length defaulting to Length(src)-srcPos when passed
// as -1; srcPos and dstPos are used as given.
func (blitNamespace) Copyo(src Reader, dst Writer, srcPos, dstPos, length int) error {
	if length < 0 {
		length = Length(src) - srcPos
	}
	return Blit.Copy(src, dst, srcPos, dstPos, length)
}

// UnsafeCopy is Copy with the bounds check elided.
func (blitNamespace) UnsafeCopy(src Reader, dst Writer, srcPos, dstPos, length int) {
	s, _ := src.iocore().peekSlice(srcPos, length, false)
	d, _ := dst.iocore().pokeSlice(dstPos, length, false)
	copy(d, s)
}

// Sub returns a new iobuf over a fresh copy of src's [srcPos, srcPos+len)
// range — unlike SubShared, this allocates independent backing storage.
func (blitNamespace) Sub(src Reader, srcPos, length int) T {
	b, err := src.iocore().peekSlice(srcPos, length, true)
	if err != nil {
		panic(err)
	}
	out := make([]byte, length)
	copy(out, b)
	return OfBigstring(out, 0, length)
}

// Subo is Sub with length defaulting to Length(src)-srcPos when passed -1.
func (blitNamespace) Subo(src Reader, srcPos, length int) T {
	if length < 0 {
		length = Length(src) - srcPos
	}
	return Blit.Sub(src, srcPos, length)
}

// BlitConsume copies from src's window at its lower edge, advancing src's
// lo by length; dst's cursor (if it has one) is untouched.
var BlitConsume blitConsumeNamespace

type blitConsumeNamespace struct{}

// Copy copies length bytes from src's lower window edge into dst at
// dstPos, advancing src's lo by length.
func (blitConsumeNamespace) Copy(src Seeker, dst Writer, dstPos, length int) error {
	s, err := src.iocore().consumeSlice(length, true)
	if err != nil {
		return err
	}
	d, err := dst.iocore().pokeSlice(dstPos, length, true)
	if err != nil {
		// src was already advanced by consumeSlice; per spec this module
		// advances src unconditionally on success of its own bounds check,
		// so a dst failure here still leaves src's cursor moved. Undo it
		// to honor "fail before any bytes move" for the operation overall.
		src.iocore().lo -= length
		return err
	}
	copy(d, s)
	return nil
}

// Copyo is Copy with length defaulting to Length(src) when passed as -1;
// dstPos is used as given.
func (blitConsumeNamespace) Copyo(src Seeker, dst Writer, dstPos, length int) error {
	if length < 0 {
		length = Length(src)
	}
	return BlitConsume.Copy(src, dst, dstPos, length)
}

// UnsafeCopy is Copy with the bounds check elided.
func (blitConsumeNamespace) UnsafeCopy(src Seeker, dst Writer, dstPos, length int) {
	s, _ := src.iocore().consumeSlice(length, false)
	d, _ := dst.iocore().pokeSlice(dstPos, length, false)
	copy(d, s)
}

// Sub consumes length bytes from src into a freshly allocated iobuf,
// advancing src's lo by length.
func (blitConsumeNamespace) Sub(src Seeker, length int) (T, error) {
	s, err := src.iocore().consumeSlice(length, true)
	if err != nil {
		return T{}, err
	}
	out := make([]byte, length)
	copy(out, s)
	return OfBigstring(out, 0, length), nil
}

// Subo is Sub with length defaulting to Length(src) when passed -1.
func (blitConsumeNamespace) Subo(src Seeker, length int) (T, error) {
	if length < 0 {
		length = Length(src)
	}
	return BlitConsume.Sub(src, length)
}

// BlitFill copies into dst's window at its lower edge, advancing dst's lo
// by length; src's cursor (if it has one) is untouched.
var BlitFill blitFillNamespace

type blitFillNamespace struct{}

// Copy copies length bytes from src at srcPos into dst's lower window
// edge, advancing dst's lo by length.
func (blitFillNamespace) Copy(src Reader, dst WriteSeeker, srcPos, length int) error {
	s, err := src.iocore().peekSlice(srcPos, length, true)
	if err != nil {
		return err
	}
	d, err := dst.iocore().fillSlice(length, true)
	if err != nil {
		return err
	}
	copy(d, s)
	return nil
}

// Copyo is Copy with length defaulting to Length(src)-srcPos when passed
// as -1; srcPos is used as given.
func (blitFillNamespace) Copyo(src Reader, dst WriteSeeker, srcPos, length int) error {
	if length < 0 {
		length = Length(src) - srcPos
	}
	return BlitFill.Copy(src, dst, srcPos, length)
}

// UnsafeCopy is Copy with the bounds check elided.
func (blitFillNamespace) UnsafeCopy(src Reader, dst WriteSeeker, srcPos, length int) {
	s, _ := src.iocore().peekSlice(srcPos, length, false)
	d, _ := dst.iocore().fillSlice(length, false)
	copy(d, s)
}

// BlitConsumeAndFill copies from src's lower window edge into dst's lower
// window edge, advancing both cursors by length.
var BlitConsumeAndFill blitConsumeAndFillNamespace

type blitConsumeAndFillNamespace struct{}

// Copy copies length bytes, advancing both src.lo and dst.lo. If dst lacks
// room after src's check passes, src's cursor is rewound so the overall
// operation fails as though no bytes moved.
func (blitConsumeAndFillNamespace) Copy(src Seeker, dst WriteSeeker, length int) error {
	s, err := src.iocore().consumeSlice(length, true)
	if err != nil {
		return err
	}
	d, err := dst.iocore().fillSlice(length, true)
	if err != nil {
		src.iocore().lo -= length
		return err
	}
	copy(d, s)
	return nil
}

// Copyo is Copy with length defaulting to Length(src) when passed as -1.
func (blitConsumeAndFillNamespace) Copyo(src Seeker, dst WriteSeeker, length int) error {
	if length < 0 {
		length = Length(src)
	}
	return BlitConsumeAndFill.Copy(src, dst, length)
}

// UnsafeCopy is Copy with the bounds check elided.
func (blitConsumeAndFillNamespace) UnsafeCopy(src Seeker, dst WriteSeeker, length int) {
	s, _ := src.iocore().consumeSlice(length, false)
	d, _ := dst.iocore().fillSlice(length, false)
	copy(d, s)
}
