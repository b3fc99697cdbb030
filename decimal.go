// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import "strconv"

// strconvAppendInt renders i as its ASCII decimal representation, with no
// separators or terminator. strconv.AppendInt already produces the
// standard "-<abs>" form for math.MinInt64 without overflow (it formats
// from the two's-complement value directly rather than negating first),
// so no special-casing is needed here.
func strconvAppendInt(i int64) []byte {
	return strconv.AppendInt(nil, i, 10)
}
