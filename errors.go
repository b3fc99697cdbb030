// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package iobuf

import "errors"

// ErrOutOfBounds is returned when an accessor, blit, or bound mutator is
// asked for a range that does not fit inside the current window or limits.
// It is always reported before any byte is transferred or any index is
// mutated.
var ErrOutOfBounds = errors.New("iobuf: out of bounds")

// ErrIncompleteFrame is returned by ConsumeBinProt when the window holds
// fewer bytes than the frame's length prefix declares. lo is left
// untouched so the caller can retry once more bytes have arrived.
var ErrIncompleteFrame = errors.New("iobuf: incomplete frame")
