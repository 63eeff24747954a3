// Copyright 2026 Forward ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"io"

	"github.com/forward-ml/dual/internal/dual"
)

// EncodedSize returns the byte length of one encoded Dual[T]: two
// little-endian components at the scalar type's native width.
func EncodedSize[T Float]() int {
	return dual.EncodedSize[T]()
}

// Encode serializes z as its real component followed by its derivative
// component.
func Encode[T Float](z Dual[T]) []byte {
	return dual.Encode(z)
}

// Decode reconstructs a dual from its encoded form.
func Decode[T Float](data []byte) (Dual[T], error) {
	return dual.Decode[T](data)
}

// Write streams the encoded form of z to w.
func Write[T Float](w io.Writer, z Dual[T]) error {
	return dual.Write(w, z)
}

// Read consumes one encoded dual from r.
func Read[T Float](r io.Reader) (Dual[T], error) {
	return dual.Read[T](r)
}

// Render writes z's formatted token sequence to w; compact selects the
// terser number formatting.
func Render[T Float](w io.Writer, z Dual[T], compact bool) error {
	return dual.Render(w, z, compact)
}
