package dual

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Wire form: the real component immediately followed by the derivative
// component, each little-endian at the scalar type's native width. Framing,
// versioning, and endianness negotiation belong to the surrounding channel.

// EncodedSize returns the byte length of one encoded Dual[T].
func EncodedSize[T Float]() int {
	return 2 * inferDataType[T]().Size()
}

// Encode serializes z to its wire form.
func Encode[T Float](z Dual[T]) []byte {
	buf := make([]byte, 0, EncodedSize[T]())
	buf = appendScalar(buf, z.re)
	return appendScalar(buf, z.du)
}

// Decode reconstructs a dual from its wire form.
func Decode[T Float](data []byte) (Dual[T], error) {
	size := inferDataType[T]().Size()
	if len(data) < 2*size {
		return Dual[T]{}, fmt.Errorf("decode dual: %w: have %d bytes, want %d",
			ErrShortBuffer, len(data), 2*size)
	}
	return Dual[T]{
		re: decodeScalar[T](data[:size]),
		du: decodeScalar[T](data[size : 2*size]),
	}, nil
}

// Write streams the wire form of z to w.
func Write[T Float](w io.Writer, z Dual[T]) error {
	if _, err := w.Write(Encode(z)); err != nil {
		return fmt.Errorf("write dual: %w", err)
	}
	return nil
}

// Read consumes one encoded dual from r. A truncated stream surfaces as a
// wrapped io.ErrUnexpectedEOF rather than a partial value.
func Read[T Float](r io.Reader) (Dual[T], error) {
	buf := make([]byte, EncodedSize[T]())
	if _, err := io.ReadFull(r, buf); err != nil {
		return Dual[T]{}, fmt.Errorf("read dual: %w", err)
	}
	return Decode[T](buf)
}

func appendScalar[T Float](buf []byte, x T) []byte {
	if inferDataType[T]() == Float32 {
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(x)))
	}
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(float64(x)))
}

func decodeScalar[T Float](data []byte) T {
	if inferDataType[T]() == Float32 {
		return T(math.Float32frombits(binary.LittleEndian.Uint32(data)))
	}
	return T(math.Float64frombits(binary.LittleEndian.Uint64(data)))
}
