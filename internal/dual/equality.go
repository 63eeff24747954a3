package dual

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Eq reports componentwise IEEE equality: NaN components compare unequal,
// +0 and -0 compare equal.
func Eq[T Float](z, w Dual[T]) bool {
	return z.re == w.re && z.du == w.du
}

// EqTotal reports componentwise bit equality. Unlike Eq it is reflexive
// (NaN equals itself) and distinguishes +0 from -0, which is the relation
// the hash contract is defined over: EqTotal(z, w) implies Hash(z) == Hash(w).
func EqTotal[T Float](z, w Dual[T]) bool {
	return bits(z.re) == bits(w.re) && bits(z.du) == bits(w.du)
}

// EqReal reports whether z equals the plain real x: z must be real-valued
// and its real part must bit-equal x. The relation is symmetric, so it
// serves both operand orders.
func EqReal[T Float](z Dual[T], x T) bool {
	return z.RealValued() && bits(z.re) == bits(x)
}

// Hash returns a hash consistent with EqTotal. A real-valued dual hashes
// identically to its plain real (see HashScalar), so duals and reals can
// share a container key space.
func Hash[T Float](z Dual[T]) uint64 {
	if z.RealValued() {
		return HashScalar(z.re)
	}
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], bits(z.re))
	binary.LittleEndian.PutUint64(buf[8:16], bits(z.du))
	h.Write(buf[:])
	return h.Sum64()
}

// HashScalar returns the hash of a plain real under the same scheme as Hash.
func HashScalar[T Float](x T) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits(x))
	h.Write(buf[:])
	return h.Sum64()
}

// bits returns the IEEE bit pattern of x widened to 64 bits. Widening keeps
// float32 and float64 encodings of the same value distinct, which EqTotal
// wants, while staying deterministic per instantiation.
func bits[T Float](x T) uint64 {
	if inferDataType[T]() == Float32 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}
