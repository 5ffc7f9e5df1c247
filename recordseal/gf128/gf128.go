package gf128

import "encoding/binary"

// Element is a value in GF(2^128). Following the GCM specification the
// bits are stored in reverse order: the coefficient of x^0 is the most
// significant bit of low, the coefficient of x^127 the least significant
// bit of high.
type Element struct {
	low, high uint64
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity (the polynomial 1).
func One() Element {
	return Element{low: 1 << 63}
}

// FromBytes interprets 16 bytes as a field element.
func FromBytes(b [16]byte) Element {
	return Element{
		low:  binary.BigEndian.Uint64(b[:8]),
		high: binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes serialises the element back to 16 bytes.
func (e Element) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], e.low)
	binary.BigEndian.PutUint64(b[8:], e.high)
	return b
}

// Xor returns e + o, which in a binary field is the bitwise XOR.
func (e Element) Xor(o Element) Element {
	return Element{low: e.low ^ o.low, high: e.high ^ o.high}
}

// double returns e multiplied by x. Because of the reversed bit order this
// is a right shift; overflow of the x^127 coefficient reduces by the field
// polynomial, which in this representation is the constant 0xe1 << 56
// folded into the low half.
func double(e Element) Element {
	msbSet := e.high&1 == 1
	d := Element{
		low:  e.low >> 1,
		high: e.high>>1 | e.low<<63,
	}
	if msbSet {
		d.low ^= 0xe100000000000000
	}
	return d
}

// Mul returns the field product of x and y.
func Mul(x, y Element) Element {
	var z Element
	v := x
	for i := 0; i < 128; i++ {
		var bit uint64
		if i < 64 {
			bit = (y.low >> (63 - i)) & 1
		} else {
			bit = (y.high >> (127 - i)) & 1
		}
		if bit == 1 {
			z = z.Xor(v)
		}
		v = double(v)
	}
	return z
}
