package codec

import (
	"crypto/subtle"
	"encoding/binary"
)

// Uint32BE encodes v as 4 big-endian bytes.
func Uint32BE(v uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b
}

// Uint64BE encodes v as 8 big-endian bytes.
func Uint64BE(v uint64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b
}

// Uint32LE encodes v as 4 little-endian bytes.
func Uint32LE(v uint32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b
}

// Uint64LE encodes v as 8 little-endian bytes.
func Uint64LE(v uint64) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b
}

// PutUint32BE writes v into the first 4 bytes of b as big-endian.
func PutUint32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// PutUint64BE writes v into the first 8 bytes of b as big-endian.
func PutUint64BE(b []byte, v uint64) {
	binary.BigEndian.PutUint64(b, v)
}

// PutUint32LE writes v into the first 4 bytes of b as little-endian.
func PutUint32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// PutUint64LE writes v into the first 8 bytes of b as little-endian.
func PutUint64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// ReadUint32BE decodes the first 4 bytes of b as big-endian.
func ReadUint32BE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// ReadUint64BE decodes the first 8 bytes of b as big-endian.
func ReadUint64BE(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// ReadUint32LE decodes the first 4 bytes of b as little-endian.
func ReadUint32LE(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// ReadUint64LE decodes the first 8 bytes of b as little-endian.
func ReadUint64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// Pad extends b with zero bytes until its length is a multiple of
// blockSize. Aligned input (including empty input) is returned unchanged,
// as is any input when blockSize is 0. The input's backing array is never
// written to.
func Pad(blockSize int, b []byte) []byte {
	if blockSize == 0 {
		return b
	}
	rem := len(b) % blockSize
	if rem == 0 {
		return b
	}
	return append(b[:len(b):len(b)], make([]byte, blockSize-rem)...)
}

// Equal reports whether a and b are identical byte sequences. The
// comparison examines every byte regardless of earlier mismatches, so the
// timing reveals nothing about where two equal-length inputs differ.
// Sequences of different length are never equal; lengths here are public
// (tag sizes are suite constants).
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
