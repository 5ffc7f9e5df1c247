package gcm

import (
	"crypto/cipher"

	"github.com/TheusHen/recordseal/recordseal/codec"
	"github.com/TheusHen/recordseal/recordseal/gf128"
)

// TagSize is the authentication tag length in bytes, for every message
// length including empty ones.
const TagSize = 16

// Tag computes the GCM authentication tag binding aad and ciphertext under
// the given block cipher and nonce:
//
//	H   = E(0^128)
//	acc = GHASH_H(pad16(aad) || pad16(ciphertext) || len64(aad) || len64(ciphertext))
//	tag = E(nonce || bigEndian32(1)) XOR acc
//
// The length fields are bit lengths; zero-length aad or ciphertext encodes
// as 0 and still contributes a length block.
func Tag(block cipher.Block, nonce [NonceSize]byte, aad, ciphertext []byte) [TagSize]byte {
	var zero, h [BlockSize]byte
	block.Encrypt(h[:], zero[:])
	subkey := gf128.FromBytes(h)

	acc := gf128.Zero()
	acc = fold(subkey, acc, codec.Pad(BlockSize, aad))
	acc = fold(subkey, acc, codec.Pad(BlockSize, ciphertext))

	aadBits := codec.Uint64BE(uint64(len(aad)) * 8)
	ctBits := codec.Uint64BE(uint64(len(ciphertext)) * 8)
	var lengths [BlockSize]byte
	copy(lengths[:8], aadBits[:])
	copy(lengths[8:], ctBits[:])
	acc = fold(subkey, acc, lengths[:])

	var j0, mask [BlockSize]byte
	copy(j0[:NonceSize], nonce[:])
	j0[BlockSize-1] = 1
	block.Encrypt(mask[:], j0[:])

	return acc.Xor(gf128.FromBytes(mask)).Bytes()
}

// fold absorbs whole 16-byte blocks into the GHASH accumulator.
func fold(h, acc gf128.Element, blocks []byte) gf128.Element {
	for len(blocks) > 0 {
		var blk [BlockSize]byte
		copy(blk[:], blocks[:BlockSize])
		acc = gf128.Mul(h, acc.Xor(gf128.FromBytes(blk)))
		blocks = blocks[BlockSize:]
	}
	return acc
}
