package gcm

import (
	"crypto/cipher"
	"crypto/subtle"

	"github.com/TheusHen/recordseal/recordseal/codec"
)

const (
	// NonceSize is the nonce length every suite derives, in bytes.
	NonceSize = 12
	// BlockSize is the block cipher's block size in bytes.
	BlockSize = 16
)

// Keystream generates the counter-mode byte stream for one record:
// successive encryptions of nonce || bigEndian32(counter) for
// counter = 2, 3, ... Counter value 1 is reserved for the tag mask.
// Blocks are produced on demand, so the stream is
// effectively unbounded and a consumer taking n bytes costs ceil(n/16)
// block encryptions.
type Keystream struct {
	block   cipher.Block
	counter [BlockSize]byte
	buf     [BlockSize]byte
	avail   int
}

// NewKeystream returns the keystream for one (key, nonce) pair, positioned
// at counter value 2.
func NewKeystream(block cipher.Block, nonce [NonceSize]byte) *Keystream {
	k := &Keystream{block: block}
	copy(k.counter[:NonceSize], nonce[:])
	codec.PutUint32BE(k.counter[NonceSize:], 2)
	return k
}

// XORKeyStream XORs src with the next len(src) keystream bytes into dst.
// dst and src must have the same length and may alias exactly.
func (k *Keystream) XORKeyStream(dst, src []byte) {
	if len(dst) != len(src) {
		panic("gcm: keystream output and input lengths differ")
	}
	off := 0
	for off < len(src) {
		if k.avail == 0 {
			k.block.Encrypt(k.buf[:], k.counter[:])
			incCounter(&k.counter)
			k.avail = BlockSize
		}
		n := subtle.XORBytes(dst[off:], src[off:], k.buf[BlockSize-k.avail:])
		k.avail -= n
		off += n
	}
}

// incCounter increments the trailing 32-bit counter, wrapping mod 2^32 and
// leaving the nonce prefix untouched.
func incCounter(c *[BlockSize]byte) {
	codec.PutUint32BE(c[NonceSize:], codec.ReadUint32BE(c[NonceSize:])+1)
}
