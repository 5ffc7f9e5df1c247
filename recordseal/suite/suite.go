package suite

import (
	"github.com/TheusHen/recordseal/recordseal/codec"
	"github.com/TheusHen/recordseal/recordseal/gcm"
)

// IANA cipher suite identifiers implemented by this package.
const (
	TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256       uint16 = 0xc02f
	TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384       uint16 = 0xc030
	TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256 uint16 = 0xcca8
	TLS_AES_128_GCM_SHA256                      uint16 = 0x1301
	TLS_AES_256_GCM_SHA384                      uint16 = 0x1302
	TLS_CHACHA20_POLY1305_SHA256                uint16 = 0x1303
)

// Params fixes the byte-length contract of one suite. The values never
// vary at runtime; the record layer sizes its buffers from them.
type Params struct {
	ID   uint16
	Name string

	KeyBytes        int
	IVBytes         int // static IV (salt) fixed at key derivation
	TagBytes        int // always 16 for the AEAD suites
	MACKeyBytes     int // always 0: AEAD suites carry no separate MAC key
	ExplicitIVBytes int // 0 for implicit framing, 8 for explicit framing
}

// AADFunc derives the associated data from recovered plaintext. Decryption
// takes a function rather than bytes because some framings authenticate
// content that is only known after decryption (e.g. a trailing inner
// content type).
type AADFunc func(plaintext []byte) []byte

// AEAD is the record protection contract shared by every suite.
//
// Encrypt always succeeds: key and static IV lengths are fixed by the
// suite and enforced at the record-layer construction boundary, and there
// is no other rejectable input shape. Decrypt never fails through control
// flow either; authenticity is reported as the boolean, the comparison is
// constant-time, and the caller must discard the plaintext whenever the
// boolean is false.
type AEAD interface {
	Params() Params

	// Encrypt protects one record. macKey is unused by the AEAD suites
	// and kept for contract symmetry with MAC-based suites.
	Encrypt(key, staticIV, macKey []byte, seq uint64, plaintext, aad []byte) (explicitIV, ciphertext, tag []byte)

	// Decrypt recovers one record. For explicit framing the nonce comes
	// from the supplied explicitIV, not from seq. aadForPlaintext may be
	// nil when the record has no associated data.
	Decrypt(key, staticIV, explicitIV, macKey []byte, seq uint64, ciphertext []byte, aadForPlaintext AADFunc, tag []byte) (plaintext []byte, authenticated bool)
}

// ByID returns the suite registered under the IANA identifier.
func ByID(id uint16) (AEAD, bool) {
	switch id {
	case TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256:
		return TLS12AES128GCM, true
	case TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384:
		return TLS12AES256GCM, true
	case TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256:
		return TLS12ChaCha20Poly1305, true
	case TLS_AES_128_GCM_SHA256:
		return TLS13AES128GCM, true
	case TLS_AES_256_GCM_SHA384:
		return TLS13AES256GCM, true
	case TLS_CHACHA20_POLY1305_SHA256:
		return TLS13ChaCha20Poly1305, true
	}
	return nil, false
}

// Supported lists every implemented suite in stable order.
func Supported() []AEAD {
	return []AEAD{
		TLS12AES128GCM,
		TLS12AES256GCM,
		TLS12ChaCha20Poly1305,
		TLS13AES128GCM,
		TLS13AES256GCM,
		TLS13ChaCha20Poly1305,
	}
}

// implicitNonce left-pads the sequence number to 12 bytes and XORs it into
// the static IV.
func implicitNonce(staticIV []byte, seq uint64) [gcm.NonceSize]byte {
	var nonce [gcm.NonceSize]byte
	copy(nonce[:], staticIV)
	seqBytes := codec.Uint64BE(seq)
	for i, b := range seqBytes {
		nonce[gcm.NonceSize-8+i] ^= b
	}
	return nonce
}

// explicitNonce concatenates the 4-byte salt with the 8-byte wire IV.
func explicitNonce(staticIV, explicitIV []byte) [gcm.NonceSize]byte {
	var nonce [gcm.NonceSize]byte
	copy(nonce[:4], staticIV)
	copy(nonce[4:], explicitIV)
	return nonce
}
