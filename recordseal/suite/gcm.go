package suite

import (
	"github.com/TheusHen/recordseal/recordseal/block"
	"github.com/TheusHen/recordseal/recordseal/codec"
	"github.com/TheusHen/recordseal/recordseal/gcm"
)

// The four AES-GCM suites: both key sizes under both nonce framings.
var (
	// Explicit-nonce framing: 4-byte salt, 8-byte explicit IV on the wire.
	TLS12AES128GCM AEAD = &gcmSuite{
		params: Params{
			ID:              TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			Name:            "TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256",
			KeyBytes:        16,
			IVBytes:         4,
			TagBytes:        gcm.TagSize,
			ExplicitIVBytes: 8,
		},
		mode:    block.AES128,
		framing: explicitFraming,
	}
	TLS12AES256GCM AEAD = &gcmSuite{
		params: Params{
			ID:              TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			Name:            "TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384",
			KeyBytes:        32,
			IVBytes:         4,
			TagBytes:        gcm.TagSize,
			ExplicitIVBytes: 8,
		},
		mode:    block.AES256,
		framing: explicitFraming,
	}

	// Implicit-nonce framing: 12-byte IV, nothing on the wire.
	TLS13AES128GCM AEAD = &gcmSuite{
		params: Params{
			ID:       TLS_AES_128_GCM_SHA256,
			Name:     "TLS_AES_128_GCM_SHA256",
			KeyBytes: 16,
			IVBytes:  gcm.NonceSize,
			TagBytes: gcm.TagSize,
		},
		mode:    block.AES128,
		framing: implicitFraming,
	}
	TLS13AES256GCM AEAD = &gcmSuite{
		params: Params{
			ID:       TLS_AES_256_GCM_SHA384,
			Name:     "TLS_AES_256_GCM_SHA384",
			KeyBytes: 32,
			IVBytes:  gcm.NonceSize,
			TagBytes: gcm.TagSize,
		},
		mode:    block.AES256,
		framing: implicitFraming,
	}
)

type framing int

const (
	implicitFraming framing = iota
	explicitFraming
)

// gcmSuite implements the AEAD contract for AES-GCM. The key-size variants
// differ only in the block-cipher mode; the framing variants differ only
// in nonce assembly.
type gcmSuite struct {
	params  Params
	mode    block.Mode
	framing framing
}

func (s *gcmSuite) Params() Params { return s.params }

func (s *gcmSuite) nonce(staticIV, explicitIV []byte, seq uint64) [gcm.NonceSize]byte {
	if s.framing == explicitFraming {
		return explicitNonce(staticIV, explicitIV)
	}
	return implicitNonce(staticIV, seq)
}

func (s *gcmSuite) Encrypt(key, staticIV, macKey []byte, seq uint64, plaintext, aad []byte) (explicitIV, ciphertext, tag []byte) {
	if s.framing == explicitFraming {
		iv := codec.Uint64BE(seq)
		explicitIV = iv[:]
	}
	nonce := s.nonce(staticIV, explicitIV, seq)

	b := block.New(s.mode, key)
	ciphertext = make([]byte, len(plaintext))
	gcm.NewKeystream(b, nonce).XORKeyStream(ciphertext, plaintext)
	t := gcm.Tag(b, nonce, aad, ciphertext)
	return explicitIV, ciphertext, t[:]
}

func (s *gcmSuite) Decrypt(key, staticIV, explicitIV, macKey []byte, seq uint64, ciphertext []byte, aadForPlaintext AADFunc, tag []byte) ([]byte, bool) {
	nonce := s.nonce(staticIV, explicitIV, seq)

	b := block.New(s.mode, key)
	plaintext := make([]byte, len(ciphertext))
	gcm.NewKeystream(b, nonce).XORKeyStream(plaintext, ciphertext)

	var aad []byte
	if aadForPlaintext != nil {
		aad = aadForPlaintext(plaintext)
	}
	want := gcm.Tag(b, nonce, aad, ciphertext)
	return plaintext, codec.Equal(want[:], tag)
}
