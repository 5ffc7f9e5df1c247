package suite

import (
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/TheusHen/recordseal/recordseal/codec"
)

// ChaCha20-Poly1305 suites. Both the TLS 1.3 suite and the RFC 7905
// TLS 1.2 suite use the implicit nonce framing (the 7905 design predates
// TLS 1.3 but already dropped the wire IV).
var (
	TLS12ChaCha20Poly1305 AEAD = &chachaSuite{
		params: Params{
			ID:       TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
			Name:     "TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256",
			KeyBytes: chacha20poly1305.KeySize,
			IVBytes:  chacha20poly1305.NonceSize,
			TagBytes: chacha20poly1305.Overhead,
		},
	}
	TLS13ChaCha20Poly1305 AEAD = &chachaSuite{
		params: Params{
			ID:       TLS_CHACHA20_POLY1305_SHA256,
			Name:     "TLS_CHACHA20_POLY1305_SHA256",
			KeyBytes: chacha20poly1305.KeySize,
			IVBytes:  chacha20poly1305.NonceSize,
			TagBytes: chacha20poly1305.Overhead,
		},
	}
)

// chachaSuite implements the AEAD contract on top of x/crypto. It keeps
// the GCM suites' decrypt shape: keystream-decrypt first so the AAD can be
// derived from the recovered plaintext, then verify the tag in constant
// time.
type chachaSuite struct {
	params Params
}

func (s *chachaSuite) Params() Params { return s.params }

func (s *chachaSuite) Encrypt(key, staticIV, macKey []byte, seq uint64, plaintext, aad []byte) (explicitIV, ciphertext, tag []byte) {
	nonce := implicitNonce(staticIV, seq)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		panic("suite: " + err.Error())
	}
	sealed := aead.Seal(nil, nonce[:], plaintext, aad)
	return nil, sealed[:len(plaintext)], sealed[len(plaintext):]
}

func (s *chachaSuite) Decrypt(key, staticIV, explicitIV, macKey []byte, seq uint64, ciphertext []byte, aadForPlaintext AADFunc, tag []byte) ([]byte, bool) {
	nonce := implicitNonce(staticIV, seq)

	// Counter 0 keys the Poly1305 authenticator; the payload stream
	// starts at counter 1.
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce[:])
	if err != nil {
		panic("suite: " + err.Error())
	}
	stream.SetCounter(1)
	plaintext := make([]byte, len(ciphertext))
	stream.XORKeyStream(plaintext, ciphertext)

	var aad []byte
	if aadForPlaintext != nil {
		aad = aadForPlaintext(plaintext)
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		panic("suite: " + err.Error())
	}
	sealed := aead.Seal(nil, nonce[:], plaintext, aad)
	return plaintext, codec.Equal(sealed[len(plaintext):], tag)
}
