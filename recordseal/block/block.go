package block

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// Size is the AES block size in bytes.
const Size = 16

// Mode selects the AES key schedule.
type Mode int

const (
	AES128 Mode = iota
	AES256
)

// KeySize returns the key length in bytes the mode requires.
func (m Mode) KeySize() int {
	switch m {
	case AES128:
		return 16
	case AES256:
		return 32
	}
	panic(fmt.Sprintf("block: unknown mode %d", int(m)))
}

func (m Mode) String() string {
	switch m {
	case AES128:
		return "AES-128"
	case AES256:
		return "AES-256"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// New returns the single-block cipher for mode. Key length is a structural
// invariant of the call site (suite constants fix it), so a mismatch
// panics rather than returning an error.
func New(mode Mode, key []byte) cipher.Block {
	if len(key) != mode.KeySize() {
		panic(fmt.Sprintf("block: %s key must be %d bytes, got %d",
			mode, mode.KeySize(), len(key)))
	}
	b, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	return b
}

// EncryptBlock is the one-shot form: a single block encrypted under key.
func EncryptBlock(mode Mode, key []byte, src [Size]byte) [Size]byte {
	var dst [Size]byte
	New(mode, key).Encrypt(dst[:], src[:])
	return dst
}
