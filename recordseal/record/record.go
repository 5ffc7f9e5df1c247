package record

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/TheusHen/recordseal/recordseal/suite"
)

var (
	ErrKeySize          = errors.New("record: key length does not match suite")
	ErrIVSize           = errors.New("record: static IV length does not match suite")
	ErrRecordTooShort   = errors.New("record: record shorter than explicit IV plus tag")
	ErrDecryptionFailed = errors.New("record: decryption failed")
	ErrSequenceOverflow = errors.New("record: sequence number exhausted")
)

// HalfConn protects one direction of a connection under one suite and key.
// Seal and Open each consume the next sequence number, so records must be
// processed in order; the peer's HalfConn for the same direction stays in
// step by construction. A HalfConn is safe for sequential use per
// direction, which is how a record layer drives it.
type HalfConn struct {
	aead     suite.AEAD
	key      []byte
	staticIV []byte
	seq      atomic.Uint64
}

// NewHalfConn validates the key material lengths against the suite's
// constants. This is the single runtime length assertion; beyond this
// boundary lengths are structural invariants.
func NewHalfConn(s suite.AEAD, key, staticIV []byte) (*HalfConn, error) {
	p := s.Params()
	if len(key) != p.KeyBytes {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrKeySize, len(key), p.KeyBytes)
	}
	if len(staticIV) != p.IVBytes {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIVSize, len(staticIV), p.IVBytes)
	}
	return &HalfConn{
		aead:     s,
		key:      append([]byte(nil), key...),
		staticIV: append([]byte(nil), staticIV...),
	}, nil
}

// Suite returns the cipher suite this direction was built with.
func (h *HalfConn) Suite() suite.AEAD { return h.aead }

// Overhead is the number of bytes Seal adds to a plaintext.
func (h *HalfConn) Overhead() int {
	p := h.aead.Params()
	return p.ExplicitIVBytes + p.TagBytes
}

// Sequence returns the next sequence number to be consumed.
func (h *HalfConn) Sequence() uint64 { return h.seq.Load() }

// next consumes one sequence number. The counter must never wrap: reusing
// a (key, nonce) pair breaks the AEAD entirely, so once the counter is
// exhausted every further call fails rather than recycling a value.
func (h *HalfConn) next() (uint64, error) {
	for {
		seq := h.seq.Load()
		if seq == ^uint64(0) {
			return 0, ErrSequenceOverflow
		}
		if h.seq.CompareAndSwap(seq, seq+1) {
			return seq, nil
		}
	}
}

// Seal protects plaintext as the next outgoing record and returns the wire
// form explicitIV || ciphertext || tag (the explicit IV is empty for
// implicit-nonce suites).
func (h *HalfConn) Seal(plaintext, aad []byte) ([]byte, error) {
	seq, err := h.next()
	if err != nil {
		return nil, err
	}
	explicitIV, ct, tag := h.aead.Encrypt(h.key, h.staticIV, nil, seq, plaintext, aad)
	out := make([]byte, 0, len(explicitIV)+len(ct)+len(tag))
	out = append(out, explicitIV...)
	out = append(out, ct...)
	out = append(out, tag...)
	return out, nil
}

// Open recovers the next incoming record from its wire form. A false
// authenticity result surfaces as ErrDecryptionFailed and the plaintext is
// withheld; the caller should treat that as fatal for the connection.
func (h *HalfConn) Open(rec []byte, aadForPlaintext suite.AADFunc) ([]byte, error) {
	p := h.aead.Params()
	if len(rec) < p.ExplicitIVBytes+p.TagBytes {
		return nil, ErrRecordTooShort
	}
	seq, err := h.next()
	if err != nil {
		return nil, err
	}
	explicitIV := rec[:p.ExplicitIVBytes]
	ciphertext := rec[p.ExplicitIVBytes : len(rec)-p.TagBytes]
	tag := rec[len(rec)-p.TagBytes:]

	plaintext, ok := h.aead.Decrypt(h.key, h.staticIV, explicitIV, nil, seq, ciphertext, aadForPlaintext, tag)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
