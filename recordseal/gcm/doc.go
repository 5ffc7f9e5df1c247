// Package gcm implements the two halves of the Galois/Counter Mode
// construction used per record: a lazy counter-mode keystream and the
// GHASH-based tag generator. Nonce derivation and suite constants live in
// the suite package; everything here is a pure function of the block
// cipher, nonce and record bytes.
package gcm
