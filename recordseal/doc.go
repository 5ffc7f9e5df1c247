// Package recordseal implements the record-protection layer of a TLS-style
// transport: authenticated encryption (AEAD) applied once per record, built
// from a block cipher in counter mode and a GHASH polynomial authenticator.
//
// The package tree is organised leaves-first:
//
//   - codec: fixed-width integer encoding, block padding, constant-time
//     byte comparison
//   - gf128: GF(2^128) field arithmetic for GHASH
//   - block: the single-block AES collaborator with an explicit key-size mode
//   - gcm: the counter-mode keystream and tag generators
//   - suite: the per-cipher-suite encrypt/decrypt contract and the suite
//     registry (AES-GCM and ChaCha20-Poly1305, explicit and implicit
//     nonce framings)
//   - record: a per-direction wrapper owning the sequence counter and the
//     explicitIV || ciphertext || tag wire layout
//
// Key derivation, handshake and connection lifecycle are out of scope: the
// caller supplies keys, static IVs and sequence numbers, and every
// operation here is a pure function of its arguments.
package recordseal
