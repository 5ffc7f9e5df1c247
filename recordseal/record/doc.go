// Package record applies a cipher suite to one direction of a connection.
// It owns the per-direction sequence number and the wire layout
// explicitIV || ciphertext || tag; the AEAD operations themselves remain
// pure functions in the suite package.
package record
