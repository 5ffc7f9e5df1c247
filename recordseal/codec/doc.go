// Package codec provides the byte-level utilities shared by the record
// protection code: fixed-width integer encoding, zero-padding to a block
// boundary, and constant-time byte comparison.
package codec
