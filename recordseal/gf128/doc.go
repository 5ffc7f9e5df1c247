// Package gf128 implements arithmetic in GF(2^128) with the GCM reduction
// polynomial x^128 + x^7 + x^2 + x + 1. It is used both for the hash
// subkey H and for the running GHASH accumulator.
package gf128
