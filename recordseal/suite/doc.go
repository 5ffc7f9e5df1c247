// Package suite defines the per-cipher-suite record protection contract
// and its implementations. Each suite fixes the byte lengths of key,
// static IV, tag and explicit IV, and pairs an Encrypt/Decrypt operation
// that the record layer invokes once per record.
//
// Two nonce framings exist:
//
//   - implicit (TLS 1.3 and RFC 7905 style): the 12-byte nonce is the
//     static IV XORed with the big-endian sequence number, nothing travels
//     on the wire;
//   - explicit (TLS 1.2 style): the big-endian sequence number is
//     transmitted as an 8-byte explicit IV and appended to a 4-byte salt.
//
// Both sides of a connection must derive nonces identically; reusing a
// (key, nonce) pair is catastrophic and is the caller's responsibility to
// prevent by never reusing sequence numbers.
package suite
