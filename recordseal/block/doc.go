// Package block wraps the AES block cipher behind an explicit key-size
// mode. The mode is threaded through every construction site instead of
// being inferred from the key length, so a wrong-sized key is caught at
// the cipher boundary rather than silently selecting a different schedule.
package block
