package utilities

import (
	"fmt"
	"hash/fnv"
)

// Fingerprint returns the 64-bit FNV-1a hash of data.
func Fingerprint(data []byte) uint64 {
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// FingerprintHex is Fingerprint rendered as 16 lowercase hex digits.
func FingerprintHex(data []byte) string {
	return fmt.Sprintf("%016x", Fingerprint(data))
}
