// Package hash wraps xxHash64 for save checksums and snapshot fingerprints.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of data.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Checksum32 folds the xxHash64 of data to 32 bits by keeping the low word.
// It is the value stored in the decoded save header checksum field.
func Checksum32(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

