// Package crypt implements the save container's XOR transform and the logic that
// finds the parameters needed to run it.
//
// # Transform
//
// The first four bytes of a container (the key info word) are never transformed.
// Every following byte at payload index i is combined with the payload index, the
// serialized keystream and 0xFF:
//
//	out[4+i] = in[4+i] ^ byte(i) ^ key[pos] ^ 0xFF
//	pos = (pos + 1) % 512
//
// The operation is an involution, so the same call encrypts and decrypts.
//
// # Key Info Word
//
// The key info word is a uint32 in the edition's byte order. Its low 9 bits hold the
// initial key position; the remaining bits are random entropy written on encode
// and ignored on decode.
//
// # Detection
//
// DetectByteOrder decodes the first 16 bytes under each byte order and accepts the
// order whose decoded bytes 4..8 hold the uint32 value 1 in that order. It returns
// format.UnknownByteOrder when neither matches.
//
// GuessKey is the fallback for buffers without that marker, such as raw memory
// snapshots of unknown alignment. It scans 512-byte windows and returns the first
// window seen three times in a row. The heuristic assumes runs of plaintext that
// cancel to a stable pattern and can be fooled by genuinely repeating data, so
// prefer header detection whenever the marker is present.
package crypt
