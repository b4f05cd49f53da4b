// Package snapshot stores decoded save buffers as compressed, fingerprinted
// snapshots and keeps them in a local pebble database.
//
// # Container Format
//
// A snapshot is a fixed 56-byte header, an optional UTF-8 label and the
// compressed payload. All header fields are little-endian:
//
//	offset  size  field
//	0       4     magic "XCXS"
//	4       1     format version (1)
//	5       1     byte order of the save the payload came from
//	6       1     compression type of the payload
//	7       1     flags
//	8       20    ksuid identifier
//	28      8     creation time, Unix microseconds
//	36      4     uncompressed payload length
//	40      8     xxHash64 of the uncompressed payload
//	48      4     compressed payload length
//	52      2     label length
//	54      2     reserved, zero
//
// Unpack verifies the payload length and fingerprint, so a snapshot that
// decompresses cleanly but differs from what was packed is still rejected
// with errs.ErrSnapshotChecksum.
//
// # Identifiers
//
// Identifiers are KSUIDs. Their first four bytes are a timestamp, which makes
// the byte-wise key order of the Store chronological.
//
// # Backup Names
//
// Tokens collects the values the backup name pattern may reference, such as
// {name}, {level} or {play_time}, and FormatName substitutes them. Unknown
// fields are kept as-is without their format spec.
package snapshot
