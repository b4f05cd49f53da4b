// Package section defines the fixed layout of a decoded save header and the
// checksum/size validator that guards it.
//
// A decoded save buffer starts with a 16-byte header. Every word is stored in the
// byte order of the edition that wrote the file; everything after the header is
// game-defined record data read by the record package.
//
// # Header Format
//
//	Bytes  | Field     | Type   | Description
//	-------|-----------|--------|------------------------------------------------
//	0-3    | KeyInfo   | uint32 | Entropy bits + 9-bit key position, never transformed
//	4-7    | Marker    | uint32 | Always 1; identifies the byte order after decoding
//	8-11   | DataSize  | uint32 | Total decoded buffer length in bytes
//	12-15  | Checksum  | uint32 | Low 32 bits of xxHash64 over bytes 16..end
//
// # Validation
//
// The validator works on decoded buffers only. A size mismatch means the buffer is
// foreign or still encoded and is reported as a *errs.FormatError. A checksum
// mismatch on a size-valid buffer means the payload was edited; it is reported as a
// *errs.ChecksumError and repaired with FixChecksum:
//
//	if err := section.Validate(buf, order); errors.Is(err, errs.ErrChecksumMismatch) {
//	    buf, err = section.FixChecksum(buf, order)
//	}
//
// Passing format.UnknownByteOrder to any function makes it read the order from
// the header marker.
//
// # Container Sizes
//
// KnownSizes lists the container sizes accepted by IsKnownSize. The game data
// container (gamedata.bin) is GameDataSize bytes.
package section
