// Package errs defines the errors returned by the save codec packages.
//
// Sentinel errors identify the failure class and are matched with errors.Is.
// The typed errors carry the details (expected and actual sizes, offsets, byte order)
// and unwrap to their sentinel, so both styles work:
//
//	var fe *errs.FieldDecodeError
//	if errors.As(err, &fe) { ... }
//	if errors.Is(err, errs.ErrBufferTooShort) { ... }
package errs

import (
	"errors"
	"fmt"

	"github.com/arloliu/xcxsave/format"
)

var (
	// Format errors
	ErrInvalidHeaderSize    = errors.New("save header too short")
	ErrFormatNotRecognized  = errors.New("save format not recognized")
	ErrDataSizeMismatch     = errors.New("decoded data size does not match header")
	ErrUnknownContainerSize = errors.New("buffer size matches no known container")
	ErrInvalidKeySize       = errors.New("key must be exactly 512 bytes")
	ErrInvalidKeyPosition   = errors.New("key position out of range")

	// Key recovery
	ErrKeyNotFound = errors.New("no repeating key window found")

	// Checksum
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// Structured decoding
	ErrBufferTooShort   = errors.New("buffer shorter than record")
	ErrInvalidFieldData = errors.New("invalid field data")

	// Snapshots
	ErrInvalidMagicNumber = errors.New("invalid snapshot magic number")
	ErrSnapshotVersion    = errors.New("unsupported snapshot version")
	ErrSnapshotChecksum   = errors.New("snapshot payload checksum mismatch")
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrSnapshotTruncated  = errors.New("snapshot payload truncated")
	ErrInvalidNamePattern = errors.New("invalid backup name pattern")

	// Buffer comparison
	ErrLengthMismatch = errors.New("buffers differ in length")
)

// FormatError reports a buffer that is not a recognizable save container.
type FormatError struct {
	Err      error // one of the format sentinels
	Expected int   // expected size, 0 when not applicable
	Actual   int   // actual size, 0 when not applicable
}

func (e *FormatError) Error() string {
	if e.Expected != 0 || e.Actual != 0 {
		return fmt.Sprintf("%v: expected %d bytes, got %d", e.Err, e.Expected, e.Actual)
	}

	return e.Err.Error()
}

func (e *FormatError) Unwrap() error { return e.Err }

// NewFormatError returns a FormatError for a size mismatch.
func NewFormatError(err error, expected, actual int) *FormatError {
	return &FormatError{Err: err, Expected: expected, Actual: actual}
}

// KeyRecoveryError reports that the key scan exhausted the buffer.
type KeyRecoveryError struct {
	Size    int // size of the scanned buffer
	Windows int // number of windows compared
}

func (e *KeyRecoveryError) Error() string {
	return fmt.Sprintf("%v after %d windows over %d bytes", ErrKeyNotFound, e.Windows, e.Size)
}

func (e *KeyRecoveryError) Unwrap() error { return ErrKeyNotFound }

// ChecksumError reports a decoded buffer whose embedded checksum is stale.
// The data may still be valid; section.FixChecksum rewrites it.
type ChecksumError struct {
	Order    format.ByteOrder
	Stored   uint32
	Computed uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%v (%s): stored 0x%08x, computed 0x%08x", ErrChecksumMismatch, e.Order, e.Stored, e.Computed)
}

func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }

// FieldDecodeError reports a record decoder that was handed too few bytes.
type FieldDecodeError struct {
	Record   string
	Offset   int
	Expected int
	Actual   int
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("decode %s at 0x%06x: %v: expected %d bytes, got %d",
		e.Record, e.Offset, ErrBufferTooShort, e.Expected, e.Actual)
}

func (e *FieldDecodeError) Unwrap() error { return ErrBufferTooShort }

// NewFieldDecodeError returns a FieldDecodeError for record at offset.
func NewFieldDecodeError(record string, offset, expected, actual int) *FieldDecodeError {
	return &FieldDecodeError{Record: record, Offset: offset, Expected: expected, Actual: actual}
}
