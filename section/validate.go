package section

import (
	"slices"

	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/internal/hash"
)

// Checksum computes the checksum of a decoded buffer's payload (bytes 16..end).
// Buffers shorter than the header hash an empty payload.
func Checksum(buf []byte) uint32 {
	if len(buf) < HeaderSize {
		return hash.Checksum32(nil)
	}

	return hash.Checksum32(buf[PayloadOffset:])
}

// VerifyDataSize reports whether the length of buf equals the data size recorded in
// its header. It returns false for buffers shorter than the header or with an
// unresolvable byte order.
func VerifyDataSize(buf []byte, order format.ByteOrder) bool {
	h, err := ParseSaveHeader(buf, order)
	if err != nil {
		return false
	}

	return int64(h.DataSize) == int64(len(buf))
}

// VerifyChecksum reports whether the checksum recorded in the header of buf matches
// the checksum of its payload.
func VerifyChecksum(buf []byte, order format.ByteOrder) bool {
	h, err := ParseSaveHeader(buf, order)
	if err != nil {
		return false
	}

	return h.Checksum == Checksum(buf)
}

// FixChecksum returns a copy of buf with the header checksum recomputed.
//
// It must only be called on decoded buffers whose size check passes; otherwise a
// FormatError wrapping ErrDataSizeMismatch is returned and no copy is made. Fixing an
// already correct buffer returns an identical copy.
func FixChecksum(buf []byte, order format.ByteOrder) ([]byte, error) {
	h, err := ParseSaveHeader(buf, order)
	if err != nil {
		return nil, err
	}
	if int64(h.DataSize) != int64(len(buf)) {
		return nil, errs.NewFormatError(errs.ErrDataSizeMismatch, int(h.DataSize), len(buf))
	}

	out := slices.Clone(buf)
	endian.ForByteOrder(h.Order).PutUint32(out[ChecksumOffset:HeaderSize], Checksum(out))

	return out, nil
}

// WriteHeader stamps marker, data size and checksum into a decoded buffer in place,
// keeping its key info word. It is used when building a buffer from scratch.
func WriteHeader(buf []byte, order format.ByteOrder) error {
	if len(buf) < HeaderSize {
		return errs.NewFormatError(errs.ErrInvalidHeaderSize, HeaderSize, len(buf))
	}
	if !order.IsKnown() {
		return &errs.FormatError{Err: errs.ErrFormatNotRecognized}
	}

	engine := endian.ForByteOrder(order)
	h := NewSaveHeader(order, engine.Uint32(buf[KeyInfoOffset:MarkerOffset]), len(buf))
	h.Checksum = Checksum(buf)
	h.Put(buf)

	return nil
}

// Validate runs the size check and then the checksum check on a decoded buffer.
//
// Returns:
//   - error: FormatError for a short buffer, unknown order or size mismatch;
//     ChecksumError when only the checksum is stale
func Validate(buf []byte, order format.ByteOrder) error {
	h, err := ParseSaveHeader(buf, order)
	if err != nil {
		return err
	}
	if int64(h.DataSize) != int64(len(buf)) {
		return errs.NewFormatError(errs.ErrDataSizeMismatch, int(h.DataSize), len(buf))
	}

	if computed := Checksum(buf); computed != h.Checksum {
		return &errs.ChecksumError{Order: h.Order, Stored: h.Checksum, Computed: computed}
	}

	return nil
}

// IsKnownSize reports whether n is one of KnownSizes or one of extra.
func IsKnownSize(n int, extra ...int) bool {
	return slices.Contains(KnownSizes, n) || slices.Contains(extra, n)
}

// CheckContainerSize returns a FormatError wrapping ErrUnknownContainerSize when n
// is not a known container size.
func CheckContainerSize(n int, extra ...int) error {
	if IsKnownSize(n, extra...) {
		return nil
	}

	return errs.NewFormatError(errs.ErrUnknownContainerSize, GameDataSize, n)
}
