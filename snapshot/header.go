package snapshot

import (
	"time"
	"unicode/utf8"

	"github.com/segmentio/ksuid"

	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
)

const (
	// HeaderSize is the size of the fixed snapshot header.
	HeaderSize = 56
	// Version is the container version written by Pack.
	Version = 1
	// MaxLabelSize bounds the label stored after the header.
	MaxLabelSize = 1024
)

// Magic identifies a snapshot container.
var Magic = [4]byte{'X', 'C', 'X', 'S'}

// Flag bits stored at offset 7.
const (
	// FlagEncoded marks a payload that is still in its encoded, on-disk form.
	FlagEncoded uint8 = 1 << iota
	// FlagChecksumValid records that the decoded save passed checksum
	// validation when it was packed.
	FlagChecksumValid

	knownFlags = FlagEncoded | FlagChecksumValid
)

var le = endian.GetLittleEndianEngine()

var validByteOrders = map[format.ByteOrder]struct{}{
	format.UnknownByteOrder: {},
	format.BigEndian:        {},
	format.LittleEndian:     {},
}

var validCompressions = map[format.CompressionType]struct{}{
	format.CompressionNone: {},
	format.CompressionZstd: {},
	format.CompressionS2:   {},
	format.CompressionLZ4:  {},
}

// Header describes a packed snapshot.
type Header struct {
	Version     uint8
	ByteOrder   format.ByteOrder
	Compression format.CompressionType
	Flags       uint8
	ID          ksuid.KSUID
	// CreatedAt is stored in Unix microseconds.
	CreatedAt      int64
	OriginalSize   uint32
	Fingerprint    uint64
	CompressedSize uint32
	Label          string
}

// Size returns the total packed size described by the header.
func (h *Header) Size() int {
	return HeaderSize + len(h.Label) + int(h.CompressedSize)
}

// Created returns the creation time.
func (h *Header) Created() time.Time {
	return time.UnixMicro(h.CreatedAt)
}

// IsEncoded reports whether FlagEncoded is set.
func (h *Header) IsEncoded() bool {
	return h.Flags&FlagEncoded != 0
}

// HasValidChecksum reports whether FlagChecksumValid is set.
func (h *Header) HasValidChecksum() bool {
	return h.Flags&FlagChecksumValid != 0
}

// Parse parses the fixed header and the label that follows it.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.NewFormatError(errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}
	if [4]byte(data[0:4]) != Magic {
		return errs.ErrInvalidMagicNumber
	}

	h.Version = data[4]
	if h.Version != Version {
		return errs.ErrSnapshotVersion
	}

	h.ByteOrder = format.ByteOrder(data[5])
	if _, ok := validByteOrders[h.ByteOrder]; !ok {
		return errs.ErrInvalidFieldData
	}

	h.Compression = format.CompressionType(data[6])
	if _, ok := validCompressions[h.Compression]; !ok {
		return errs.ErrInvalidFieldData
	}

	h.Flags = data[7]
	if h.Flags&^knownFlags != 0 {
		return errs.ErrInvalidFieldData
	}

	id, err := ksuid.FromBytes(data[8:28])
	if err != nil {
		return err
	}
	h.ID = id

	h.CreatedAt = int64(le.Uint64(data[28:36])) //nolint: gosec
	h.OriginalSize = le.Uint32(data[36:40])
	h.Fingerprint = le.Uint64(data[40:48])
	h.CompressedSize = le.Uint32(data[48:52])

	labelLen := int(le.Uint16(data[52:54]))
	if labelLen > MaxLabelSize {
		return errs.ErrInvalidFieldData
	}
	if len(data) < HeaderSize+labelLen {
		return errs.NewFormatError(errs.ErrSnapshotTruncated, HeaderSize+labelLen, len(data))
	}

	label := data[HeaderSize : HeaderSize+labelLen]
	if !utf8.Valid(label) {
		return errs.ErrInvalidFieldData
	}
	h.Label = string(label)

	return nil
}

// Bytes serializes the fixed header followed by the label.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize+len(h.Label)))
}

// AppendTo appends the serialized header and label to b.
func (h *Header) AppendTo(b []byte) []byte {
	b = append(b, Magic[:]...)
	b = append(b, h.Version, byte(h.ByteOrder), byte(h.Compression), h.Flags)
	b = append(b, h.ID[:]...)
	b = le.AppendUint64(b, uint64(h.CreatedAt)) //nolint: gosec
	b = le.AppendUint32(b, h.OriginalSize)
	b = le.AppendUint64(b, h.Fingerprint)
	b = le.AppendUint32(b, h.CompressedSize)
	b = le.AppendUint16(b, uint16(len(h.Label))) //nolint: gosec
	b = append(b, 0, 0)

	return append(b, h.Label...)
}

// ParseHeader parses the header of a packed snapshot.
func ParseHeader(data []byte) (Header, error) {
	h := Header{}
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}
