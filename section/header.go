package section

import (
	"github.com/arloliu/xcxsave/crypt"
	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
)

// SaveHeader is the fixed 16-byte header at the start of a decoded save buffer.
type SaveHeader struct {
	// KeyInfo holds the entropy bits and the 9-bit initial key position.
	KeyInfo uint32 // byte offset 0-3
	// Marker is 1 when the header was decoded with the right byte order.
	Marker uint32 // byte offset 4-7
	// DataSize is the total decoded buffer length recorded by the game.
	DataSize uint32 // byte offset 8-11
	// Checksum is the low word of the xxHash64 of the payload.
	Checksum uint32 // byte offset 12-15

	// Order is the byte order the words were read in.
	Order format.ByteOrder
}

// NewSaveHeader creates a header for a decoded buffer of size bytes.
// The checksum is left zero; it is filled in by FixChecksum or WriteHeader.
func NewSaveHeader(order format.ByteOrder, keyInfo uint32, size int) *SaveHeader {
	return &SaveHeader{
		KeyInfo:  keyInfo,
		Marker:   MarkerValue,
		DataSize: uint32(size), //nolint: gosec
		Order:    order,
	}
}

// Parse parses the header from a byte slice using h.Order.
//
// Returns:
//   - error: FormatError wrapping ErrInvalidHeaderSize if data is shorter than 16 bytes
func (h *SaveHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.NewFormatError(errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.ForByteOrder(h.Order)
	h.KeyInfo = engine.Uint32(data[KeyInfoOffset:MarkerOffset])
	h.Marker = engine.Uint32(data[MarkerOffset:DataSizeOffset])
	h.DataSize = engine.Uint32(data[DataSizeOffset:ChecksumOffset])
	h.Checksum = engine.Uint32(data[ChecksumOffset:HeaderSize])

	return nil
}

// Bytes serializes the header into a new 16-byte slice.
func (h *SaveHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.Put(b)

	return b
}

// Put writes the header into the first 16 bytes of dst.
func (h *SaveHeader) Put(dst []byte) {
	engine := endian.ForByteOrder(h.Order)
	engine.PutUint32(dst[KeyInfoOffset:MarkerOffset], h.KeyInfo)
	engine.PutUint32(dst[MarkerOffset:DataSizeOffset], h.Marker)
	engine.PutUint32(dst[DataSizeOffset:ChecksumOffset], h.DataSize)
	engine.PutUint32(dst[ChecksumOffset:HeaderSize], h.Checksum)
}

// KeyPosition returns the initial key position stored in KeyInfo.
func (h *SaveHeader) KeyPosition() crypt.KeyPosition {
	return crypt.KeyPosition(h.KeyInfo & crypt.KeyPositionMask)
}

// HasValidMarker reports whether the marker word decoded to MarkerValue.
func (h *SaveHeader) HasValidMarker() bool {
	return h.Marker == MarkerValue
}

// ParseSaveHeader parses the header of a decoded buffer.
// When order is format.UnknownByteOrder it is read from the marker word.
//
// Returns:
//   - SaveHeader: Parsed header, with Order set to the resolved byte order
//   - error: FormatError for a short buffer or an unresolvable byte order
func ParseSaveHeader(decoded []byte, order format.ByteOrder) (SaveHeader, error) {
	order, err := resolveOrder(decoded, order)
	if err != nil {
		return SaveHeader{}, err
	}

	h := SaveHeader{Order: order}
	if err := h.Parse(decoded); err != nil {
		return SaveHeader{}, err
	}

	return h, nil
}

func resolveOrder(decoded []byte, order format.ByteOrder) (format.ByteOrder, error) {
	if len(decoded) < HeaderSize {
		return order, errs.NewFormatError(errs.ErrInvalidHeaderSize, HeaderSize, len(decoded))
	}
	if order.IsKnown() {
		return order, nil
	}

	order = crypt.DecodedByteOrder(decoded)
	if !order.IsKnown() {
		return order, &errs.FormatError{Err: errs.ErrFormatNotRecognized}
	}

	return order, nil
}
