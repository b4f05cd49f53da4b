package crypt

import (
	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/keystream"
)

const (
	// KeyInfoSize is the size of the untransformed key info word at the start of a buffer.
	KeyInfoSize = 4
	// KeyPositionMask selects the key position bits of the key info word.
	KeyPositionMask = 0x1FF
	// EntropyMask selects the free bits of the key info word.
	EntropyMask = ^uint32(KeyPositionMask)
	// MaxKeyPosition is the largest valid key position.
	MaxKeyPosition = keystream.KeySize - 1
)

// KeyPosition is a cyclic index into a serialized keystream.
type KeyPosition uint16

// Valid reports whether p indexes a 512-byte key.
func (p KeyPosition) Valid() bool {
	return p <= MaxKeyPosition
}

// KeyInfo returns the raw key info word of data in the given byte order.
func KeyInfo(data []byte, order format.ByteOrder) (uint32, error) {
	if len(data) < KeyInfoSize {
		return 0, errs.NewFormatError(errs.ErrInvalidHeaderSize, KeyInfoSize, len(data))
	}

	return endian.ForByteOrder(order).Uint32(data[:KeyInfoSize]), nil
}

// InitialKeyPosition reads the key position stored in the first four bytes of data.
func InitialKeyPosition(data []byte, order format.ByteOrder) (KeyPosition, error) {
	info, err := KeyInfo(data, order)
	if err != nil {
		return 0, err
	}

	return KeyPosition(info & KeyPositionMask), nil
}

// PutKeyInfo writes (entropy &^ 0x1FF) | pos into the first four bytes of dst.
// dst must be at least KeyInfoSize bytes long.
func PutKeyInfo(dst []byte, order format.ByteOrder, entropy uint32, pos KeyPosition) {
	word := (entropy & EntropyMask) | (uint32(pos) & KeyPositionMask)
	endian.ForByteOrder(order).PutUint32(dst[:KeyInfoSize], word)
}
