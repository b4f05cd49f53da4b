package crypt

import (
	"bytes"

	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/keystream"
)

const (
	// DetectionWindow is the number of leading bytes decoded by DetectByteOrder.
	DetectionWindow = 16
	// MarkerOffset is the offset of the format marker in a decoded buffer.
	MarkerOffset = 4
	// MarkerValue is the decoded value of the format marker word.
	MarkerValue = 1
)

// Marker returns the decoded marker bytes for order: 00 00 00 01 for big-endian and
// 01 00 00 00 for little-endian.
func Marker(order format.ByteOrder) []byte {
	return endian.ForByteOrder(order).AppendUint32(nil, MarkerValue)
}

// DetectByteOrder determines the byte order of an encoded buffer from its header.
// It returns format.UnknownByteOrder when no order yields the format marker, which
// includes buffers shorter than 8 bytes.
func DetectByteOrder(data []byte) format.ByteOrder {
	if len(data) < MarkerOffset+4 {
		return format.UnknownByteOrder
	}

	header := data[:min(len(data), DetectionWindow)]
	scratch := make([]byte, len(header))
	for _, order := range format.ByteOrders {
		pos, _ := InitialKeyPosition(header, order)
		TransformInto(scratch, header, keystream.Serialize(order), pos)
		if bytes.Equal(scratch[MarkerOffset:MarkerOffset+4], Marker(order)) {
			return order
		}
	}

	return format.UnknownByteOrder
}

// MustDetectByteOrder is DetectByteOrder returning a FormatError instead of
// format.UnknownByteOrder.
func MustDetectByteOrder(data []byte) (format.ByteOrder, error) {
	order := DetectByteOrder(data)
	if order == format.UnknownByteOrder {
		return order, &errs.FormatError{Err: errs.ErrFormatNotRecognized}
	}

	return order, nil
}

// DecodedByteOrder reads the byte order of an already decoded buffer from its
// format marker.
func DecodedByteOrder(decoded []byte) format.ByteOrder {
	if len(decoded) < MarkerOffset+4 {
		return format.UnknownByteOrder
	}

	marker := decoded[MarkerOffset : MarkerOffset+4]
	for _, order := range format.ByteOrders {
		if bytes.Equal(marker, Marker(order)) {
			return order
		}
	}

	return format.UnknownByteOrder
}
