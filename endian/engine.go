// Package endian maps save-data byte orders to encoding/binary engines.
//
// The save container stores its header word and keystream table in the byte order
// of the edition that wrote it. Everything that reads or writes those words goes
// through an EndianEngine obtained from this package:
//
//	engine := endian.ForByteOrder(format.LittleEndian)
//	pos := engine.Uint32(data[0:4]) & 0x1FF
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"

	"github.com/arloliu/xcxsave/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForByteOrder returns the engine for a save byte order.
// UnknownByteOrder falls back to big-endian, the original edition's order and the
// order used by all record fields inside the decoded payload.
func ForByteOrder(order format.ByteOrder) EndianEngine {
	if order == format.LittleEndian {
		return GetLittleEndianEngine()
	}

	return GetBigEndianEngine()
}

// ByteOrderOf is the inverse of ForByteOrder for the two standard engines.
func ByteOrderOf(engine EndianEngine) format.ByteOrder {
	switch engine {
	case binary.LittleEndian:
		return format.LittleEndian
	case binary.BigEndian:
		return format.BigEndian
	default:
		return format.UnknownByteOrder
	}
}
