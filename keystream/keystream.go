// Package keystream holds the constant XOR key material used by the save container.
//
// The key is a table of 256 unsigned 16-bit words. Both editions of the game use the
// same table; the original edition serializes it big-endian and the Definitive
// Edition little-endian, giving two 512-byte keys.
package keystream

import (
	"fmt"

	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
)

const (
	// Words is the number of 16-bit entries in Table.
	Words = 256
	// KeySize is the length of a serialized key in bytes.
	KeySize = Words * 2
)

// Key is a serialized keystream table.
type Key [KeySize]byte

// Table is the keystream in word form.
var Table = [Words]uint16{
	0x8140, 0x3000, 0x8141, 0x3001, 0x8142, 0x3002, 0x8143, 0xFF0C,
	0x8144, 0xFF0E, 0x8145, 0x30FB, 0x8146, 0xFF1A, 0x8147, 0xFF1B,
	0x8148, 0xFF1F, 0x8149, 0xFF01, 0x814A, 0x309B, 0x814B, 0x309C,
	0x814C, 0x00B4, 0x814D, 0xFF40, 0x814E, 0x00A8, 0x814F, 0xFF3E,
	0x8150, 0xFFE3, 0x8151, 0xFF3F, 0x8152, 0x30FD, 0x8153, 0x30FE,
	0x8154, 0x309D, 0x8155, 0x309E, 0x8156, 0x3003, 0x8157, 0x4EDD,
	0x8158, 0x3005, 0x8159, 0x3006, 0x815A, 0x3007, 0x815B, 0x30FC,
	0x815C, 0x2015, 0x815D, 0x2010, 0x815E, 0xFF0F, 0x815F, 0x005C,
	0x8160, 0x301C, 0x8161, 0x2016, 0x8162, 0xFF5C, 0x8163, 0x2026,
	0x8164, 0x2025, 0x8165, 0x2018, 0x8166, 0x2019, 0x8167, 0x201C,
	0x8168, 0x201D, 0x8169, 0xFF08, 0x816A, 0xFF09, 0x816B, 0x3014,
	0x816C, 0x3015, 0x816D, 0xFF3B, 0x816E, 0xFF3D, 0x816F, 0xFF5B,
	0x8170, 0xFF5D, 0x8171, 0x3008, 0x8172, 0x3009, 0x8173, 0x300A,
	0x8174, 0x300B, 0x8175, 0x300C, 0x8176, 0x300D, 0x8177, 0x300E,
	0x8178, 0x300F, 0x8179, 0x3010, 0x817A, 0x3011, 0x817B, 0xFF0B,
	0x817C, 0x2212, 0x817D, 0x00B1, 0x817E, 0x00D7, 0x8180, 0x00F7,
	0x8181, 0xFF1D, 0x8182, 0x2260, 0x8183, 0xFF1C, 0x8184, 0xFF1E,
	0x8185, 0x2266, 0x8186, 0x2267, 0x8187, 0x221E, 0x8188, 0x2234,
	0x8189, 0x2642, 0x818A, 0x2640, 0x818B, 0x00B0, 0x818C, 0x2032,
	0x818D, 0x2033, 0x818E, 0x2103, 0x818F, 0xFFE5, 0x8190, 0xFF04,
	0x8191, 0x00A2, 0x8192, 0x00A3, 0x8193, 0xFF05, 0x8194, 0xFF03,
	0x8195, 0xFF06, 0x8196, 0xFF0A, 0x8197, 0xFF20, 0x8198, 0x00A7,
	0x8199, 0x2606, 0x819A, 0x2605, 0x819B, 0x25CB, 0x819C, 0x25CF,
	0x819D, 0x25CE, 0x819E, 0x25C7, 0x819F, 0x25C6, 0x81A0, 0x25A1,
	0x81A1, 0x25A0, 0x81A2, 0x25B3, 0x81A3, 0x25B2, 0x81A4, 0x25BD,
	0x81A5, 0x25BC, 0x81A6, 0x203B, 0x81A7, 0x3012, 0x81A8, 0x2192,
	0x81A9, 0x2190, 0x81AA, 0x2191, 0x81AB, 0x2193, 0x81AC, 0x3013,
	0x81B8, 0x2208, 0x81B9, 0x220B, 0x81BA, 0x2286, 0x81BB, 0x2287,
	0x81BC, 0x2282, 0x81BD, 0x2283, 0x81BE, 0x222A, 0x81BF, 0x2229,
	0x81C8, 0x2227, 0x81C9, 0x2228, 0x81CA, 0x00AC, 0x81CB, 0x21D2,
	0x81CC, 0x21D4, 0x81CD, 0x2200, 0x81CE, 0x2203, 0x81DA, 0x2220,
	0x81DB, 0x22A5, 0x81DC, 0x2312, 0x81DD, 0x2202, 0x81DE, 0x2207,
}

var (
	bigKey    = serialize(format.BigEndian)
	littleKey = serialize(format.LittleEndian)
)

// Serialize returns Table packed as 16-bit words in the given byte order.
// UnknownByteOrder yields the big-endian key.
func Serialize(order format.ByteOrder) Key {
	if order == format.LittleEndian {
		return littleKey
	}

	return bigKey
}

func serialize(order format.ByteOrder) Key {
	var key Key
	engine := endian.ForByteOrder(order)
	for i, word := range Table {
		engine.PutUint16(key[i*2:], word)
	}

	return key
}

// FromBytes copies a raw 512-byte key, such as one recovered by key scanning or
// read from a key file. It returns ErrInvalidKeySize when b has the wrong length.
func FromBytes(b []byte) (Key, error) {
	var key Key
	if len(b) != KeySize {
		return key, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidKeySize, len(b))
	}
	copy(key[:], b)

	return key, nil
}
