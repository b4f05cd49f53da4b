// Package format defines the small enums shared across the save codec packages.
package format

type (
	ByteOrder       uint8
	CompressionType uint8
)

const (
	UnknownByteOrder ByteOrder = 0x0 // UnknownByteOrder means the byte order could not be determined.
	BigEndian        ByteOrder = 0x1 // BigEndian is used by the original WiiU edition.
	LittleEndian     ByteOrder = 0x2 // LittleEndian is used by the Switch Definitive Edition.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ByteOrders lists the byte orders a save file can be written in, in detection order.
var ByteOrders = [...]ByteOrder{BigEndian, LittleEndian}

func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big"
	case LittleEndian:
		return "little"
	default:
		return "unknown"
	}
}

// Edition returns the game edition that writes save data in this byte order.
func (o ByteOrder) Edition() string {
	switch o {
	case BigEndian:
		return "OG"
	case LittleEndian:
		return "DE"
	default:
		return "unknown"
	}
}

// IsKnown reports whether o is one of the two concrete byte orders.
func (o ByteOrder) IsKnown() bool {
	return o == BigEndian || o == LittleEndian
}

// ParseByteOrder parses the names accepted in configuration and on the command line.
// The second result is false when name is not recognized.
func ParseByteOrder(name string) (ByteOrder, bool) {
	switch name {
	case "big", "be", "og", "wiiu":
		return BigEndian, true
	case "little", "le", "de", "switch":
		return LittleEndian, true
	case "", "auto", "unknown":
		return UnknownByteOrder, true
	default:
		return UnknownByteOrder, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a lower-case compression name.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
