package record

import (
	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
)

// payload fields are big-endian in both editions
var be = endian.GetBigEndianEngine()

// record offsets and sizes inside a decoded gamedata buffer
const (
	CharacterOffset = 0x58
	CharacterSize   = 1404

	ProbeInventoryOffset = 0x2F0EC
	ProbeSlotSize        = 12
	ProbeSlots           = 100
	ProbeInventorySize   = ProbeSlotSize * ProbeSlots

	LocationsOffset = 0x32658
	LocationsSize   = 0x44

	BladeOffset = 0x39178
	BladeSize   = 8

	SavedTimeOffset = 0x45D64
	GameTimerOffset = 0x45E40
	PackedWordSize  = 4

	FrontierNavOffset = 0x480C4
	SiteEntrySize     = 3
	SiteCount         = 110
	FrontierNavSize   = SiteEntrySize * SiteCount
)

// span returns buf[offset:offset+size] or a FieldDecodeError naming record.
func span(buf []byte, record string, offset, size int) ([]byte, error) {
	if offset < 0 || len(buf) < offset+size {
		return nil, errs.NewFieldDecodeError(record, offset, offset+size, len(buf))
	}

	return buf[offset : offset+size], nil
}

// need checks that b holds at least size bytes of a record decoded from offset 0.
func need(b []byte, record string, size int) error {
	if len(b) < size {
		return errs.NewFieldDecodeError(record, 0, size, len(b))
	}

	return nil
}
