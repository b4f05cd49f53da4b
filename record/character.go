package record

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/xcxsave/errs"
)

// offsets inside the character block
const (
	NameSlotSize     = 0x40
	nameLengthOffset = 0x40
	levelOffset      = 0x7A
	expOffset        = 0x7C
	classOffset      = 0x128
	classRankOffset  = 0x12A
	classExpOffset   = 0x12C
)

// Character is the player character summary used for reports and backup names.
type Character struct {
	Name       string
	Level      uint8
	Exp        uint32
	ClassID    uint8
	Class      string
	ClassRank  uint8
	ClassExp   uint16
	BladeLevel uint32
	DivisionID uint32
	Division   string
}

// ParseCharacterBlock decodes the fields held in the 1404-byte character block.
// BLADE fields are left zero; see ParseBlade.
func ParseCharacterBlock(block []byte) (Character, error) {
	if err := need(block, "character", CharacterSize); err != nil {
		return Character{}, err
	}

	name, err := ReadSizedString(block, 0, nameLengthOffset, NameSlotSize)
	if err != nil {
		return Character{}, fmt.Errorf("character name: %w", err)
	}

	classID := block[classOffset]

	return Character{
		Name:      name,
		Level:     block[levelOffset],
		Exp:       be.Uint32(block[expOffset : expOffset+4]),
		ClassID:   classID,
		Class:     ClassName(classID),
		ClassRank: block[classRankOffset],
		ClassExp:  be.Uint16(block[classExpOffset : classExpOffset+2]),
	}, nil
}

// ParseBlade fills the BLADE level and division of c from the 8-byte BLADE record.
func (c *Character) ParseBlade(b []byte) error {
	if err := need(b, "blade", BladeSize); err != nil {
		return err
	}

	c.BladeLevel = be.Uint32(b[0:4])
	c.DivisionID = be.Uint32(b[4:8])
	c.Division = DivisionName(c.DivisionID)

	return nil
}

// ReadCharacter decodes the player character of a decoded save buffer.
func ReadCharacter(buf []byte) (Character, error) {
	block, err := span(buf, "character", CharacterOffset, CharacterSize)
	if err != nil {
		return Character{}, err
	}

	c, err := ParseCharacterBlock(block)
	if err != nil {
		return Character{}, err
	}

	blade, err := span(buf, "blade", BladeOffset, BladeSize)
	if err != nil {
		return Character{}, err
	}
	if err := c.ParseBlade(blade); err != nil {
		return Character{}, err
	}

	return c, nil
}

// ReadSizedString reads a UTF-8 string of at most maxLen bytes starting at dataOff,
// whose length is the big-endian uint32 at sizeOff. The length is used as stored,
// without scanning for a terminator.
func ReadSizedString(b []byte, dataOff, sizeOff, maxLen int) (string, error) {
	size, err := span(b, "string length", sizeOff, 4)
	if err != nil {
		return "", err
	}

	n := be.Uint32(size)
	if int64(n) > int64(maxLen) {
		return "", fmt.Errorf("%w: string length %d exceeds %d", errs.ErrInvalidFieldData, n, maxLen)
	}

	data, err := span(b, "string", dataOff, int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: string is not valid UTF-8", errs.ErrInvalidFieldData)
	}

	return string(data), nil
}

// ReadLengthPrefixedString reads a string stored as a big-endian uint32 length at
// off followed by that many bytes.
func ReadLengthPrefixedString(b []byte, off, maxLen int) (string, error) {
	return ReadSizedString(b, off+4, off, maxLen)
}
