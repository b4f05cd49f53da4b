package record

import (
	"testing"

	"github.com/arloliu/xcxsave/errs"
	"github.com/stretchr/testify/require"
)

// characterSave returns a buffer holding a character block and BLADE record.
func characterSave(name string, classID uint8, division uint32) []byte {
	buf := make([]byte, BladeOffset+BladeSize)
	block := buf[CharacterOffset : CharacterOffset+CharacterSize]

	copy(block, name)
	be.PutUint32(block[nameLengthOffset:], uint32(len(name)))
	block[levelOffset] = 42
	be.PutUint32(block[expOffset:], 1234567)
	block[classOffset] = classID
	block[classRankOffset] = 10
	be.PutUint16(block[classExpOffset:], 54321)

	be.PutUint32(buf[BladeOffset:], 9)
	be.PutUint32(buf[BladeOffset+4:], division)

	return buf
}

func TestReadCharacter(t *testing.T) {
	c, err := ReadCharacter(characterSave("Elma", 9, 4))
	require.NoError(t, err)

	require.Equal(t, Character{
		Name:       "Elma",
		Level:      42,
		Exp:        1234567,
		ClassID:    9,
		Class:      "Full Metal Jaguar",
		ClassRank:  10,
		ClassExp:   54321,
		BladeLevel: 9,
		DivisionID: 4,
		Division:   "Reclaimers",
	}, c)
}

func TestReadCharacter_NameLengthIsExact(t *testing.T) {
	buf := characterSave("Lin", 1, 0)
	// bytes after the recorded length are not part of the name
	buf[CharacterOffset+3] = 'x'

	c, err := ReadCharacter(buf)
	require.NoError(t, err)
	require.Equal(t, "Lin", c.Name)
}

func TestReadCharacter_Fallbacks(t *testing.T) {
	c, err := ReadCharacter(characterSave("", 0, 99))
	require.NoError(t, err)
	require.Empty(t, c.Name)
	require.Equal(t, DefaultClassName, c.Class)
	require.Equal(t, DefaultDivisionName, c.Division)
}

func TestReadCharacter_Errors(t *testing.T) {
	t.Run("short buffer", func(t *testing.T) {
		_, err := ReadCharacter(make([]byte, CharacterOffset+100))
		require.ErrorIs(t, err, errs.ErrBufferTooShort)
	})

	t.Run("missing blade record", func(t *testing.T) {
		buf := characterSave("Tatsu", 2, 1)
		_, err := ReadCharacter(buf[:BladeOffset+4])
		require.ErrorIs(t, err, errs.ErrBufferTooShort)
	})

	t.Run("name length beyond slot", func(t *testing.T) {
		buf := characterSave("Irina", 2, 1)
		be.PutUint32(buf[CharacterOffset+nameLengthOffset:], NameSlotSize+1)
		_, err := ReadCharacter(buf)
		require.ErrorIs(t, err, errs.ErrInvalidFieldData)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		buf := characterSave("ab", 2, 1)
		buf[CharacterOffset] = 0xFF
		_, err := ReadCharacter(buf)
		require.ErrorIs(t, err, errs.ErrInvalidFieldData)
	})
}

func TestParseCharacterBlock_Short(t *testing.T) {
	_, err := ParseCharacterBlock(make([]byte, CharacterSize-1))
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}

func TestReadLengthPrefixedString(t *testing.T) {
	b := []byte{0xEE, 0, 0, 0, 5, 'h', 'e', 'l', 'l', 'o', '!'}

	s, err := ReadLengthPrefixedString(b, 1, 16)
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	_, err = ReadLengthPrefixedString(b, 1, 4)
	require.ErrorIs(t, err, errs.ErrInvalidFieldData)

	_, err = ReadLengthPrefixedString(b[:8], 1, 16)
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}

func TestLookupNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"first class", ClassName(1), "Drifter"},
		{"last class", ClassName(16), "Galactic Knight"},
		{"class zero", ClassName(0), DefaultClassName},
		{"class out of range", ClassName(200), DefaultClassName},
		{"no division", DivisionName(0), "none"},
		{"last division", DivisionName(8), "Mediators"},
		{"unknown division", DivisionName(9), DefaultDivisionName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}
