package snapshot

import (
	"time"

	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/record"
)

var testSavedAt = time.Date(2016, time.April, 10, 12, 34, 56, 0, time.UTC)

// decodedSave returns a zero save with the character, BLADE, timer and
// saved-time records filled in.
func decodedSave() []byte {
	be := endian.GetBigEndianEngine()
	buf := make([]byte, 359984)

	block := buf[record.CharacterOffset : record.CharacterOffset+record.CharacterSize]
	copy(block, "Elma")
	be.PutUint32(block[0x40:], 4)
	block[0x7A] = 42
	be.PutUint32(block[0x7C:], 1234567)
	block[0x128] = 3
	block[0x12A] = 10
	be.PutUint16(block[0x12C:], 54321)

	be.PutUint32(buf[record.BladeOffset:], 9)
	be.PutUint32(buf[record.BladeOffset+4:], 2)

	timer := record.GameTimer{Hours: 123, Minutes: 45, Seconds: 6}
	be.PutUint32(buf[record.GameTimerOffset:], timer.Pack())
	be.PutUint32(buf[record.SavedTimeOffset:], record.SavedTimeFrom(testSavedAt).Pack())

	for i := 0x2F0EC; i < 0x2F0EC+1200; i++ {
		buf[i] = byte(i * 13)
	}

	return buf
}
