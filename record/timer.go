package record

import (
	"fmt"
	"time"
)

const (
	timerHourBits   = 20
	timerMinuteBits = 6
	timerSecondBits = 6
)

var _ = [1]struct{}{}[timerHourBits+timerMinuteBits+timerSecondBits-32]

// GameTimerLayout is the packed layout of the play timer word.
var GameTimerLayout = BitLayout{
	{Name: "hours", Width: timerHourBits},
	{Name: "minutes", Width: timerMinuteBits},
	{Name: "seconds", Width: timerSecondBits},
}

// GameTimer is the total play time shown on the main menu.
type GameTimer struct {
	Hours   uint32
	Minutes uint32
	Seconds uint32
}

// UnpackGameTimer splits a packed timer word. Values are taken as stored; minutes
// and seconds may exceed 59 in edited saves.
func UnpackGameTimer(v uint32) GameTimer {
	f := GameTimerLayout.Unpack(v)

	return GameTimer{Hours: f[0], Minutes: f[1], Seconds: f[2]}
}

// ReadGameTimer decodes the play timer of a decoded save buffer.
func ReadGameTimer(buf []byte) (GameTimer, error) {
	b, err := span(buf, "game timer", GameTimerOffset, PackedWordSize)
	if err != nil {
		return GameTimer{}, err
	}

	return UnpackGameTimer(be.Uint32(b)), nil
}

// Pack returns the packed timer word. Fields wider than their bit widths are
// truncated.
func (t GameTimer) Pack() uint32 {
	return GameTimerLayout.Pack(t.Hours, t.Minutes, t.Seconds)
}

// Validate reports a field that does not fit its bit width.
func (t GameTimer) Validate() error {
	return GameTimerLayout.Check(t.Hours, t.Minutes, t.Seconds)
}

// PutGameTimer writes t into a decoded save buffer.
func PutGameTimer(buf []byte, t GameTimer) error {
	b, err := span(buf, "game timer", GameTimerOffset, PackedWordSize)
	if err != nil {
		return err
	}
	be.PutUint32(b, t.Pack())

	return nil
}

// Duration returns the timer as a time.Duration.
func (t GameTimer) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second
}

// String formats the timer as HHH-MM-SS.
func (t GameTimer) String() string {
	return fmt.Sprintf("%03d-%02d-%02d", t.Hours, t.Minutes, t.Seconds)
}
