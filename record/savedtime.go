package record

import (
	"time"
)

const (
	savedYearBits   = 6
	savedDayBits    = 9
	savedHourBits   = 5
	savedMinuteBits = 6
	savedSecondBits = 6
)

var _ = [1]struct{}{}[savedYearBits+savedDayBits+savedHourBits+savedMinuteBits+savedSecondBits-32]

// SavedTimeLayout is the packed layout of the last-save timestamp word:
//
//	YYYYYYDD DDDDDDDH HHHHMMMM MMSSSSSS
var SavedTimeLayout = BitLayout{
	{Name: "year", Width: savedYearBits},
	{Name: "days", Width: savedDayBits},
	{Name: "hours", Width: savedHourBits},
	{Name: "minutes", Width: savedMinuteBits},
	{Name: "seconds", Width: savedSecondBits},
}

// SavedTimeEpoch is the zero point of the saved time: 2000-01-01 00:00:00 UTC.
var SavedTimeEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// SavedTime is the wall-clock time the game was last saved.
type SavedTime struct {
	Year    uint32 // years since 2000
	Days    uint32 // days into the year
	Hours   uint32
	Minutes uint32
	Seconds uint32
}

// UnpackSavedTime splits a packed timestamp word.
func UnpackSavedTime(v uint32) SavedTime {
	f := SavedTimeLayout.Unpack(v)

	return SavedTime{Year: f[0], Days: f[1], Hours: f[2], Minutes: f[3], Seconds: f[4]}
}

// ReadSavedTime decodes the last-save timestamp of a decoded save buffer.
func ReadSavedTime(buf []byte) (SavedTime, error) {
	b, err := span(buf, "saved time", SavedTimeOffset, PackedWordSize)
	if err != nil {
		return SavedTime{}, err
	}

	return UnpackSavedTime(be.Uint32(b)), nil
}

// Pack returns the packed timestamp word.
func (s SavedTime) Pack() uint32 {
	return SavedTimeLayout.Pack(s.Year, s.Days, s.Hours, s.Minutes, s.Seconds)
}

// Time converts the timestamp to UTC by adding its fields to SavedTimeEpoch.
func (s SavedTime) Time() time.Time {
	return SavedTimeEpoch.
		AddDate(int(s.Year), 0, int(s.Days)).
		Add(time.Duration(s.Hours)*time.Hour +
			time.Duration(s.Minutes)*time.Minute +
			time.Duration(s.Seconds)*time.Second)
}

// SavedTimeFrom is the inverse of Time for t between 2000 and 2063.
func SavedTimeFrom(t time.Time) SavedTime {
	t = t.UTC()

	//nolint: gosec
	return SavedTime{
		Year:    uint32(t.Year() - SavedTimeEpoch.Year()),
		Days:    uint32(t.YearDay() - 1),
		Hours:   uint32(t.Hour()),
		Minutes: uint32(t.Minute()),
		Seconds: uint32(t.Second()),
	}
}
