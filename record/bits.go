package record

import (
	"fmt"

	"github.com/arloliu/xcxsave/errs"
)

// BitField is one named field of a packed 32-bit word.
type BitField struct {
	Name  string
	Width uint8
}

// BitLayout describes a packed 32-bit word as fields listed from the most
// significant bit down. The widths of a layout sum to 32.
type BitLayout []BitField

// Width returns the total number of bits covered by the layout.
func (l BitLayout) Width() int {
	total := 0
	for _, f := range l {
		total += int(f.Width)
	}

	return total
}

// Unpack splits v into one value per field.
func (l BitLayout) Unpack(v uint32) []uint32 {
	out := make([]uint32, len(l))
	shift := l.Width()
	for i, f := range l {
		shift -= int(f.Width)
		out[i] = (v >> uint(shift)) & mask(f.Width) //nolint: gosec
	}

	return out
}

// Pack combines values, one per field, into a word. Bits above a field's width are
// dropped; use Check to reject them instead.
func (l BitLayout) Pack(values ...uint32) uint32 {
	var v uint32
	for i, f := range l {
		var field uint32
		if i < len(values) {
			field = values[i]
		}
		v = v<<f.Width | field&mask(f.Width)
	}

	return v
}

// Check reports the first value that does not fit its field.
func (l BitLayout) Check(values ...uint32) error {
	if len(values) != len(l) {
		return fmt.Errorf("%w: %d values for %d fields", errs.ErrInvalidFieldData, len(values), len(l))
	}
	for i, f := range l {
		if values[i] > mask(f.Width) {
			return fmt.Errorf("%w: %s=%d exceeds %d bits", errs.ErrInvalidFieldData, f.Name, values[i], f.Width)
		}
	}

	return nil
}

func mask(width uint8) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}

	return 1<<width - 1
}
