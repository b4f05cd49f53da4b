package region

import (
	"testing"

	"github.com/arloliu/xcxsave/errs"
	"github.com/stretchr/testify/require"
)

func buffers() (before, after []byte) {
	before = make([]byte, 32)
	after = make([]byte, 32)
	after[2] = 0x01
	after[8], after[9], after[10] = 0xAA, 0xBB, 0xCC
	after[12] = 0x7F
	after[31] = 0xFF

	return before, after
}

func testNames(t *testing.T) *Ranges {
	names, err := NewRanges(Range{Name: "head", Start: 0, End: 8}, Range{Name: "body", Start: 8, End: 32})
	require.NoError(t, err)

	return names
}

func TestCompare(t *testing.T) {
	before, after := buffers()

	deltas, err := Compare(before, after, Filter{}, testNames(t))
	require.NoError(t, err)

	var offsets []int
	for _, d := range deltas {
		offsets = append(offsets, d.Offset)
		require.Len(t, d.After, 1)
	}
	require.Equal(t, []int{2, 8, 9, 10, 12, 31}, offsets)
	require.Equal(t, Delta{Offset: 2, Before: []byte{0}, After: []byte{1}, Name: "head"}, deltas[0])
	require.Equal(t, "body", deltas[1].Name)
}

func TestAggregate(t *testing.T) {
	before, after := buffers()

	deltas, err := Aggregate(before, after, Filter{}, testNames(t))
	require.NoError(t, err)
	require.Equal(t, []Delta{
		{Offset: 2, Before: []byte{0}, After: []byte{0x01}, Name: "head"},
		{Offset: 8, Before: []byte{0, 0, 0}, After: []byte{0xAA, 0xBB, 0xCC}, Name: "body"},
		{Offset: 12, Before: []byte{0}, After: []byte{0x7F}, Name: "body"},
		{Offset: 31, Before: []byte{0}, After: []byte{0xFF}, Name: "body"},
	}, deltas)
}

func TestAggregate_RunSpansRegions(t *testing.T) {
	before := make([]byte, 16)
	after := make([]byte, 16)
	after[7], after[8] = 1, 2

	deltas, err := Aggregate(before, after, Filter{}, testNames(t))
	require.NoError(t, err)
	require.Len(t, deltas, 1)
	require.Equal(t, "head", deltas[0].Name)
	require.Equal(t, 9, deltas[0].End())
}

func TestCompare_Filter(t *testing.T) {
	before, after := buffers()

	filter := Filter{
		Include: []Range{{Start: 0, End: 16}},
		Exclude: []Range{{Start: 9, End: 10}},
	}

	deltas, err := Aggregate(before, after, filter, nil)
	require.NoError(t, err)

	var offsets []int
	for _, d := range deltas {
		offsets = append(offsets, d.Offset)
		require.Empty(t, d.Name)
	}
	require.Equal(t, []int{2, 8, 10, 12}, offsets)
}

func TestFilter_Allows(t *testing.T) {
	require.True(t, Filter{}.Allows(12345))

	f := Filter{Include: []Range{{Start: 10, End: 20}}, Exclude: []Range{{Start: 15, End: 16}}}
	require.False(t, f.Allows(9))
	require.True(t, f.Allows(10))
	require.False(t, f.Allows(15))
	require.True(t, f.Allows(19))
	require.False(t, f.Allows(20))
}

func TestCompare_LengthMismatch(t *testing.T) {
	_, err := Compare(make([]byte, 4), make([]byte, 5), Filter{}, nil)
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = Aggregate(make([]byte, 4), make([]byte, 3), Filter{}, nil)

	var ferr *errs.FormatError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, 4, ferr.Expected)
	require.Equal(t, 3, ferr.Actual)
}

func TestCompare_Identical(t *testing.T) {
	buf := []byte{1, 2, 3}

	deltas, err := Compare(buf, buf, Filter{}, nil)
	require.NoError(t, err)
	require.Empty(t, deltas)
}

func TestDelta_String(t *testing.T) {
	tests := []struct {
		name  string
		delta Delta
		want  string
	}{
		{
			name:  "single byte",
			delta: Delta{Offset: 0x45E40, Before: []byte{0x01}, After: []byte{0x02}, Name: "play timer"},
			want:  "0x045e40: 0x01 -> 0x02 (play timer)",
		},
		{
			name:  "unnamed",
			delta: Delta{Offset: 0x10, Before: []byte{0xFF}, After: []byte{0}},
			want:  "0x000010: 0xff -> 0x00",
		},
		{
			name:  "run split on 4-byte boundaries",
			delta: Delta{Offset: 0x0E, Before: []byte{1, 2, 3, 4, 5, 6, 7}, After: []byte{9, 9, 9, 9, 9, 9, 9}},
			want:  "0x00000e: 0x0102_03040506_07 -> 0x0909_09090909_09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.delta.String())
		})
	}
}

func TestComparator(t *testing.T) {
	initial := make([]byte, 8)
	c, err := NewComparator(initial, WithAggregation(true), WithNames(testNames(t)),
		WithFilter(Filter{Exclude: []Range{{Start: 7, End: 8}}}))
	require.NoError(t, err)

	initial[0] = 0x55 // the comparator keeps its own copy

	next := []byte{0, 1, 1, 0, 0, 0, 0, 1}
	deltas, err := c.Compare(next)
	require.NoError(t, err)
	require.Equal(t, []Delta{{Offset: 1, Before: []byte{0, 0}, After: []byte{1, 1}, Name: "head"}}, deltas)

	next[1] = 0 // the comparator keeps its own copy of next as well

	deltas, err = c.Compare([]byte{0, 1, 1, 0, 0, 0, 0, 1})
	require.NoError(t, err)
	require.Empty(t, deltas)

	_, err = c.Compare(make([]byte, 9))
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	// a failed comparison keeps the previous buffer
	deltas, err = c.Compare(make([]byte, 8))
	require.NoError(t, err)
	require.Len(t, deltas, 1)
}

func TestComparator_PerByte(t *testing.T) {
	c, err := NewComparator([]byte{0, 0, 0})
	require.NoError(t, err)

	deltas, err := c.Compare([]byte{1, 1, 0})
	require.NoError(t, err)
	require.Len(t, deltas, 2)
}
