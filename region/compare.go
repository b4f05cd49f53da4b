package region

import (
	"fmt"
	"strings"

	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/internal/options"
)

// Filter restricts a comparison to offsets inside Include and outside Exclude.
// An empty Include admits every offset.
type Filter struct {
	Include []Range
	Exclude []Range
}

// Allows reports whether offset passes the filter.
func (f Filter) Allows(offset int) bool {
	if len(f.Include) > 0 && !anyContains(f.Include, offset) {
		return false
	}

	return !anyContains(f.Exclude, offset)
}

func anyContains(rs []Range, offset int) bool {
	for _, r := range rs {
		if r.Contains(offset) {
			return true
		}
	}

	return false
}

// Delta is a run of changed bytes starting at Offset.
type Delta struct {
	Offset int
	Before []byte
	After  []byte
	// Name is the region containing Offset, empty when unnamed.
	Name string
}

// End returns the offset just past the run.
func (d Delta) End() int {
	return d.Offset + len(d.After)
}

// String formats the delta as "0x045e40: 0x01 -> 0x02 (play timer)". Runs longer
// than one byte are printed as hex strings split every four bytes of offset.
func (d Delta) String() string {
	var before, after string
	if len(d.Before) == 1 {
		before, after = fmt.Sprintf("0x%02x", d.Before[0]), fmt.Sprintf("0x%02x", d.After[0])
	} else {
		before, after = d.hexRun(d.Before), d.hexRun(d.After)
	}

	s := fmt.Sprintf("0x%06x: %s -> %s", d.Offset, before, after)
	if d.Name != "" {
		s += " (" + d.Name + ")"
	}

	return s
}

func (d Delta) hexRun(values []byte) string {
	var sb strings.Builder
	sb.WriteString("0x")
	for i, v := range values {
		if i > 0 && (d.Offset+i)%4 == 0 {
			sb.WriteByte('_')
		}
		fmt.Fprintf(&sb, "%02x", v)
	}

	return sb.String()
}

func checkLengths(before, after []byte) error {
	if len(before) != len(after) {
		return errs.NewFormatError(errs.ErrLengthMismatch, len(before), len(after))
	}

	return nil
}

// Compare returns one single-byte Delta for every offset that differs between
// before and after and passes filter. names may be nil.
func Compare(before, after []byte, filter Filter, names *Ranges) ([]Delta, error) {
	if err := checkLengths(before, after); err != nil {
		return nil, err
	}

	var deltas []Delta
	for off := range before {
		if before[off] == after[off] || !filter.Allows(off) {
			continue
		}
		deltas = append(deltas, Delta{
			Offset: off,
			Before: []byte{before[off]},
			After:  []byte{after[off]},
			Name:   names.NameOf(off),
		})
	}

	return deltas, nil
}

// Aggregate is Compare with adjacent changed bytes merged into a single Delta.
// A run is named after the region of its first byte.
func Aggregate(before, after []byte, filter Filter, names *Ranges) ([]Delta, error) {
	if err := checkLengths(before, after); err != nil {
		return nil, err
	}

	var (
		deltas []Delta
		run    *Delta
	)
	for off := range before {
		if before[off] == after[off] || !filter.Allows(off) {
			continue
		}
		if run != nil && off == run.End() {
			run.Before = append(run.Before, before[off])
			run.After = append(run.After, after[off])

			continue
		}
		if run != nil {
			deltas = append(deltas, *run)
		}
		run = &Delta{
			Offset: off,
			Before: []byte{before[off]},
			After:  []byte{after[off]},
			Name:   names.NameOf(off),
		}
	}
	if run != nil {
		deltas = append(deltas, *run)
	}

	return deltas, nil
}

// Comparator diffs successive versions of a buffer against the previous one.
// It is not safe for concurrent use.
type Comparator struct {
	previous  []byte
	filter    Filter
	names     *Ranges
	aggregate bool
}

// ComparatorOption configures a Comparator.
type ComparatorOption = options.Option[*Comparator]

// WithFilter restricts comparisons to filter.
func WithFilter(filter Filter) ComparatorOption {
	return options.NoError(func(c *Comparator) {
		c.filter = filter
	})
}

// WithNames names deltas from names.
func WithNames(names *Ranges) ComparatorOption {
	return options.NoError(func(c *Comparator) {
		c.names = names
	})
}

// WithAggregation merges adjacent changed bytes into runs.
func WithAggregation(enabled bool) ComparatorOption {
	return options.NoError(func(c *Comparator) {
		c.aggregate = enabled
	})
}

// NewComparator creates a Comparator whose first comparison is against initial.
// initial is copied.
func NewComparator(initial []byte, opts ...ComparatorOption) (*Comparator, error) {
	c := &Comparator{previous: append([]byte(nil), initial...)}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Compare diffs next against the previous buffer and, on success, makes a copy
// of next the new previous buffer.
func (c *Comparator) Compare(next []byte) ([]Delta, error) {
	diff := Compare
	if c.aggregate {
		diff = Aggregate
	}

	deltas, err := diff(c.previous, next, c.filter, c.names)
	if err != nil {
		return nil, err
	}
	c.previous = append(c.previous[:0], next...)

	return deltas, nil
}
