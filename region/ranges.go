package region

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/xcxsave/errs"
)

// Range is a named half-open byte range [Start, End).
type Range struct {
	Name  string
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset lies in the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%s [0x%06x, 0x%06x)", r.Name, r.Start, r.End)
}

// Ranges is a catalogue of named ranges. Lookups prefer the smallest range, so
// nested ranges name their bytes more precisely than the ranges enclosing them.
type Ranges struct {
	ranges []Range // sorted by length, then start
}

// NewRanges creates a catalogue from rs.
func NewRanges(rs ...Range) (*Ranges, error) {
	r := &Ranges{}
	for _, rg := range rs {
		if err := r.Add(rg); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Add inserts rg. Empty or inverted ranges are rejected.
func (r *Ranges) Add(rg Range) error {
	if rg.Start < 0 || rg.End <= rg.Start {
		return fmt.Errorf("%w: range %q [%d, %d)", errs.ErrInvalidFieldData, rg.Name, rg.Start, rg.End)
	}

	i, _ := slices.BinarySearchFunc(r.ranges, rg, compareRanges)
	r.ranges = slices.Insert(r.ranges, i, rg)

	return nil
}

// AddMap inserts one range per entry of m, each given as {start, end}.
func (r *Ranges) AddMap(m map[string][2]int) error {
	for name, bounds := range m {
		if err := r.Add(Range{Name: name, Start: bounds[0], End: bounds[1]}); err != nil {
			return err
		}
	}

	return nil
}

// NameOf returns the name of the smallest range containing offset, or "" when no
// range does.
func (r *Ranges) NameOf(offset int) string {
	if r == nil {
		return ""
	}
	for _, rg := range r.ranges {
		if rg.Contains(offset) {
			return rg.Name
		}
	}

	return ""
}

// Lookup returns the range called name.
func (r *Ranges) Lookup(name string) (Range, bool) {
	for _, rg := range r.ranges {
		if rg.Name == name {
			return rg, true
		}
	}

	return Range{}, false
}

// All returns the ranges ordered by start offset.
func (r *Ranges) All() []Range {
	out := slices.Clone(r.ranges)
	slices.SortStableFunc(out, func(a, b Range) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}

		return a.End - b.End
	})

	return out
}

// Len returns the number of ranges in the catalogue.
func (r *Ranges) Len() int {
	return len(r.ranges)
}

func compareRanges(a, b Range) int {
	if a.Len() != b.Len() {
		return a.Len() - b.Len()
	}
	if a.Start != b.Start {
		return a.Start - b.Start
	}

	return strings.Compare(a.Name, b.Name)
}

// DefaultNamedRanges are the known regions of the gamedata container.
var DefaultNamedRanges = map[string][2]int{
	"gamedata":                        {0x10, 0x5e710},
	"player Characters":               {0x58, 0x688c},
	"scouted characters":              {0x6890, 0x6ef0},
	"skells":                          {0x6ef0, 0xc620},
	"player class records":            {0xc20, 0xc81e},
	"currencies":                      {0xc820, 0xc82c},
	"party configuration":             {0xc82c, 0xc84c},
	"inventory":                       {0xc850, 0x32480},
	"inventory (skell armour)":        {0xc850, 0x125f8},
	"inventory (skell weapons)":       {0x125f8, 0x183a0},
	"inventory (ground armour)":       {0x183a0, 0x1e148},
	"inventory (melee weapons)":       {0x1e148, 0x23ef0},
	"inventory (ranged weapons)":      {0x23ef0, 0x29c98},
	"inventory (augments)":            {0x29c98, 0x2cb6c},
	"inventory (materials)":           {0x2cb6c, 0x2f0ec},
	"inventory (data probes)":         {0x2f0ec, 0x2f59c},
	"inventory (collectables)":        {0x2f59c, 0x303ac},
	"inventory (important items)":     {0x303ac, 0x31b1c},
	"inventory (unknown)":             {0x31b20, 0x31fd0},
	"inventory (precious resources)":  {0x31fd0, 0x32228},
	"inventory (consumables)":         {0x32228, 0x32480},
	"main game state (assumed)":       {0x32480, 0x39108},
	"found locations":                 {0x32658, 0x3269e},
	"BLADE info":                      {0x39108, 0x39180},
	"affinity characters":             {0x39540, 0x45d40},
	"blade medals":                    {0x45d60, 0x45d64},
	"last save time":                  {0x45d64, 0x45d68},
	"last landmark":                   {0x45e14, 0x45e18},
	"play timer":                      {0x45e40, 0x45e44},
	"FrontierNav timers":              {0x480c0, 0x480c4},
	"FrontierNav probe placement":     {0x480c4, 0x48274},
	"field_skills":                    {0x48ac8, 0x48aca},
	"holofigure collection (assumed)": {0x48ad0, 0x48eb8},
	"schematics collection (assumed)": {0x4b724, 0x4b7d4},
	"enemy index":                     {0x4e614, 0x569b4},
}

// DefaultRanges returns a new catalogue holding DefaultNamedRanges.
func DefaultRanges() *Ranges {
	r := &Ranges{}
	if err := r.AddMap(DefaultNamedRanges); err != nil {
		panic(err) // static table
	}

	return r
}
