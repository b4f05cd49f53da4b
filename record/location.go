package record

import (
	"maps"
	"slices"
)

// LocationFlag is one found-location bit. Offset is relative to LocationsOffset.
type LocationFlag struct {
	LocationID uint16
	Offset     int
	Bit        byte
}

// IsSet reports whether the flag is set in a found-locations table.
func (f LocationFlag) IsSet(table []byte) bool {
	return f.Offset < len(table) && table[f.Offset]&f.Bit != 0
}

// Location is a named landmark together with its found state.
type Location struct {
	LocationFlag
	Name  string
	Type  uint8
	Worth uint32
	Found bool
}

// SpotSet is a set of location ids of found sightseeing spots.
type SpotSet map[uint16]struct{}

// Has reports whether id is in the set.
func (s SpotSet) Has(id uint16) bool {
	_, ok := s[id]

	return ok
}

// Sorted returns the location ids in ascending order.
func (s SpotSet) Sorted() []uint16 {
	return slices.Sorted(maps.Keys(s))
}

// ParseSightseeingSpots returns the found sightseeing spots of a 0x44-byte
// found-locations table.
func ParseSightseeingSpots(table []byte) (SpotSet, error) {
	if err := need(table, "found locations", LocationsSize); err != nil {
		return nil, err
	}

	found := SpotSet{}
	for _, spot := range sightseeingSpots {
		if spot.IsSet(table) {
			found[spot.LocationID] = struct{}{}
		}
	}

	return found, nil
}

// ReadSightseeingSpots decodes the found sightseeing spots of a decoded save buffer.
func ReadSightseeingSpots(buf []byte) (SpotSet, error) {
	table, err := span(buf, "found locations", LocationsOffset, LocationsSize)
	if err != nil {
		return nil, err
	}

	return ParseSightseeingSpots(table)
}

// ParseLocations returns the landmark catalogue with Found set from a 0x44-byte
// found-locations table. Not every location in the game is catalogued.
func ParseLocations(table []byte) ([]Location, error) {
	if err := need(table, "found locations", LocationsSize); err != nil {
		return nil, err
	}

	locations := slices.Clone(landmarks)
	for i := range locations {
		locations[i].Found = locations[i].IsSet(table)
	}

	return locations, nil
}

// ReadLocations decodes the landmark catalogue of a decoded save buffer.
func ReadLocations(buf []byte) ([]Location, error) {
	table, err := span(buf, "found locations", LocationsOffset, LocationsSize)
	if err != nil {
		return nil, err
	}

	return ParseLocations(table)
}

// SetFlags lists every set bit of a found-locations table, catalogued or not, in
// offset then bit order. LocationID is zero for bits without a known location.
func SetFlags(table []byte) []LocationFlag {
	known := make(map[[2]int]uint16, len(sightseeingSpots)+len(landmarks))
	for _, f := range sightseeingSpots {
		known[[2]int{f.Offset, int(f.Bit)}] = f.LocationID
	}
	for _, l := range landmarks {
		known[[2]int{l.Offset, int(l.Bit)}] = l.LocationID
	}

	var flags []LocationFlag
	for off, b := range table {
		for bit := 0; bit < 8; bit++ {
			mask := byte(1) << bit
			if b&mask == 0 {
				continue
			}
			flags = append(flags, LocationFlag{LocationID: known[[2]int{off, int(mask)}], Offset: off, Bit: mask})
		}
	}

	return flags
}
