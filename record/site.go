package record

import (
	"iter"
)

// Grade is a FrontierNav site rating from 'S' (best) down to 'F'.
type Grade byte

func (g Grade) String() string {
	return string(rune(g))
}

// Site is a FrontierNav probe site.
type Site struct {
	ID      int
	Name    string
	Code    string // xenoprobes site name, e.g. "101"
	Mining  Grade
	Revenue Grade
	Combat  Grade
	// SightseeingSpots are the location ids of the spots that boost the site.
	SightseeingSpots []uint16
	Ores             []string
}

const skipSiteName = "skip"

// SiteByID returns the site at position id of the FrontierNav array. Ids that are
// not real sites return a placeholder for which IsSkip is true.
func SiteByID(id int) Site {
	if id >= 0 && id < SiteCount {
		return sites[id]
	}

	return Site{ID: id, Name: skipSiteName, Code: skipSiteName, Mining: 'C', Revenue: 'C', Combat: 'C'}
}

// Sites iterates every entry of the site table, placeholders included.
func Sites() iter.Seq[Site] {
	return func(yield func(Site) bool) {
		for _, s := range sites {
			if !yield(s) {
				return
			}
		}
	}
}

// IsSkip reports whether s is a placeholder entry of the FrontierNav array.
func (s Site) IsSkip() bool {
	return s.Name == skipSiteName
}

// InstalledProbe is the probe placed on a FrontierNav site.
type InstalledProbe struct {
	Site  Site
	Probe Probe
}

// ParseSites decodes the 330-byte FrontierNav placement table. Each 3-byte entry
// starts with the installed probe type id.
func ParseSites(b []byte) ([]InstalledProbe, error) {
	if err := need(b, "frontiernav sites", FrontierNavSize); err != nil {
		return nil, err
	}

	installed := make([]InstalledProbe, SiteCount)
	for i := range installed {
		installed[i] = InstalledProbe{
			Site:  SiteByID(i),
			Probe: ProbeByID(uint16(b[i*SiteEntrySize])),
		}
	}

	return installed, nil
}

// ReadSites decodes the FrontierNav placement table of a decoded save buffer.
func ReadSites(buf []byte) ([]InstalledProbe, error) {
	b, err := span(buf, "frontiernav sites", FrontierNavOffset, FrontierNavSize)
	if err != nil {
		return nil, err
	}

	return ParseSites(b)
}

// SightseeingSpotsFor returns the sightseeing spots counted for site.
//
// Without an override the result is the site's spots present in found. An
// override maps a site code to a spot count; a non-negative count replaces the
// found spots with the site's first count spots, and -1 keeps the found spots.
// Counts above the site's total are clamped.
func SightseeingSpotsFor(site Site, found SpotSet, overrides map[string]int) []uint16 {
	if n, ok := overrides[site.Code]; ok && n > -1 {
		spots := make([]uint16, min(n, len(site.SightseeingSpots)))
		copy(spots, site.SightseeingSpots)

		return spots
	}

	spots := make([]uint16, 0, len(site.SightseeingSpots))
	for _, id := range site.SightseeingSpots {
		if found.Has(id) {
			spots = append(spots, id)
		}
	}

	return spots
}
