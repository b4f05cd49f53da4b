package record

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// FrontierNavBaseURL is the probe simulation page that FrontierNavURL links to.
const FrontierNavBaseURL = "https://frontiernav.net/wiki/xenoblade-chronicles-x/visualisations/maps/probe-guides/My%20Current%20Layout?map="

// WriteInventoryCSV writes inv in the xenoprobes inventory.csv format. Probe codes
// in exclude are written commented out.
func WriteInventoryCSV(w io.Writer, inv Inventory, exclude map[string]bool) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# inventory.csv")
	for probe, n := range inv.All() {
		if probe.Code == "" {
			continue
		}
		prefix := ""
		if exclude[probe.Code] {
			prefix = "# "
		}
		fmt.Fprintf(bw, "%s%s,%d\n", prefix, probe.Code, n)
	}

	return bw.Flush()
}

// WriteSitesCSV writes the unlocked state and ratings of every real site in the
// xenoprobes sites.csv format, ordered by site code. Locked sites are commented
// out. The sightseeing column counts SightseeingSpotsFor the site.
func WriteSitesCSV(w io.Writer, installed []InstalledProbe, found SpotSet, overrides map[string]int) error {
	rows := slices.Clone(installed)
	slices.SortStableFunc(rows, func(a, b InstalledProbe) int {
		return strings.Compare(a.Site.Code, b.Site.Code)
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# sites.csv")
	for _, ip := range rows {
		if ip.Site.IsSkip() {
			continue
		}
		if ip.Probe.IsLocked() {
			bw.WriteByte('#')
		}
		s := ip.Site
		fmt.Fprintf(bw, "%s,%s,%s,%s,%d", s.Code, s.Mining, s.Revenue, s.Combat,
			len(SightseeingSpotsFor(s, found, overrides)))
		for _, ore := range s.Ores {
			fmt.Fprintf(bw, ",%s", ore)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteLayoutCSV writes the installed probes in the xenoprobes layout.csv format.
func WriteLayoutCSV(w io.Writer, installed []InstalledProbe) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# layout.csv")
	for _, ip := range installed {
		if ip.Site.IsSkip() {
			continue
		}
		fmt.Fprintf(bw, "%s,%s\n", ip.Site.Code, ip.Probe.Code)
	}

	return bw.Flush()
}

// FrontierNavURL returns a frontiernav.net probe simulation link for the layout.
func FrontierNavURL(installed []InstalledProbe) string {
	parts := make([]string, 0, len(installed))
	for _, ip := range installed {
		parts = append(parts, fmt.Sprintf("%s-%d", ip.Site.Code, ip.Probe.FrontierNavType))
	}

	return FrontierNavBaseURL + strings.Join(parts, "~")
}
