// Package config loads the YAML configuration of the xcxsave command and
// turns it into options for the codec, snapshot and comparison packages.
package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/xcxsave/crypt"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/region"
	"github.com/arloliu/xcxsave/snapshot"
)

// Config is the root of the configuration file.
type Config struct {
	Decode      Decode            `yaml:"decode"`
	Encode      Encode            `yaml:"encode"`
	Snapshot    Snapshot          `yaml:"snapshot"`
	FNav        FNav              `yaml:"fnav"`
	Compare     Compare           `yaml:"compare"`
	NamedRanges map[string][2]int `yaml:"named_ranges"`
	Logging     Logging           `yaml:"logging"`
}

// Decode configures how save files are decoded.
type Decode struct {
	// ByteOrder forces a byte order ("big", "little") or detects it ("auto").
	ByteOrder   string `yaml:"byte_order"`
	KeyRecovery bool   `yaml:"key_recovery"`
}

// Encode configures how decoded buffers are written back.
type Encode struct {
	// ByteOrder selects the target edition; "auto" keeps the source order.
	ByteOrder string `yaml:"byte_order"`
	// KeyPosition fixes the initial key position; nil keeps the header's.
	KeyPosition       *int `yaml:"key_position"`
	RandomKeyPosition bool `yaml:"random_key_position"`
	PreserveEntropy   bool `yaml:"preserve_entropy"`
	FixChecksum       bool `yaml:"fix_checksum"`
}

// Snapshot configures the snapshot store.
type Snapshot struct {
	Directory   string `yaml:"directory"`
	Compression string `yaml:"compression"`
	// Name is the backup name pattern, see snapshot.FormatName.
	Name string `yaml:"name"`
	Sync bool   `yaml:"sync"`
}

// FNav configures the FrontierNav probe reports.
type FNav struct {
	OutputDir string `yaml:"output_dir"`
	// SightseeingSpots overrides the number of sightseeing spots counted per
	// site code; -1 uses the found-location flags of the save.
	SightseeingSpots map[string]int `yaml:"sightseeing_spots"`
	// Exclude lists probe codes commented out of the inventory report.
	Exclude []string `yaml:"exclude"`
}

// Compare configures buffer comparison.
type Compare struct {
	Include   [][2]int `yaml:"include"`
	Exclude   [][2]int `yaml:"exclude"`
	Aggregate bool     `yaml:"aggregate"`
}

// Logging configures the command's slog handler.
type Logging struct {
	Level string `yaml:"level"`
}

// defaultSightseeingSpots lists the sites that own sightseeing spots.
var defaultSightseeingSpots = []string{
	// Primordia
	"101", "103", "104", "106", "110", "117",
	// Noctilum
	"213", "214", "216", "220", "221", "222", "223", "225",
	// Oblivia
	"306", "313", "315", "317", "318", "319",
	// Sylvalum
	"404", "408", "410", "413", "414", "419",
	// Cauldros
	"502", "503", "505", "506", "507", "508", "513", "514",
}

// Default returns the default configuration.
func Default() *Config {
	spots := make(map[string]int, len(defaultSightseeingSpots))
	for _, code := range defaultSightseeingSpots {
		spots[code] = -1
	}

	return &Config{
		Decode: Decode{ByteOrder: "auto"},
		Encode: Encode{
			ByteOrder:       "auto",
			PreserveEntropy: true,
			FixChecksum:     true,
		},
		Snapshot: Snapshot{
			Directory:   "./snapshots",
			Compression: "zstd",
			Name:        "backup-{datetime:%Y%m%d-%H%M%S}",
		},
		FNav: FNav{
			OutputDir:        ".",
			SightseeingSpots: spots,
			Exclude:          []string{},
		},
		Compare: Compare{
			Include:   [][2]int{{0x10, 0x5e710}},
			Exclude:   [][2]int{},
			Aggregate: true,
		},
		NamedRanges: map[string][2]int{},
		Logging:     Logging{Level: "info"},
	}
}

// Load reads the configuration at path on top of Default and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Maps are merged with the defaults; lists replace them.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every field that the option adapters would reject.
func (c *Config) Validate() error {
	if _, ok := format.ParseByteOrder(c.Decode.ByteOrder); !ok {
		return fmt.Errorf("decode.byte_order: unknown byte order %q", c.Decode.ByteOrder)
	}
	if _, ok := format.ParseByteOrder(c.Encode.ByteOrder); !ok {
		return fmt.Errorf("encode.byte_order: unknown byte order %q", c.Encode.ByteOrder)
	}
	if p := c.Encode.KeyPosition; p != nil && (*p < 0 || *p > int(crypt.MaxKeyPosition)) {
		return fmt.Errorf("encode.key_position: %d out of range [0, %d]", *p, crypt.MaxKeyPosition)
	}
	if c.Encode.KeyPosition != nil && c.Encode.RandomKeyPosition {
		return fmt.Errorf("encode: key_position and random_key_position are exclusive")
	}

	if _, ok := format.ParseCompressionType(c.Snapshot.Compression); !ok {
		return fmt.Errorf("snapshot.compression: unknown compression %q", c.Snapshot.Compression)
	}
	if _, err := snapshot.FormatName(c.Snapshot.Name, nil); err != nil {
		return fmt.Errorf("snapshot.name: %w", err)
	}

	for code, n := range c.FNav.SightseeingSpots {
		if n < -1 {
			return fmt.Errorf("fnav.sightseeing_spots[%s]: %d is below -1", code, n)
		}
	}

	for name, ranges := range map[string][][2]int{"compare.include": c.Compare.Include, "compare.exclude": c.Compare.Exclude} {
		for _, r := range ranges {
			if r[0] < 0 || r[1] <= r[0] {
				return fmt.Errorf("%s: invalid range [0x%x, 0x%x)", name, r[0], r[1])
			}
		}
	}
	if _, err := c.Ranges(); err != nil {
		return fmt.Errorf("named_ranges: %w", err)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// DecodeOptions returns the crypt options for decoding.
func (c *Config) DecodeOptions() []crypt.DecryptOption {
	order, _ := format.ParseByteOrder(c.Decode.ByteOrder)

	return []crypt.DecryptOption{
		crypt.WithByteOrder(order),
		crypt.WithKeyRecovery(c.Decode.KeyRecovery),
	}
}

// EncodeByteOrder returns the target byte order, or fallback when the
// configuration keeps the source order.
func (c *Config) EncodeByteOrder(fallback format.ByteOrder) format.ByteOrder {
	order, _ := format.ParseByteOrder(c.Encode.ByteOrder)
	if !order.IsKnown() {
		return fallback
	}

	return order
}

// EncodeOptions returns the crypt options for encoding.
func (c *Config) EncodeOptions() []crypt.EncryptOption {
	var opts []crypt.EncryptOption
	switch {
	case c.Encode.KeyPosition != nil:
		opts = append(opts, crypt.WithKeyPosition(*c.Encode.KeyPosition))
	case c.Encode.RandomKeyPosition:
		opts = append(opts, crypt.WithRandomKeyPosition())
	}
	if c.Encode.PreserveEntropy {
		opts = append(opts, crypt.WithPreservedEntropy())
	}

	return opts
}

// Ranges returns the default named ranges extended with named_ranges.
func (c *Config) Ranges() (*region.Ranges, error) {
	r := region.DefaultRanges()
	if err := r.AddMap(c.NamedRanges); err != nil {
		return nil, err
	}

	return r, nil
}

// CompareFilter returns the include/exclude filter for comparisons.
func (c *Config) CompareFilter() region.Filter {
	toRanges := func(name string, bounds [][2]int) []region.Range {
		out := make([]region.Range, 0, len(bounds))
		for _, b := range bounds {
			out = append(out, region.Range{Name: name, Start: b[0], End: b[1]})
		}

		return out
	}

	return region.Filter{
		Include: toRanges("include", c.Compare.Include),
		Exclude: toRanges("exclude", c.Compare.Exclude),
	}
}

// ComparatorOptions returns the options for region.NewComparator.
func (c *Config) ComparatorOptions() ([]region.ComparatorOption, error) {
	names, err := c.Ranges()
	if err != nil {
		return nil, err
	}

	return []region.ComparatorOption{
		region.WithFilter(c.CompareFilter()),
		region.WithNames(names),
		region.WithAggregation(c.Compare.Aggregate),
	}, nil
}

// SightseeingOverrides returns a copy of fnav.sightseeing_spots.
func (c *Config) SightseeingOverrides() map[string]int {
	return maps.Clone(c.FNav.SightseeingSpots)
}

// ExcludedProbes returns fnav.exclude as an upper-case set.
func (c *Config) ExcludedProbes() map[string]bool {
	return ParseExclude(strings.Join(c.FNav.Exclude, ","))
}

// ParseExclude splits a comma-separated probe code list into an upper-case set.
func ParseExclude(list string) map[string]bool {
	out := make(map[string]bool)
	for code := range strings.SplitSeq(list, ",") {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			out[code] = true
		}
	}

	return out
}

// SnapshotOptions returns the pack options for a snapshot labelled label.
func (c *Config) SnapshotOptions(label string) []snapshot.PackOption {
	ct, _ := format.ParseCompressionType(c.Snapshot.Compression)

	return []snapshot.PackOption{
		snapshot.WithCompression(ct),
		snapshot.WithLabel(label),
	}
}

// StoreOptions returns the options for snapshot.OpenStore.
func (c *Config) StoreOptions() []snapshot.StoreOption {
	return []snapshot.StoreOption{snapshot.WithSync(c.Snapshot.Sync)}
}

// LogLevel parses logging.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging.level: %w", err)
	}

	return level, nil
}

// SiteCodes returns the site codes with a sightseeing override, sorted.
func (c *Config) SiteCodes() []string {
	return slices.Sorted(maps.Keys(c.FNav.SightseeingSpots))
}
