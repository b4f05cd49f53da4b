// Package xcxsave decodes, inspects and re-encodes Xenoblade Chronicles X
// save data.
//
// Save files are XOR-obfuscated with a 512-byte keystream whose starting
// position is stored in the first four bytes of the file. The original WiiU
// edition writes big-endian files and the Definitive Edition writes
// little-endian ones; Decode detects which from the header.
//
// # Basic Usage
//
//	raw, _ := os.ReadFile("gamedata")
//	save, err := xcxsave.Decode(raw)
//	if err != nil {
//	    return err
//	}
//
//	c, _ := save.Character()
//	timer, _ := save.GameTimer()
//	fmt.Printf("%s lv.%d, played %s\n", c.Name, c.Level, timer)
//
//	encoded, err := save.Encode(crypt.WithPreservedEntropy())
//
// # Package Structure
//
// This package wraps the lower-level packages for the common flow:
//
//   - crypt: keystream transform, byte-order detection and key recovery
//   - section: decoded header, size and checksum validation
//   - record: character, probes, FrontierNav sites, timers and locations
//   - region: named byte ranges and buffer comparison
//   - snapshot: compressed snapshots and the snapshot store
package xcxsave

import (
	"slices"
	"time"

	"github.com/arloliu/xcxsave/crypt"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/keystream"
	"github.com/arloliu/xcxsave/record"
	"github.com/arloliu/xcxsave/region"
	"github.com/arloliu/xcxsave/section"
	"github.com/arloliu/xcxsave/snapshot"
)

// SaveData is a decoded save buffer. Its accessors decode records on demand
// and never return slices that alias the buffer.
//
// SaveData is not safe for concurrent use while FixChecksum or SetGameTimer
// runs.
type SaveData struct {
	data      []byte
	order     format.ByteOrder
	pos       crypt.KeyPosition
	key       *keystream.Key
	recovered bool
}

// Decode decodes an encoded save file. The input is not modified.
func Decode(raw []byte, opts ...crypt.DecryptOption) (*SaveData, error) {
	res, err := crypt.Decrypt(raw, opts...)
	if err != nil {
		return nil, err
	}

	return &SaveData{
		data:      res.Data,
		order:     res.ByteOrder,
		pos:       res.KeyPosition,
		key:       res.Key,
		recovered: res.Recovered,
	}, nil
}

// FromDecoded wraps a copy of an already decoded buffer. An unknown order is
// taken from the buffer's format marker.
func FromDecoded(decoded []byte, order format.ByteOrder) (*SaveData, error) {
	if !order.IsKnown() {
		order = crypt.DecodedByteOrder(decoded)
	}
	if !order.IsKnown() {
		return nil, &errs.FormatError{Err: errs.ErrFormatNotRecognized}
	}

	pos, err := crypt.InitialKeyPosition(decoded, order)
	if err != nil {
		return nil, err
	}

	return &SaveData{data: slices.Clone(decoded), order: order, pos: pos}, nil
}

// FromDecodedWithKey wraps a copy of a decoded buffer that is encoded again
// with key through ApplyKey. The byte order is taken from the format marker and
// may be UnknownByteOrder.
func FromDecodedWithKey(decoded []byte, key keystream.Key) (*SaveData, error) {
	if len(decoded) < crypt.KeyInfoSize {
		return nil, errs.NewFormatError(errs.ErrInvalidHeaderSize, crypt.KeyInfoSize, len(decoded))
	}

	save := &SaveData{data: slices.Clone(decoded), order: crypt.DecodedByteOrder(decoded), key: &key}
	if save.order.IsKnown() {
		save.pos, _ = crypt.InitialKeyPosition(decoded, save.order)
	}

	return save, nil
}

// FromSnapshot wraps the payload of an unpacked snapshot.
func FromSnapshot(snap *snapshot.Snapshot) (*SaveData, error) {
	if snap.Header.IsEncoded() {
		return Decode(snap.Data, crypt.WithByteOrder(snap.Header.ByteOrder))
	}

	return FromDecoded(snap.Data, snap.Header.ByteOrder)
}

// Bytes returns a copy of the decoded buffer.
func (s *SaveData) Bytes() []byte {
	return slices.Clone(s.data)
}

// Len returns the decoded buffer length.
func (s *SaveData) Len() int {
	return len(s.data)
}

// ByteOrder returns the byte order of the save. It is UnknownByteOrder when the
// save was decoded with a key and carries no format marker.
func (s *SaveData) ByteOrder() format.ByteOrder {
	return s.order
}

// KeyPosition returns the initial key position from the header.
func (s *SaveData) KeyPosition() crypt.KeyPosition {
	return s.pos
}

// RecoveredKey reports whether the buffer was decoded by key scanning.
func (s *SaveData) RecoveredKey() bool {
	return s.recovered
}

// Key returns the mask that encodes s through ApplyKey: the key s was decoded
// or wrapped with, or the mask derived from its byte order and key position.
// The second result is false when neither is available.
func (s *SaveData) Key() (keystream.Key, bool) {
	if s.key != nil {
		return *s.key, true
	}
	if !s.order.IsKnown() {
		return keystream.Key{}, false
	}

	return crypt.EffectiveKey(keystream.Serialize(s.order), s.pos), true
}

// Header parses the decoded header.
func (s *SaveData) Header() (section.SaveHeader, error) {
	return section.ParseSaveHeader(s.data, s.order)
}

// Validate checks the stored size and checksum.
func (s *SaveData) Validate() error {
	return section.Validate(s.data, s.order)
}

// VerifyChecksum reports whether the stored checksum matches the payload.
func (s *SaveData) VerifyChecksum() bool {
	return section.VerifyChecksum(s.data, s.order)
}

// FixChecksum rewrites the stored checksum. It fails when the size check
// does not pass.
func (s *SaveData) FixChecksum() error {
	fixed, err := section.FixChecksum(s.data, s.order)
	if err != nil {
		return err
	}
	s.data = fixed

	return nil
}

// Character decodes the player character and BLADE record.
func (s *SaveData) Character() (record.Character, error) {
	return record.ReadCharacter(s.data)
}

// AppearanceAt decodes the appearance record at offset.
func (s *SaveData) AppearanceAt(offset int) (record.Appearance, error) {
	return record.ReadAppearance(s.data, offset)
}

// GameTimer decodes the play timer.
func (s *SaveData) GameTimer() (record.GameTimer, error) {
	return record.ReadGameTimer(s.data)
}

// SetGameTimer writes t to the play timer field. The checksum is not updated.
func (s *SaveData) SetGameTimer(t record.GameTimer) error {
	return record.PutGameTimer(s.data, t)
}

// SavedTime decodes the last-save timestamp.
func (s *SaveData) SavedTime() (record.SavedTime, error) {
	return record.ReadSavedTime(s.data)
}

// ProbeInventory decodes the data probe inventory.
func (s *SaveData) ProbeInventory() (record.Inventory, error) {
	return record.ReadProbeInventory(s.data)
}

// Sites decodes the FrontierNav probe layout.
func (s *SaveData) Sites() ([]record.InstalledProbe, error) {
	return record.ReadSites(s.data)
}

// SightseeingSpots decodes the found sightseeing spots.
func (s *SaveData) SightseeingSpots() (record.SpotSet, error) {
	return record.ReadSightseeingSpots(s.data)
}

// Locations decodes the landmark catalogue with its found flags.
func (s *SaveData) Locations() ([]record.Location, error) {
	return record.ReadLocations(s.data)
}

// Tokens returns the backup name tokens of the save.
func (s *SaveData) Tokens(now time.Time) (snapshot.Tokens, error) {
	return snapshot.ReadTokens(s.data, now)
}

// Compare diffs s against other, merging runs of changed bytes.
func (s *SaveData) Compare(other *SaveData, filter region.Filter, names *region.Ranges) ([]region.Delta, error) {
	return region.Aggregate(s.data, other.data, filter, names)
}

// Encode re-encodes the buffer in its own byte order.
//
// A save decoded or wrapped with a key is encoded with that key through
// ApplyKey; opts do not apply and the key info word is kept as is.
func (s *SaveData) Encode(opts ...crypt.EncryptOption) ([]byte, error) {
	if s.key != nil {
		return crypt.ApplyKey(s.data, *s.key), nil
	}

	return crypt.Encrypt(s.data, s.order, opts...)
}

// Snapshot packs the decoded buffer, recording whether it passed validation.
func (s *SaveData) Snapshot(opts ...snapshot.PackOption) ([]byte, error) {
	opts = append([]snapshot.PackOption{snapshot.WithChecksumValid(s.Validate() == nil)}, opts...)

	return snapshot.Pack(s.data, s.order, opts...)
}
