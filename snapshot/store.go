package snapshot

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/internal/options"
)

var keyPrefix = []byte("snap/")

// StoreConfig holds the settings applied by StoreOption values.
type StoreConfig struct {
	pebble *pebble.Options
	sync   bool
}

// StoreOption configures OpenStore.
type StoreOption = options.Option[*StoreConfig]

// WithPebbleOptions replaces the pebble options used to open the database.
// Tests use it to pass an in-memory vfs.
func WithPebbleOptions(opts *pebble.Options) StoreOption {
	return options.NoError(func(c *StoreConfig) {
		c.pebble = opts
	})
}

// WithSync makes every write wait for the WAL to reach disk.
func WithSync(enabled bool) StoreOption {
	return options.NoError(func(c *StoreConfig) {
		c.sync = enabled
	})
}

// Store keeps packed snapshots in a pebble database keyed by snapshot id.
// It is safe for concurrent use.
type Store struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
}

// OpenStore opens or creates the store at path.
func OpenStore(path string, opts ...StoreOption) (*Store, error) {
	cfg := &StoreConfig{pebble: &pebble.Options{}}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	db, err := pebble.Open(path, cfg.pebble)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	writeOpts := pebble.NoSync
	if cfg.sync {
		writeOpts = pebble.Sync
	}

	return &Store{db: db, writeOpts: writeOpts}, nil
}

func storeKey(id ksuid.KSUID) []byte {
	key := make([]byte, 0, len(keyPrefix)+len(id))
	key = append(key, keyPrefix...)

	return append(key, id[:]...)
}

// Put validates the header of packed and stores it under its id.
func (s *Store) Put(packed []byte) (ksuid.KSUID, error) {
	h, err := ParseHeader(packed)
	if err != nil {
		return ksuid.Nil, err
	}
	if len(packed) < h.Size() {
		return ksuid.Nil, errs.NewFormatError(errs.ErrSnapshotTruncated, h.Size(), len(packed))
	}

	if err := s.db.Set(storeKey(h.ID), packed[:h.Size()], s.writeOpts); err != nil {
		return ksuid.Nil, fmt.Errorf("store snapshot %s: %w", h.ID, err)
	}

	return h.ID, nil
}

// Save packs data and stores it.
func (s *Store) Save(data []byte, order format.ByteOrder, opts ...PackOption) (ksuid.KSUID, error) {
	packed, err := Pack(data, order, opts...)
	if err != nil {
		return ksuid.Nil, err
	}

	return s.Put(packed)
}

// GetPacked returns a copy of the packed snapshot stored under id.
func (s *Store) GetPacked(id ksuid.KSUID) ([]byte, error) {
	value, closer, err := s.db.Get(storeKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", errs.ErrSnapshotNotFound, id)
		}

		return nil, err
	}
	defer closer.Close()

	return slices.Clone(value), nil
}

// Get loads and unpacks the snapshot stored under id.
func (s *Store) Get(id ksuid.KSUID) (*Snapshot, error) {
	packed, err := s.GetPacked(id)
	if err != nil {
		return nil, err
	}

	return Unpack(packed)
}

// List returns the headers of all stored snapshots, oldest first.
func (s *Store) List() ([]Header, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: prefixEnd(keyPrefix),
	})
	if err != nil {
		return nil, err
	}

	var headers []Header
	for iter.First(); iter.Valid(); iter.Next() {
		h, err := ParseHeader(iter.Value())
		if err != nil {
			_ = iter.Close()
			return nil, fmt.Errorf("snapshot key %x: %w", iter.Key(), err)
		}
		headers = append(headers, h)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	return headers, nil
}

// Latest returns the header of the most recent snapshot.
func (s *Store) Latest() (Header, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: prefixEnd(keyPrefix),
	})
	if err != nil {
		return Header{}, err
	}
	defer iter.Close()

	if !iter.Last() {
		return Header{}, errs.ErrSnapshotNotFound
	}

	return ParseHeader(iter.Value())
}

// Delete removes the snapshot stored under id.
func (s *Store) Delete(id ksuid.KSUID) error {
	key := storeKey(id)

	_, closer, err := s.db.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return fmt.Errorf("%w: %s", errs.ErrSnapshotNotFound, id)
		}

		return err
	}
	_ = closer.Close()

	return s.db.Delete(key, s.writeOpts)
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func prefixEnd(prefix []byte) []byte {
	end := slices.Clone(prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}

	return nil
}
