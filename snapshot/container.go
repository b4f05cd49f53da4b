package snapshot

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/arloliu/xcxsave/compress"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/internal/hash"
	"github.com/arloliu/xcxsave/internal/options"
	"github.com/arloliu/xcxsave/internal/pool"
)

// DefaultCompression is the payload compression used by Pack.
const DefaultCompression = format.CompressionZstd

// PackConfig holds the settings applied by PackOption values.
type PackConfig struct {
	compression format.CompressionType
	label       string
	id          ksuid.KSUID
	createdAt   time.Time
	flags       uint8
}

// PackOption configures Pack.
type PackOption = options.Option[*PackConfig]

// WithCompression selects the payload compression.
func WithCompression(ct format.CompressionType) PackOption {
	return options.New(func(c *PackConfig) error {
		if _, ok := validCompressions[ct]; !ok {
			return fmt.Errorf("%w: compression %s", errs.ErrInvalidFieldData, ct)
		}
		c.compression = ct

		return nil
	})
}

// WithLabel stores a label, usually a formatted backup name, after the header.
func WithLabel(label string) PackOption {
	return options.New(func(c *PackConfig) error {
		if len(label) > MaxLabelSize {
			return fmt.Errorf("%w: label is %d bytes, max %d", errs.ErrInvalidFieldData, len(label), MaxLabelSize)
		}
		c.label = label

		return nil
	})
}

// WithID sets the snapshot identifier instead of generating one.
func WithID(id ksuid.KSUID) PackOption {
	return options.NoError(func(c *PackConfig) {
		c.id = id
	})
}

// WithCreatedAt sets the creation time. Without WithID the generated
// identifier carries the same timestamp.
func WithCreatedAt(t time.Time) PackOption {
	return options.NoError(func(c *PackConfig) {
		c.createdAt = t
	})
}

// WithEncoded marks the payload as an encoded save file.
func WithEncoded() PackOption {
	return options.NoError(func(c *PackConfig) {
		c.flags |= FlagEncoded
	})
}

// WithChecksumValid records that the save passed checksum validation.
func WithChecksumValid(valid bool) PackOption {
	return options.NoError(func(c *PackConfig) {
		if valid {
			c.flags |= FlagChecksumValid
		} else {
			c.flags &^= FlagChecksumValid
		}
	})
}

// Snapshot is an unpacked snapshot.
type Snapshot struct {
	Header Header
	// Data is the uncompressed payload. It never aliases the packed input.
	Data []byte
}

// Pack compresses data into a snapshot container.
//
// order records the byte order of the save that data was taken from and may
// be UnknownByteOrder.
func Pack(data []byte, order format.ByteOrder, opts ...PackOption) ([]byte, error) {
	cfg := &PackConfig{compression: DefaultCompression}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if _, ok := validByteOrders[order]; !ok {
		return nil, fmt.Errorf("%w: byte order %d", errs.ErrInvalidFieldData, order)
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload is %d bytes", errs.ErrInvalidFieldData, len(data))
	}

	if cfg.createdAt.IsZero() {
		cfg.createdAt = time.Now()
	}
	if cfg.id == ksuid.Nil {
		id, err := ksuid.NewRandomWithTime(cfg.createdAt)
		if err != nil {
			return nil, err
		}
		cfg.id = id
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	h := Header{
		Version:        Version,
		ByteOrder:      order,
		Compression:    cfg.compression,
		Flags:          cfg.flags,
		ID:             cfg.id,
		CreatedAt:      cfg.createdAt.UnixMicro(),
		OriginalSize:   uint32(len(data)),    //nolint: gosec
		Fingerprint:    hash.Fingerprint(data),
		CompressedSize: uint32(len(payload)), //nolint: gosec
		Label:          cfg.label,
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.Reserve(h.Size())
	buf.B = h.AppendTo(buf.B)
	buf.B = append(buf.B, payload...)

	return slices.Clone(buf.Bytes()), nil
}

// Unpack parses, decompresses and verifies a packed snapshot.
func Unpack(packed []byte) (*Snapshot, error) {
	h, err := ParseHeader(packed)
	if err != nil {
		return nil, err
	}

	start := HeaderSize + len(h.Label)
	end := start + int(h.CompressedSize)
	if len(packed) < end {
		return nil, errs.NewFormatError(errs.ErrSnapshotTruncated, end, len(packed))
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(packed[start:end])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrSnapshotChecksum, err)
	}

	if len(data) != int(h.OriginalSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header records %d",
			errs.ErrSnapshotChecksum, len(data), h.OriginalSize)
	}
	if sum := hash.Fingerprint(data); sum != h.Fingerprint {
		return nil, fmt.Errorf("%w: stored 0x%016x, computed 0x%016x",
			errs.ErrSnapshotChecksum, h.Fingerprint, sum)
	}

	if h.Compression == format.CompressionNone {
		data = slices.Clone(data)
	}
	if data == nil {
		data = []byte{}
	}

	return &Snapshot{Header: h, Data: data}, nil
}
