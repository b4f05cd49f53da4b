package crypt

import (
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/internal/options"
	"github.com/arloliu/xcxsave/keystream"
)

// Result is a decoded buffer together with the parameters used to decode it.
type Result struct {
	// Data is the decoded buffer. It never aliases the encoded input.
	Data []byte
	// ByteOrder is the detected or forced byte order. When the buffer was
	// decoded with a key it is read from the decoded format marker and may be
	// UnknownByteOrder.
	ByteOrder format.ByteOrder
	// KeyPosition is the initial key position read from the header.
	KeyPosition KeyPosition
	// Key is the mask the buffer was decoded with through ApplyKey. It is nil
	// when the buffer was decoded with the keystream table.
	Key *keystream.Key
	// Recovered is set when Key was found by key scanning.
	Recovered bool
}

// DecryptConfig holds the settings applied by DecryptOption values.
type DecryptConfig struct {
	order       format.ByteOrder
	keyRecovery bool
	key         *keystream.Key
}

// DecryptOption configures Decrypt.
type DecryptOption = options.Option[*DecryptConfig]

// WithByteOrder skips header detection and decodes with order.
// format.UnknownByteOrder restores detection.
func WithByteOrder(order format.ByteOrder) DecryptOption {
	return options.NoError(func(c *DecryptConfig) {
		c.order = order
	})
}

// WithKeyRecovery enables the GuessKey fallback when the header carries no marker.
func WithKeyRecovery(enabled bool) DecryptOption {
	return options.NoError(func(c *DecryptConfig) {
		c.keyRecovery = enabled
	})
}

// WithKey decodes with a known mask, such as one saved from an earlier key
// recovery. Detection and the keystream table are skipped.
func WithKey(key keystream.Key) DecryptOption {
	return options.NoError(func(c *DecryptConfig) {
		c.key = &key
	})
}

// Decrypt decodes an encoded save buffer.
//
// A key given with WithKey is applied with ApplyKey. Otherwise the byte order is
// taken from WithByteOrder or detected from the header. When detection fails,
// Decrypt returns a FormatError unless key recovery is enabled, in which case the
// key is recovered with GuessKey and applied with ApplyKey.
func Decrypt(data []byte, opts ...DecryptOption) (Result, error) {
	cfg := &DecryptConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return Result{}, err
	}

	if len(data) < KeyInfoSize {
		return Result{}, errs.NewFormatError(errs.ErrInvalidHeaderSize, KeyInfoSize, len(data))
	}

	if cfg.key != nil {
		return decryptWithKey(data, *cfg.key, false), nil
	}

	order := cfg.order
	if !order.IsKnown() {
		order = DetectByteOrder(data)
	}

	if !order.IsKnown() {
		if !cfg.keyRecovery {
			return Result{}, &errs.FormatError{Err: errs.ErrFormatNotRecognized}
		}

		key, err := GuessKey(data)
		if err != nil {
			return Result{}, err
		}

		return decryptWithKey(data, key, true), nil
	}

	pos, err := InitialKeyPosition(data, order)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Data:        Transform(data, keystream.Serialize(order), pos),
		ByteOrder:   order,
		KeyPosition: pos,
	}, nil
}

func decryptWithKey(data []byte, key keystream.Key, recovered bool) Result {
	res := Result{
		Data:      ApplyKey(data, key),
		Key:       &key,
		Recovered: recovered,
	}

	res.ByteOrder = DecodedByteOrder(res.Data)
	if res.ByteOrder.IsKnown() {
		// the key info word is at least KeyInfoSize bytes here
		res.KeyPosition, _ = InitialKeyPosition(res.Data, res.ByteOrder)
	}

	return res
}

type keyPositionMode uint8

const (
	fromHeaderPos keyPositionMode = iota
	fixedPos
	randomPos
)

type entropyMode uint8

const (
	randomEntropy entropyMode = iota
	fixedEntropy
	preservedEntropy
)

// EncryptConfig holds the settings applied by EncryptOption values.
type EncryptConfig struct {
	posMode     keyPositionMode
	pos         KeyPosition
	entropyMode entropyMode
	entropy     uint32
	rng         *rand.Rand
}

// EncryptOption configures Encrypt.
type EncryptOption = options.Option[*EncryptConfig]

// WithKeyPosition encodes starting at pos. Values above 511 wrap modulo 512.
func WithKeyPosition(pos int) EncryptOption {
	return options.New(func(c *EncryptConfig) error {
		if pos < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidKeyPosition, pos)
		}
		c.posMode = fixedPos
		c.pos = KeyPosition(pos % keystream.KeySize)

		return nil
	})
}

// WithRandomKeyPosition picks a random starting key position.
func WithRandomKeyPosition() EncryptOption {
	return options.NoError(func(c *EncryptConfig) {
		c.posMode = randomPos
	})
}

// WithEntropy sets the free high bits of the key info word.
func WithEntropy(entropy uint32) EncryptOption {
	return options.NoError(func(c *EncryptConfig) {
		c.entropyMode = fixedEntropy
		c.entropy = entropy
	})
}

// WithPreservedEntropy keeps the high bits already present in the buffer header.
func WithPreservedEntropy() EncryptOption {
	return options.NoError(func(c *EncryptConfig) {
		c.entropyMode = preservedEntropy
	})
}

// WithRand sets the random source for key positions and entropy.
func WithRand(rng *rand.Rand) EncryptOption {
	return options.NoError(func(c *EncryptConfig) {
		c.rng = rng
	})
}

func (c *EncryptConfig) random32() uint32 {
	if c.rng != nil {
		return c.rng.Uint32()
	}

	return rand.Uint32()
}

// Encrypt encodes a decoded buffer for the given byte order.
//
// By default the key position is read from the decoded buffer's own key info word
// and fresh random entropy is written to the header. The returned slice is newly
// allocated; decoded is not modified.
func Encrypt(decoded []byte, order format.ByteOrder, opts ...EncryptOption) ([]byte, error) {
	cfg := &EncryptConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if !order.IsKnown() {
		return nil, &errs.FormatError{Err: errs.ErrFormatNotRecognized}
	}

	info, err := KeyInfo(decoded, order)
	if err != nil {
		return nil, err
	}

	var pos KeyPosition
	switch cfg.posMode {
	case fixedPos:
		pos = cfg.pos
	case randomPos:
		pos = KeyPosition(cfg.random32() % keystream.KeySize)
	default:
		pos = KeyPosition(info & KeyPositionMask)
	}

	var entropy uint32
	switch cfg.entropyMode {
	case fixedEntropy:
		entropy = cfg.entropy
	case preservedEntropy:
		entropy = info
	default:
		entropy = cfg.random32()
	}

	out := Transform(decoded, keystream.Serialize(order), pos)
	PutKeyInfo(out, order, entropy, pos)

	return out, nil
}
