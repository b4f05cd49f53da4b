package crypt

import (
	"bytes"

	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/keystream"
)

// recoveryRun is the number of identical consecutive windows that identify a key.
const recoveryRun = 3

// GuessKey recovers the effective XOR mask of an encoded buffer by looking for
// three consecutive identical 512-byte windows at 512-byte strides.
//
// The recovered mask already includes the payload index and 0xFF terms, so it is
// applied with ApplyKey rather than Transform. A KeyRecoveryError is returned when
// the scan reaches the end of data without a match.
func GuessKey(data []byte) (keystream.Key, error) {
	var (
		key     keystream.Key
		windows [recoveryRun][]byte
		seen    int
	)

	for offset := 0; offset < len(data); offset += keystream.KeySize {
		window := data[offset:min(offset+keystream.KeySize, len(data))]
		windows[seen%recoveryRun] = window
		seen++
		if seen < recoveryRun {
			continue
		}
		if bytes.Equal(windows[0], windows[1]) && bytes.Equal(windows[1], windows[2]) {
			copy(key[:], window)

			return key, nil
		}
	}

	return key, &errs.KeyRecoveryError{Size: len(data), Windows: seen}
}

// ApplyKey XORs data with a recovered key at matching offsets (offset mod 512).
// The key info word is copied unchanged. The result is newly allocated.
func ApplyKey(data []byte, key keystream.Key) []byte {
	out := make([]byte, len(data))
	n := copy(out, data[:min(len(data), KeyInfoSize)])
	for i := n; i < len(data); i++ {
		out[i] = data[i] ^ key[i%keystream.KeySize]
	}

	return out
}

// EffectiveKey folds the keystream table key started at pos into the mask that
// GuessKey would recover, so ApplyKey(data, EffectiveKey(key, pos)) equals
// Transform(data, key, pos). The result can be saved as a key file.
func EffectiveKey(key keystream.Key, pos KeyPosition) keystream.Key {
	var mask keystream.Key
	p := int(pos) % keystream.KeySize
	for i := range keystream.KeySize {
		mask[(KeyInfoSize+i)%keystream.KeySize] = byte(i) ^ key[p] ^ 0xFF
		p++
		if p == keystream.KeySize {
			p = 0
		}
	}

	return mask
}
