package crypt

import (
	"math/rand/v2"
	"testing"

	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/keystream"
	"github.com/stretchr/testify/require"
)

// plainBuffer returns a decoded buffer of size n with a valid header for order.
func plainBuffer(rng *rand.Rand, order format.ByteOrder, pos KeyPosition, n int) []byte {
	buf := randomBytes(rng, n)
	copy(buf, plainHeader(order, pos))

	return buf
}

func TestDecryptEncrypt_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))

	for _, order := range format.ByteOrders {
		for _, pos := range []KeyPosition{0, 1, 128, 333, MaxKeyPosition} {
			plain := plainBuffer(rng, order, pos, 4096)

			encoded, err := Encrypt(plain, order, WithPreservedEntropy())
			require.NoError(t, err)
			require.Equal(t, plain[:KeyInfoSize], encoded[:KeyInfoSize])

			res, err := Decrypt(encoded)
			require.NoError(t, err)
			require.Equal(t, order, res.ByteOrder)
			require.Equal(t, pos, res.KeyPosition)
			require.Nil(t, res.Key)
			require.False(t, res.Recovered)
			require.Equal(t, plain, res.Data)
		}
	}
}

func TestDecrypt_DoesNotAliasInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(33, 34))
	plain := plainBuffer(rng, format.BigEndian, 5, 64)
	encoded, err := Encrypt(plain, format.BigEndian, WithPreservedEntropy())
	require.NoError(t, err)

	res, err := Decrypt(encoded)
	require.NoError(t, err)

	res.Data[10] ^= 0xFF
	again, err := Decrypt(encoded)
	require.NoError(t, err)
	require.Equal(t, plain, again.Data)
}

func TestDecrypt_Errors(t *testing.T) {
	rng := rand.New(rand.NewPCG(35, 36))

	_, err := Decrypt([]byte{1, 2})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = Decrypt(randomBytes(rng, 64))
	require.ErrorIs(t, err, errs.ErrFormatNotRecognized)

	_, err = Decrypt(randomBytes(rng, 64), WithKeyRecovery(true))
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestDecrypt_WithByteOrder(t *testing.T) {
	// an all-zero buffer carries no marker, so it can only be decoded with a forced order
	data := make([]byte, 64)

	_, err := Decrypt(data)
	require.Error(t, err)

	res, err := Decrypt(data, WithByteOrder(format.LittleEndian))
	require.NoError(t, err)
	require.Equal(t, format.LittleEndian, res.ByteOrder)
	require.Equal(t, KeyPosition(0), res.KeyPosition)
	require.Equal(t, Transform(data, keystream.Serialize(format.LittleEndian), 0), res.Data)
}

func TestDecrypt_KeyRecovery(t *testing.T) {
	plain := make([]byte, KeyInfoSize+4*keystream.KeySize)
	encoded := Transform(plain, keystream.Serialize(format.BigEndian), 200)

	res, err := Decrypt(encoded, WithKeyRecovery(true))
	require.NoError(t, err)
	require.NotNil(t, res.Key)
	require.True(t, res.Recovered)
	require.Equal(t, format.UnknownByteOrder, res.ByteOrder)
	require.Equal(t, plain, res.Data)
}

func TestDecrypt_WithKey(t *testing.T) {
	rng := rand.New(rand.NewPCG(37, 38))

	for _, order := range format.ByteOrders {
		t.Run(order.String(), func(t *testing.T) {
			plain := plainBuffer(rng, order, 300, 3000)
			encoded, err := Encrypt(plain, order, WithPreservedEntropy())
			require.NoError(t, err)

			key := EffectiveKey(keystream.Serialize(order), 300)
			res, err := Decrypt(encoded, WithKey(key))
			require.NoError(t, err)
			require.Equal(t, plain, res.Data)
			require.Equal(t, &key, res.Key)
			require.False(t, res.Recovered)
			require.Equal(t, order, res.ByteOrder)
			require.Equal(t, KeyPosition(300), res.KeyPosition)

			// ApplyKey is its own inverse
			require.Equal(t, encoded, ApplyKey(res.Data, *res.Key))
		})
	}
}

func TestDecrypt_WithKeyOverridesDetection(t *testing.T) {
	plain := make([]byte, KeyInfoSize+4*keystream.KeySize)
	encoded := Transform(plain, keystream.Serialize(format.LittleEndian), 77)

	recovered, err := Decrypt(encoded, WithKeyRecovery(true))
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []DecryptOption
	}{
		{"key_only", []DecryptOption{WithKey(*recovered.Key)}},
		{"key_and_order", []DecryptOption{WithByteOrder(format.BigEndian), WithKey(*recovered.Key)}},
		{"key_and_recovery", []DecryptOption{WithKeyRecovery(true), WithKey(*recovered.Key)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decrypt(encoded, tt.opts...)
			require.NoError(t, err)
			require.Equal(t, plain, res.Data)
			require.False(t, res.Recovered)
			require.Equal(t, format.UnknownByteOrder, res.ByteOrder)
		})
	}
}

func TestDecrypt_WithKeyShortInput(t *testing.T) {
	_, err := Decrypt([]byte{1, 2, 3}, WithKey(keystream.Key{}))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestEncrypt_KeyInfoWord(t *testing.T) {
	plain := plainHeader(format.BigEndian, 0)

	tests := []struct {
		name    string
		opts    []EncryptOption
		wantPos KeyPosition
		check   func(t *testing.T, info uint32)
	}{
		{
			name:    "fixed position and entropy",
			opts:    []EncryptOption{WithKeyPosition(300), WithEntropy(0xFFFFFFFF)},
			wantPos: 300,
			check: func(t *testing.T, info uint32) {
				require.Equal(t, uint32(0xFFFFFE00|300), info)
			},
		},
		{
			name:    "position wraps",
			opts:    []EncryptOption{WithKeyPosition(512 + 9), WithEntropy(0)},
			wantPos: 9,
			check: func(t *testing.T, info uint32) {
				require.Equal(t, uint32(9), info)
			},
		},
		{
			name:    "seeded random",
			opts:    []EncryptOption{WithRandomKeyPosition(), WithRand(rand.New(rand.NewPCG(1, 1)))},
			wantPos: 0xFFFF,
			check:   func(t *testing.T, info uint32) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encrypt(plain, format.BigEndian, tt.opts...)
			require.NoError(t, err)

			info, err := KeyInfo(encoded, format.BigEndian)
			require.NoError(t, err)
			if tt.wantPos != 0xFFFF {
				require.Equal(t, tt.wantPos, KeyPosition(info&KeyPositionMask))
			}
			tt.check(t, info)

			res, err := Decrypt(encoded)
			require.NoError(t, err)
			require.Equal(t, format.BigEndian, res.ByteOrder)
			require.Equal(t, plain[KeyInfoSize:], res.Data[KeyInfoSize:])
		})
	}
}

func TestEncrypt_SeededRandomIsReproducible(t *testing.T) {
	plain := plainHeader(format.LittleEndian, 0)

	a, err := Encrypt(plain, format.LittleEndian, WithRandomKeyPosition(), WithRand(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)
	b, err := Encrypt(plain, format.LittleEndian, WithRandomKeyPosition(), WithRand(rand.New(rand.NewPCG(7, 7))))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestEncrypt_Errors(t *testing.T) {
	_, err := Encrypt(make([]byte, 16), format.UnknownByteOrder)
	require.ErrorIs(t, err, errs.ErrFormatNotRecognized)

	_, err = Encrypt(make([]byte, 3), format.BigEndian)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	_, err = Encrypt(make([]byte, 16), format.BigEndian, WithKeyPosition(-1))
	require.ErrorIs(t, err, errs.ErrInvalidKeyPosition)
}

func TestZeroBuffer_ReencodeIsIdentity(t *testing.T) {
	original := make([]byte, 359984)

	res, err := Decrypt(original, WithByteOrder(format.BigEndian))
	require.NoError(t, err)
	require.Equal(t, KeyPosition(0), res.KeyPosition)

	reencoded, err := Encrypt(res.Data, format.BigEndian, WithKeyPosition(0), WithPreservedEntropy())
	require.NoError(t, err)
	require.Equal(t, original, reencoded)
}

func TestKeyPosition_Valid(t *testing.T) {
	require.True(t, KeyPosition(0).Valid())
	require.True(t, KeyPosition(MaxKeyPosition).Valid())
	require.False(t, KeyPosition(512).Valid())
}

func TestKeyInfo_ShortBuffer(t *testing.T) {
	_, err := KeyInfo([]byte{1}, format.BigEndian)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	var ferr *errs.FormatError
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, KeyInfoSize, ferr.Expected)
	require.Equal(t, 1, ferr.Actual)
}
