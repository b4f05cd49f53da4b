package snapshot

import (
	"testing"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
)

func testHeader(t *testing.T) Header {
	t.Helper()

	id, err := ksuid.NewRandomWithTime(testSavedAt)
	require.NoError(t, err)

	return Header{
		Version:        Version,
		ByteOrder:      format.LittleEndian,
		Compression:    format.CompressionS2,
		Flags:          FlagChecksumValid,
		ID:             id,
		CreatedAt:      testSavedAt.UnixMicro(),
		OriginalSize:   359984,
		Fingerprint:    0x0123456789ABCDEF,
		CompressedSize: 1234,
		Label:          "Elma-042",
	}
}

func TestHeader_BytesParse(t *testing.T) {
	h := testHeader(t)

	b := h.Bytes()
	require.Len(t, b, HeaderSize+len("Elma-042"))
	require.Equal(t, []byte("XCXS"), b[0:4])
	require.Equal(t, byte(Version), b[4])
	require.Equal(t, byte(format.LittleEndian), b[5])
	require.Equal(t, byte(format.CompressionS2), b[6])
	require.Equal(t, FlagChecksumValid, b[7])
	require.Equal(t, []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01}, b[40:48])
	require.Equal(t, []byte{0x08, 0x00, 0x00, 0x00}, b[52:56])

	got, err := ParseHeader(b)
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.Equal(t, HeaderSize+8+1234, got.Size())
	require.True(t, got.Created().Equal(testSavedAt))
	require.True(t, got.HasValidChecksum())
	require.False(t, got.IsEncoded())
}

func TestHeader_AppendTo(t *testing.T) {
	h := testHeader(t)
	prefix := []byte{0xAA, 0xBB}

	b := h.AppendTo(prefix)
	require.Equal(t, prefix, b[:2])
	require.Equal(t, h.Bytes(), b[2:])
}

func TestParseHeader_Errors(t *testing.T) {
	valid := func(t *testing.T) []byte {
		h := testHeader(t)
		return h.Bytes()
	}

	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{"short", func(b []byte) []byte { return b[:HeaderSize-1] }, errs.ErrInvalidHeaderSize},
		{"magic", func(b []byte) []byte { b[0] = 'Y'; return b }, errs.ErrInvalidMagicNumber},
		{"version", func(b []byte) []byte { b[4] = 9; return b }, errs.ErrSnapshotVersion},
		{"byte_order", func(b []byte) []byte { b[5] = 0x03; return b }, errs.ErrInvalidFieldData},
		{"byte_order_high", func(b []byte) []byte { b[5] = 0xFF; return b }, errs.ErrInvalidFieldData},
		{"compression", func(b []byte) []byte { b[6] = 0x7F; return b }, errs.ErrInvalidFieldData},
		{"flags", func(b []byte) []byte { b[7] = 0x80; return b }, errs.ErrInvalidFieldData},
		{"label_truncated", func(b []byte) []byte { return b[:HeaderSize+3] }, errs.ErrSnapshotTruncated},
		{"label_too_long", func(b []byte) []byte { b[52], b[53] = 0xFF, 0xFF; return b }, errs.ErrInvalidFieldData},
		{"label_utf8", func(b []byte) []byte { b[HeaderSize] = 0xFF; return b }, errs.ErrInvalidFieldData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHeader(tt.mutate(valid(t)))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseHeader_ByteOrders(t *testing.T) {
	tests := []struct {
		name  string
		order format.ByteOrder
	}{
		{"unknown", format.UnknownByteOrder},
		{"big", format.BigEndian},
		{"little", format.LittleEndian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHeader(t)
			h.ByteOrder = tt.order

			got, err := ParseHeader(h.Bytes())
			require.NoError(t, err)
			require.Equal(t, tt.order, got.ByteOrder)
		})
	}
}

func TestHeader_NegativeCreatedAt(t *testing.T) {
	h := testHeader(t)
	h.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC).UnixMicro()

	got, err := ParseHeader(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h.CreatedAt, got.CreatedAt)
}
