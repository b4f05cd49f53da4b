package snapshot

import (
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
)

func openMemStore(t *testing.T) *Store {
	t.Helper()

	s, err := OpenStore("snapshots", WithPebbleOptions(&pebble.Options{FS: vfs.NewMem()}))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	return s
}

func TestStore_SaveGetDelete(t *testing.T) {
	s := openMemStore(t)
	data := decodedSave()

	id, err := s.Save(data, format.LittleEndian, WithLabel("Elma"))
	require.NoError(t, err)

	snap, err := s.Get(id)
	require.NoError(t, err)
	require.Equal(t, data, snap.Data)
	require.Equal(t, id, snap.Header.ID)
	require.Equal(t, format.LittleEndian, snap.Header.ByteOrder)
	require.Equal(t, "Elma", snap.Header.Label)

	packed, err := s.GetPacked(id)
	require.NoError(t, err)
	h, err := ParseHeader(packed)
	require.NoError(t, err)
	require.Equal(t, snap.Header, h)

	require.NoError(t, s.Delete(id))
	_, err = s.Get(id)
	require.ErrorIs(t, err, errs.ErrSnapshotNotFound)
	require.ErrorIs(t, s.Delete(id), errs.ErrSnapshotNotFound)
}

func TestStore_PutValidates(t *testing.T) {
	s := openMemStore(t)

	_, err := s.Put([]byte("not a snapshot at all"))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	packed, err := Pack(decodedSave(), format.BigEndian)
	require.NoError(t, err)
	_, err = s.Put(packed[:len(packed)-10])
	require.ErrorIs(t, err, errs.ErrSnapshotTruncated)

	// trailing bytes are not stored
	id, err := s.Put(append(packed, 0xDE, 0xAD))
	require.NoError(t, err)
	got, err := s.GetPacked(id)
	require.NoError(t, err)
	require.Equal(t, packed, got)
}

func TestStore_ListChronological(t *testing.T) {
	s := openMemStore(t)
	base := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	// insert out of order
	offsets := []int{3, 1, 4, 0, 2}
	for _, off := range offsets {
		at := base.Add(time.Duration(off) * time.Hour)
		_, err := s.Save([]byte{byte(off)}, format.BigEndian,
			WithCreatedAt(at), WithLabel(at.Format("15h")))
		require.NoError(t, err)
	}

	headers, err := s.List()
	require.NoError(t, err)
	require.Len(t, headers, len(offsets))

	labels := make([]string, 0, len(headers))
	for _, h := range headers {
		labels = append(labels, h.Label)
	}
	require.Equal(t, []string{"10h", "11h", "12h", "13h", "14h"}, labels)

	latest, err := s.Latest()
	require.NoError(t, err)
	require.Equal(t, "14h", latest.Label)
}

func TestStore_Empty(t *testing.T) {
	s := openMemStore(t)

	headers, err := s.List()
	require.NoError(t, err)
	require.Empty(t, headers)

	_, err = s.Latest()
	require.ErrorIs(t, err, errs.ErrSnapshotNotFound)

	_, err = s.Get(ksuid.New())
	require.ErrorIs(t, err, errs.ErrSnapshotNotFound)
}

func TestStore_ConcurrentSave(t *testing.T) {
	s := openMemStore(t)
	data := decodedSave()

	const writers = 8
	ids := make([]ksuid.KSUID, writers)
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.Save(data, format.BigEndian, WithCompression(format.CompressionS2))
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = id
		}()
	}
	wg.Wait()

	headers, err := s.List()
	require.NoError(t, err)
	require.Len(t, headers, writers)

	for _, id := range ids {
		snap, err := s.Get(id)
		require.NoError(t, err)
		require.Equal(t, data, snap.Data)
	}
}

func TestOpenStore_Sync(t *testing.T) {
	s, err := OpenStore("sync", WithSync(true), WithPebbleOptions(&pebble.Options{FS: vfs.NewMem()}))
	require.NoError(t, err)
	defer s.Close()

	require.Same(t, pebble.Sync, s.writeOpts)
}

func TestPrefixEnd(t *testing.T) {
	require.Equal(t, []byte("snap0"), prefixEnd([]byte("snap/")))
	require.Equal(t, []byte{0x01}, prefixEnd([]byte{0x00, 0xFF}))
	require.Nil(t, prefixEnd([]byte{0xFF, 0xFF}))
}
