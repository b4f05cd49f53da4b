package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcxsave/crypt"
	"github.com/arloliu/xcxsave/endian"
	"github.com/arloliu/xcxsave/errs"
	"github.com/arloliu/xcxsave/format"
	"github.com/arloliu/xcxsave/keystream"
	"github.com/arloliu/xcxsave/record"
	"github.com/arloliu/xcxsave/section"
)

// setup writes an encoded save and a configuration file into a temp dir.
func setup(t *testing.T) (dir, save, conf string) {
	t.Helper()
	dir = t.TempDir()

	plain := make([]byte, section.GameDataSize)
	crypt.PutKeyInfo(plain, format.BigEndian, 0x12345000, 77)
	copy(plain[record.CharacterOffset:], "Elma")
	endian.GetBigEndianEngine().PutUint32(plain[record.CharacterOffset+record.NameSlotSize:], 4)
	require.NoError(t, section.WriteHeader(plain, format.BigEndian))

	encoded, err := crypt.Encrypt(plain, format.BigEndian, crypt.WithPreservedEntropy())
	require.NoError(t, err)

	save = filepath.Join(dir, "gamedata")
	require.NoError(t, os.WriteFile(save, encoded, 0o600))

	conf = filepath.Join(dir, "xcxsave.yaml")
	yaml := "snapshot:\n  directory: " + filepath.Join(dir, "snapshots") + "\n" +
		"fnav:\n  output_dir: " + filepath.Join(dir, "fnav") + "\n" +
		"logging:\n  level: error\n"
	require.NoError(t, os.WriteFile(conf, []byte(yaml), 0o600))

	return dir, save, conf
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())

	return out.String()
}

func runErr(t *testing.T, args ...string) error {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// resetFlags restores flag defaults after the test, since rootCmd is shared.
func resetFlags(t *testing.T, c *cobra.Command, names ...string) {
	t.Helper()

	t.Cleanup(func() {
		for _, name := range names {
			f := c.Flags().Lookup(name)
			require.NotNil(t, f, name)
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		}
	})
}

func TestDecryptEncrypt(t *testing.T) {
	dir, save, conf := setup(t)
	decoded := filepath.Join(dir, "gamedata.dec")
	encoded := filepath.Join(dir, "gamedata.out")

	run(t, "-c", conf, "decrypt", save, decoded)
	run(t, "-c", conf, "encrypt", decoded, encoded)

	want, err := os.ReadFile(save)
	require.NoError(t, err)
	got, err := os.ReadFile(encoded)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestInfo(t *testing.T) {
	_, save, conf := setup(t)

	out := run(t, "-c", conf, "info", save)
	require.Contains(t, out, "Name:         Elma")
	require.Contains(t, out, "Checksum:     ok")
	require.Contains(t, out, "key position 77")
}

func TestProbes(t *testing.T) {
	dir, save, conf := setup(t)

	out := run(t, "-c", conf, "probes", save)
	require.True(t, strings.HasPrefix(out, record.FrontierNavBaseURL))

	for _, name := range []string{"inventory.csv", "sites.csv", "layout.csv"} {
		_, err := os.Stat(filepath.Join(dir, "fnav", name))
		require.NoError(t, err, name)
	}
}

func TestDiff(t *testing.T) {
	_, save, conf := setup(t)

	out := run(t, "-c", conf, "diff", save, save)
	require.Contains(t, out, ": 0 change(s)")
}

func TestSnapshot(t *testing.T) {
	dir, save, conf := setup(t)

	id := strings.TrimSpace(run(t, "-c", conf, "snapshot", "save", "--label", "{name}-lv{level}", save))
	require.Len(t, id, 27)

	list := run(t, "-c", conf, "snapshot", "list")
	require.Contains(t, list, id)
	require.Contains(t, list, "Elma-lv0")

	restored := filepath.Join(dir, "restored")
	run(t, "-c", conf, "snapshot", "restore", "latest", restored)

	want, err := os.ReadFile(save)
	require.NoError(t, err)
	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, want, got)

	run(t, "-c", conf, "snapshot", "delete", id)
	require.NotContains(t, run(t, "-c", conf, "snapshot", "list"), id)
}

func TestLoadConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	c, err := loadConfig(missing, false)
	require.NoError(t, err)
	require.Equal(t, "info", c.Logging.Level)

	_, err = loadConfig(missing, true)
	require.Error(t, err)
}

func TestDecryptEncrypt_KeyFile(t *testing.T) {
	resetFlags(t, decryptCmd, "key", "dump-key")
	resetFlags(t, encryptCmd, "key")

	dir, save, conf := setup(t)
	decoded := filepath.Join(dir, "gamedata.dec")
	keyed := filepath.Join(dir, "gamedata.keyed")
	encoded := filepath.Join(dir, "gamedata.out")

	run(t, "-c", conf, "decrypt", "--dump-key", save, decoded)

	keyFile := save + "_key"
	key, err := os.ReadFile(keyFile)
	require.NoError(t, err)
	require.Len(t, key, keystream.KeySize)
	require.Equal(t, crypt.EffectiveKey(keystream.Serialize(format.BigEndian), 77), keystream.Key(key))

	run(t, "-c", conf, "decrypt", "--dump-key=false", "--key", keyFile, save, keyed)
	run(t, "-c", conf, "encrypt", "--key", keyFile, keyed, encoded)

	want, err := os.ReadFile(decoded)
	require.NoError(t, err)
	got, err := os.ReadFile(keyed)
	require.NoError(t, err)
	require.Equal(t, want, got)

	want, err = os.ReadFile(save)
	require.NoError(t, err)
	got, err = os.ReadFile(encoded)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecrypt_RecoveredKeyFile(t *testing.T) {
	resetFlags(t, decryptCmd, "key", "dump-key", "recover-key")
	resetFlags(t, encryptCmd, "key")

	dir, _, conf := setup(t)

	// a marker-less buffer only decodes by key scanning
	plain := make([]byte, crypt.KeyInfoSize+4*keystream.KeySize)
	raw := crypt.Transform(plain, keystream.Serialize(format.LittleEndian), 300)
	dump := filepath.Join(dir, "memory.bin")
	require.NoError(t, os.WriteFile(dump, raw, 0o600))

	decoded := filepath.Join(dir, "memory.dec")
	run(t, "-c", conf, "decrypt", "--recover-key", "--dump-key", dump, decoded)

	got, err := os.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, plain, got)

	encoded := filepath.Join(dir, "memory.out")
	run(t, "-c", conf, "encrypt", "-k", dump+"_key", decoded, encoded)

	got, err = os.ReadFile(encoded)
	require.NoError(t, err)
	require.Equal(t, raw, got)
}

func TestKeyFile_InvalidSize(t *testing.T) {
	resetFlags(t, decryptCmd, "key")
	resetFlags(t, encryptCmd, "key")

	dir, save, conf := setup(t)

	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"short", keystream.KeySize - 1},
		{"long", keystream.KeySize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyFile := filepath.Join(dir, tt.name+".key")
			require.NoError(t, os.WriteFile(keyFile, make([]byte, tt.size), 0o600))

			err := runErr(t, "-c", conf, "decrypt", "--key", keyFile, save, filepath.Join(dir, "out.dec"))
			require.ErrorIs(t, err, errs.ErrInvalidKeySize)

			err = runErr(t, "-c", conf, "encrypt", "--key", keyFile, save, filepath.Join(dir, "out.enc"))
			require.ErrorIs(t, err, errs.ErrInvalidKeySize)
		})
	}
}
