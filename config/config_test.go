package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.GreaterOrEqual(t, c.Workers, 1)
	require.Equal(t, DefaultArraySize, c.ArraySize)
	require.Zero(t, c.Iterations, "iterations has no default")
	require.False(t, c.HasSeed)
}

func TestValidate(t *testing.T) {
	valid := Config{Iterations: 10, Workers: 2, ArraySize: 2048}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing iterations", cfg: Config{Workers: 2, ArraySize: 2048}},
		{name: "negative iterations", cfg: Config{Iterations: -1, Workers: 2, ArraySize: 2048}},
		{name: "zero workers", cfg: Config{Iterations: 10, Workers: 0, ArraySize: 2048}},
		{name: "array size below minimum", cfg: Config{Iterations: 10, Workers: 2, ArraySize: 1023}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.cfg.Validate())
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"iterations": 50, "seed": 42, "debug": true}`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 50, c.Iterations)
	require.Equal(t, int64(42), c.Seed)
	require.True(t, c.HasSeed)
	require.True(t, c.Debug)

	// Keys absent from the file keep their defaults.
	require.Equal(t, Default().Workers, c.Workers)
	require.Equal(t, DefaultArraySize, c.ArraySize)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)
	require.Error(t, err)
}
