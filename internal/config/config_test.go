package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/radixsort/radix"
	"github.com/katalvlaran/radixsort/sample"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, sample.Reference(), c.Values)
	assert.Equal(t, int64(0), c.Seed)
	assert.Equal(t, 10, c.Base)
	assert.Equal(t, "reject", c.Negatives)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.Trace)
	require.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radixdemo.yaml")
	data := []byte(`
values: [30, -2, 1]
seed: 42
base: 16
negatives: split
log_level: debug
trace: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{30, -2, 1}, c.Values)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 16, c.Base)
	assert.Equal(t, "split", c.Negatives)
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.Trace)

	p, err := c.Policy()
	require.NoError(t, err)
	assert.Equal(t, radix.SignSplit, p)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_AppliesDefaults(t *testing.T) {
	c, err := Parse([]byte("seed: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, DefaultBase, c.Base)
	assert.Equal(t, DefaultNegatives, c.Negatives)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
	assert.Equal(t, sample.Reference(), c.Values)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{name: "malformed yaml", data: "values: [1, 2"},
		{name: "wrong type", data: "base: ten"},
		{name: "base one", data: "base: 1", invalid: true},
		{name: "negative base", data: "base: -4", invalid: true},
		{name: "base above max", data: "base: 65537", invalid: true},
		{name: "huge base", data: "base: 4611686018427387904", invalid: true},
		{name: "unknown policy", data: "negatives: flip", invalid: true},
		{name: "unknown log level", data: "log_level: loud", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestParse_ZeroBaseMeansDefault(t *testing.T) {
	c, err := Parse([]byte("base: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBase, c.Base)
}

func TestOptions(t *testing.T) {
	c := Default()
	c.Base = 2
	c.Negatives = "split"

	opts, err := c.Options()
	require.NoError(t, err)

	a := []int{3, -1, 2}
	require.NoError(t, radix.Sort(a, opts...))
	assert.Equal(t, []int{-1, 2, 3}, a)

	c.Negatives = "nope"
	_, err = c.Options()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
