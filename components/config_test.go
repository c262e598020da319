package components

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bst_map.toml")
	content := `
data = "fruits.csv"
impl = "rbtree"
lookups = ["apple", "kiwi"]
removals = ["fig"]
progress = "250ms"
debug = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fruits.csv", cfg.DataPath)
	assert.Equal(t, ImplRBTree, cfg.Impl)
	assert.Equal(t, []string{"apple", "kiwi"}, cfg.Lookups)
	assert.Equal(t, []string{"fig"}, cfg.Removals)
	assert.Equal(t, 250*time.Millisecond, cfg.Progress)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte(`data = "x.tsv"`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ImplBST, cfg.Impl)
	assert.Equal(t, "x.tsv", cfg.DataPath)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte(`data = `), 0o644))

	tcs := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.toml")},
		{name: "malformed toml", path: broken},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(tc.path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tcs := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{name: "bst", cfg: Config{DataPath: "a", Impl: ImplBST}, valid: true},
		{name: "rbtree", cfg: Config{DataPath: "a", Impl: ImplRBTree}, valid: true},
		{name: "no data", cfg: Config{Impl: ImplBST}},
		{name: "unknown impl", cfg: Config{DataPath: "a", Impl: "avl"}},
		{name: "negative progress", cfg: Config{DataPath: "a", Impl: ImplBST, Progress: -time.Second}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
