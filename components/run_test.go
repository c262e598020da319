package components

import (
	"bytes"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dataset = `# key,value
50,fifty
30,thirty
70,seventy
20,twenty
40,forty
60,sixty
80,eighty
40,FORTY
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.csv")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeDataset(t)

	for _, impl := range []string{ImplBST, ImplRBTree} {
		t.Run(impl, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &Config{
				DataPath: path,
				Impl:     impl,
				Lookups:  []string{"40", "45"},
				Removals: []string{"50", "55"},
			}

			report, err := Run(cfg, zerolog.New(&buf))
			require.NoError(t, err)

			assert.Equal(t, impl, report.Impl)
			assert.Equal(t, 8, report.Loaded)
			assert.Equal(t, 6, report.Size)
			assert.Equal(t, "20 30 40 60 70 80", report.Ordered)

			require.Len(t, report.Lookups, 2)
			assert.True(t, report.Lookups[0].Found)
			assert.Equal(t, "FORTY", report.Lookups[0].Value)
			assert.Positive(t, report.Lookups[0].Comparisons)
			assert.False(t, report.Lookups[1].Found)

			assert.Equal(t, []Removal{
				{Key: "50", Value: "fifty", Removed: true},
				{Key: "55", Removed: false},
			}, report.Removals)

			assert.Contains(t, buf.String(), `"message":"search"`)
			assert.Contains(t, buf.String(), `"level":"warn"`)
		})
	}
}

func TestRun_BSTComparisons(t *testing.T) {
	cfg := &Config{
		DataPath: writeDataset(t),
		Impl:     ImplBST,
		Lookups:  []string{"50", "40", "45"},
	}

	report, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)

	got := []int{}
	for _, l := range report.Lookups {
		got = append(got, l.Comparisons)
	}
	assert.Equal(t, []int{1, 3, 3}, got)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := Run(&Config{Impl: ImplBST}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Run(&Config{DataPath: filepath.Join(t.TempDir(), "none"), Impl: ImplBST}, zerolog.Nop())
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	records := []Record{{"b", "2"}, {"a", "1"}, {"c", "3"}}
	inserted := &atomic.Int64{}

	m, err := Build(ImplBST, Records(records), inserted)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, int64(3), inserted.Load())
	assert.Equal(t, "a b c", m.String())

	_, err = Build("splay", Records(records), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
