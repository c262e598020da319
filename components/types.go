package components

import (
	"time"
)

const (
	ImplBST    = "bst"
	ImplRBTree = "rbtree"
)

// Config describes one workload run. Fields map to the TOML file keys.
type Config struct {
	DataPath string        `toml:"data"`
	Impl     string        `toml:"impl"`
	Lookups  []string      `toml:"lookups"`
	Removals []string      `toml:"removals"`
	Progress time.Duration `toml:"progress"`
	Debug    bool          `toml:"debug"`
}

// Record is a single key/value line of a dataset.
type Record struct {
	Key   string
	Value string
}

type Lookup struct {
	Key           string
	Value         string
	Found         bool
	Comparisons   int
	ElapsedMillis float64
}

type Removal struct {
	Key     string
	Value   string
	Removed bool
}

type Report struct {
	Impl     string
	Loaded   int
	Size     int
	Lookups  []Lookup
	Removals []Removal
	Ordered  string
}
