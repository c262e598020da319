package mapping

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("key not found")

// Comparator orders keys: negative when a < b, zero when equal, positive when a > b.
type Comparator[K any] func(a, b K) int

// Map is an ordered key/value container.
//
// Search reports a missing key as an error wrapping ErrNotFound, while Remove
// reports it as (zero, false). Instrumentation accessors describe the most
// recent Search call only.
type Map[K any, V any] interface {
	// Insert stores val under key, overwriting the value of an existing key,
	// and returns the size after the operation.
	Insert(key K, val V) int
	Search(key K) (V, error)
	Remove(key K) (V, bool)
	Size() int
	IsEmpty() bool
	// String returns the keys in ascending order separated by single spaces.
	String() string

	LastComparisons() int
	LastElapsed() time.Duration
	LastElapsedMillis() float64
}
