// Package rbmap implements mapping.Map on top of the red-black treemap from
// gods. It shares the instrumentation contract of the bst package and serves
// as a balanced reference for it.
package rbmap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/emirpasic/gods/maps/treemap"

	"bst_map/pkg/mapping"
	"bst_map/pkg/util"
)

var _ mapping.Map[int, string] = (*Map[int, string])(nil)

type Map[K any, V any] struct {
	items *treemap.Map

	// incremented by the comparator handed to the treemap
	comparisons int

	lastComparisons int
	lastElapsed     time.Duration
}

func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewWith[K, V](cmp.Compare[K])
}

func NewWith[K any, V any](c mapping.Comparator[K]) *Map[K, V] {
	m := &Map[K, V]{}
	m.items = treemap.NewWith(func(a, b interface{}) int {
		m.comparisons++
		return c(a.(K), b.(K))
	})
	return m
}

func (m *Map[K, V]) Insert(key K, val V) int {
	m.items.Put(key, val)
	return m.items.Size()
}

func (m *Map[K, V]) Search(key K) (V, error) {
	var (
		val   interface{}
		found bool
	)

	m.comparisons = 0
	m.lastElapsed = util.Measure(func() {
		val, found = m.items.Get(key)
	})
	m.lastComparisons = m.comparisons

	if !found {
		var zero V
		return zero, fmt.Errorf("search %v: %w", key, mapping.ErrNotFound)
	}
	return val.(V), nil
}

func (m *Map[K, V]) Remove(key K) (V, bool) {
	val, found := m.items.Get(key)
	if !found {
		var zero V
		return zero, false
	}

	m.items.Remove(key)
	return val.(V), true
}

func (m *Map[K, V]) Size() int {
	return m.items.Size()
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.items.Empty()
}

func (m *Map[K, V]) LastComparisons() int {
	return m.lastComparisons
}

func (m *Map[K, V]) LastElapsed() time.Duration {
	return m.lastElapsed
}

func (m *Map[K, V]) LastElapsedMillis() float64 {
	return util.Millis(m.lastElapsed)
}

// All returns an iterator over key/value pairs in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.items.Iterator()
		for it.Next() {
			if !yield(it.Key().(K), it.Value().(V)) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.items.Size())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

func (m *Map[K, V]) String() string {
	sb := strings.Builder{}
	for k := range m.All() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, k)
	}
	return strings.TrimSpace(sb.String())
}
