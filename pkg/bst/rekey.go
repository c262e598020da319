package bst

import (
	"cmp"

	"bst_map/pkg/mapping"
)

// Rekey builds a new tree holding the values of src, each stored under
// keyFn(value) and ordered by the natural order of the new key type.
// Values of src are inserted in ascending order of their old keys, so when
// keyFn maps several values to the same key the last one wins.
func Rekey[K2 cmp.Ordered, K1 any, V any](src *Tree[K1, V], keyFn func(V) K2) *Tree[K2, V] {
	return RekeyWith(src, keyFn, cmp.Compare[K2])
}

// RekeyWith is Rekey with an explicit ordering for the new keys.
func RekeyWith[K2 any, K1 any, V any](
	src *Tree[K1, V],
	keyFn func(V) K2,
	c mapping.Comparator[K2],
) *Tree[K2, V] {
	dst := NewWith[K2, V](c)
	for _, v := range src.All() {
		dst.Insert(keyFn(v), v)
	}
	return dst
}
