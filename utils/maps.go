package utils

import (
	"cmp"
	"iter"
	"slices"
)

// SortedMap iterates m's entries in ascending key order, for callers
// (e.g. deterministic JSON/log output of a typed-data message) that
// need reproducible iteration over an otherwise-unordered map.
func SortedMap[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	keys := MapKeys(m)
	slices.Sort(keys)
	return func(yield func(K, V) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

func MapValues[K comparable, V any](m map[K]V) []V {
	sl := make([]V, 0, len(m))
	for _, v := range m {
		sl = append(sl, v)
	}

	return sl
}

func MapKeys[K comparable, V any](m map[K]V) []K {
	sl := make([]K, 0, len(m))
	for k := range m {
		sl = append(sl, k)
	}

	return sl
}
