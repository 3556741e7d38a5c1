// Package utils implements various helper functions.
package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// ReverseSliceInPlace reverses the order of the elements of s.
func ReverseSliceInPlace[V any](s []V) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// IsSorted returns true if s is sorted in strictly increasing order.
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}

// RangeInt returns the slice [start, start+1, ..., end].
// It returns an empty slice if end < start.
func RangeInt(start, end int) (r []int) {
	if end < start {
		return []int{}
	}
	r = make([]int, end-start+1)
	for i := range r {
		r[i] = start + i
	}
	return
}
