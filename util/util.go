package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// GetSortedKeys returns the keys of m in ascending order.
func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Mod is the always non-negative remainder of a / b.
func Mod[A constraints.Integer](a A, b A) A {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func IsAscending[A constraints.Ordered](nums []A) bool {
	for i := 1; i < len(nums); i++ {
		if nums[i] < nums[i-1] {
			return false
		}
	}
	return true
}

func InRange[A constraints.Integer](v A, low A, high A) bool {
	return v >= low && v <= high
}
