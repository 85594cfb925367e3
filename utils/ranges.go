package utils

import "cmp"

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T cmp.Ordered](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// IsInAnyRange checks if a value is within any of the inclusive [lo, hi] ranges.
func IsInAnyRange[T cmp.Ordered](value T, ranges ...[2]T) bool {
	for _, r := range ranges {
		if IsInRange(r[0], value, r[1]) {
			return true
		}
	}

	return false
}
