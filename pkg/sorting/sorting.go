// Package sorting provides the stable merge sort used to rank sale quantities.
// It has no dependency on domain types.
package sorting

// MergeSort returns a sorted copy of values, leaving the input untouched.
// Split at the midpoint, sort both halves, then merge taking the
// smaller-or-equal front element first, which keeps equal elements in their
// left-half relative order.
func MergeSort(values []int) []int {
	if len(values) <= 1 {
		out := make([]int, len(values))
		copy(out, values)
		return out
	}
	mid := len(values) / 2
	left := MergeSort(values[:mid])
	right := MergeSort(values[mid:])
	return merge(left, right)
}

func merge(left, right []int) []int {
	merged := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}
