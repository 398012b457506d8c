package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSortOrdersValues(t *testing.T) {
	cases := map[string][]int{
		"reversed":   {9, 7, 5, 3, 1},
		"mixed":      {3, 1, 4, 1, 5, 9, 2, 6},
		"duplicates": {2, 2, 2, 1, 1, 3},
		"negatives":  {0, -3, 7, -1, 7},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			sorted := MergeSort(input)
			require.Len(t, sorted, len(input))
			for i := 1; i < len(sorted); i++ {
				assert.LessOrEqual(t, sorted[i-1], sorted[i])
			}
			assert.ElementsMatch(t, input, sorted)
		})
	}
}

func TestMergeSortAlreadySorted(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	assert.Equal(t, input, MergeSort(input))
}

func TestMergeSortEmptyAndSingle(t *testing.T) {
	assert.Empty(t, MergeSort(nil))
	assert.Equal(t, []int{42}, MergeSort([]int{42}))
}

func TestMergeSortLeavesInputUntouched(t *testing.T) {
	input := []int{5, 3, 1}
	_ = MergeSort(input)
	assert.Equal(t, []int{5, 3, 1}, input)
}
