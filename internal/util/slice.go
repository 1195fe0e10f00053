package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](s []T) T {
	var result T
	for i, v := range s {
		if i == 0 || v < result {
			result = v
		}
	}
	return result
}

func Max[T constraints.Ordered](s []T) T {
	var result T
	for i, v := range s {
		if i == 0 || v > result {
			result = v
		}
	}
	return result
}

func SortedKeys[T constraints.Ordered, K any](input map[T]K) []T {
	result := make([]T, 0, len(input))
	for k := range input {
		result = append(result, k)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}
