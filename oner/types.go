package oner

// A List is a general array type which can have an arbitrary getter.
// This can be useful for avoiding contiguous slice allocations, for example
// when training on a subset of a dataset.
type List[T any] struct {
	Len int
	Get func(int) T
}

func NewListSlice[T any](s []T) List[T] {
	return List[T]{
		Len: len(s),
		Get: func(i int) T {
			return s[i]
		},
	}
}

// NewListIndices creates a view of s containing only the given indices, in
// order.
func NewListIndices[T any](s []T, indices []int) List[T] {
	return List[T]{
		Len: len(indices),
		Get: func(i int) T {
			return s[indices[i]]
		},
	}
}
