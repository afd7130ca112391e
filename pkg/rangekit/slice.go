package rangekit

import "unsafe"

// SlicePosition is a position in a slice or in an array that was sliced.
type SlicePosition[T any] struct {
	vs []T
	i  int
}

// Slice returns the range of every element of vs.
// Arrays can be used through slicing them: Slice(arr[:]).
func Slice[T any](vs []T) Range[SlicePosition[T], T] {
	return Range[SlicePosition[T], T]{
		From: SlicePosition[T]{vs: vs, i: 0},
		To:   SlicePosition[T]{vs: vs, i: len(vs)},
	}
}

func (p SlicePosition[T]) Equal(o SlicePosition[T]) bool {
	return p.i == o.i && unsafe.SliceData(p.vs) == unsafe.SliceData(o.vs)
}

func (p SlicePosition[T]) Next() SlicePosition[T] {
	return SlicePosition[T]{vs: p.vs, i: p.i + 1}
}

func (p SlicePosition[T]) Get() *T { return &p.vs[p.i] }

// Index is the offset of the position within its slice.
func (p SlicePosition[T]) Index() int { return p.i }
