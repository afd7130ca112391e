package rangekit

import (
	"iter"
	"slices"
)

// MultiRange presents an ordered list of ranges that share the same position type as one sequence.
// Empty ranges are legal and contribute no elements.
//
// A MultiRange is a value; copies share the same ranges.
type MultiRange[P Position[P, T], T any] struct {
	ranges []Range[P, T]
}

// New creates a MultiRange visiting the ranges in the given order.
func New[P Position[P, T], T any](ranges ...Range[P, T]) MultiRange[P, T] {
	return MultiRange[P, T]{ranges: slices.Clone(ranges)}
}

// FromSlices creates a MultiRange over slices of the same element type.
func FromSlices[T any](vss ...[]T) MultiRange[SlicePosition[T], T] {
	var rs = make([]Range[SlicePosition[T], T], 0, len(vss))
	for _, vs := range vss {
		rs = append(rs, Slice(vs))
	}
	return MultiRange[SlicePosition[T], T]{ranges: rs}
}

// Len returns the number of ranges.
func (mr MultiRange[P, T]) Len() int { return len(mr.ranges) }

func (mr MultiRange[P, T]) Ranges() []Range[P, T] { return slices.Clone(mr.ranges) }

func (mr MultiRange[P, T]) Begin() MultiIterator[P, T] {
	if len(mr.ranges) == 0 {
		return MultiIterator[P, T]{}
	}
	it := MultiIterator[P, T]{
		ranges: mr.ranges,
		index:  0,
		pos:    mr.ranges[0].From,
	}
	it.settle()
	return it
}

// End returns the terminal iterator, which is positioned at the end of the last range.
func (mr MultiRange[P, T]) End() MultiIterator[P, T] {
	if len(mr.ranges) == 0 {
		return MultiIterator[P, T]{}
	}
	last := len(mr.ranges) - 1
	return MultiIterator[P, T]{
		ranges: mr.ranges,
		index:  last,
		pos:    mr.ranges[last].To,
	}
}

func (mr MultiRange[P, T]) All() iter.Seq[T] {
	return Walk[T](mr.Begin(), mr.End())
}

// MultiIterator is the iterator of a MultiRange.
// It is a value type, and assigning it creates an independent copy.
type MultiIterator[P Position[P, T], T any] struct {
	ranges []Range[P, T]
	index  int
	pos    P
}

func (it *MultiIterator[P, T]) exhausted() bool {
	return it.pos.Equal(it.ranges[it.index].To)
}

// settle moves past the exhausted ranges, but never past the last one.
func (it *MultiIterator[P, T]) settle() {
	for it.index < len(it.ranges)-1 && it.exhausted() {
		it.index++
		it.pos = it.ranges[it.index].From
	}
}

func (it *MultiIterator[P, T]) terminal() bool {
	return len(it.ranges) == 0 || it.exhausted()
}

func (it *MultiIterator[P, T]) Next() {
	it.settle()
	if it.terminal() {
		panic(ErrExhausted)
	}
	it.pos = it.pos.Next()
	it.settle()
}

func (it *MultiIterator[P, T]) Get() *T {
	it.settle()
	if it.terminal() {
		panic(ErrExhausted)
	}
	return it.pos.Get()
}

func (it MultiIterator[P, T]) Equal(o MultiIterator[P, T]) bool {
	return it.index == o.index && it.pos.Equal(o.pos)
}

func (it MultiIterator[P, T]) Clone() MultiIterator[P, T] { return it }

// Range is the index of the active range.
func (it MultiIterator[P, T]) Range() int { return it.index }

// Position is the position within the active range.
func (it MultiIterator[P, T]) Position() P { return it.pos }
