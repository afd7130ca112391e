package rangekit

import "iter"

// Range pairs the start and the end position of one source sequence.
// From and To must originate from the same sequence,
// and From equal to To denotes an empty range.
type Range[P Position[P, T], T any] struct {
	From P
	To   P
}

// RangeOf creates a Range from a start and an end position.
func RangeOf[P Position[P, T], T any](from, to P) Range[P, T] {
	return Range[P, T]{From: from, To: to}
}

func (r Range[P, T]) Begin() P { return r.From }

func (r Range[P, T]) End() P { return r.To }

func (r Range[P, T]) Empty() bool { return r.From.Equal(r.To) }

// Len counts the elements of the range by walking through it.
func (r Range[P, T]) Len() int {
	var n int
	for p := r.From; !p.Equal(r.To); p = p.Next() {
		n++
	}
	return n
}

func (r Range[P, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := r.From; !p.Equal(r.To); p = p.Next() {
			if !yield(*p.Get()) {
				return
			}
		}
	}
}
