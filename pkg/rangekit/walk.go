package rangekit

import "iter"

// Cursor is the iteration protocol shared by the iterators of this package.
// It is implemented by the pointer of the iterator type I.
type Cursor[T any, I any] interface {
	// Next moves the iterator to the next element.
	Next()
	// Get returns a reference to the current element.
	Get() *T
	// Equal reports whether both iterators are at the same stage and the same position within it.
	Equal(I) bool
	// Clone returns an independently positioned copy of the iterator.
	Clone() I
}

// Traversal is the common surface of MultiRange, Chain and the Tuple family.
type Traversal[T any, I any] interface {
	Begin() I
	End() I
	All() iter.Seq[T]
}

// Walk turns a begin and end iterator pair into an iter.Seq.
// It runs the "from begin while not equal to end, dereference, increment" loop
// on a clone of begin, so the returned sequence can be iterated multiple times.
//
//	for v := range rangekit.Walk[int](mr.Begin(), mr.End()) {}
func Walk[T any, I any, C interface {
	*I
	Cursor[T, I]
}](begin, end I) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := C(&begin).Clone()
		for c := C(&it); !c.Equal(end); c.Next() {
			if !yield(*c.Get()) {
				return
			}
		}
	}
}

// Distance counts the steps needed to get from begin to end.
func Distance[T any, I any, C interface {
	*I
	Cursor[T, I]
}](begin, end I) int {
	var n int
	it := C(&begin).Clone()
	for c := C(&it); !c.Equal(end); c.Next() {
		n++
	}
	return n
}
