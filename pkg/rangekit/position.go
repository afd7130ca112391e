package rangekit

// Position is a forward-only place in a source sequence.
//
// Positions are values.
// Next returns the following position and leaves the receiver untouched,
// thus copying a position copies the traversal state as well.
type Position[P any, T any] interface {
	// Equal reports whether both positions point to the same place of the same sequence.
	Equal(P) bool
	// Next returns the position of the following element.
	// Calling Next on the end position of a range is a caller error.
	Next() P
	// Get returns a reference to the element at the position.
	// The reference must not be retained past the next advancement of the iterator that returned it.
	Get() *T
}

// None is a position of a sequence that has no elements.
// It fills the unused stage slots of the Tuple family.
type None[T any] struct{}

func (None[T]) Equal(None[T]) bool { return true }

func (n None[T]) Next() None[T] { return n }

func (None[T]) Get() *T { panic(ErrNoStage) }
