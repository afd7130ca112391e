package rangekit

// ErasedPosition hides the concrete position type behind the element type.
// Ranges with different position types can share a single MultiRange once erased.
//
// The zero value equals only to another zero value.
type ErasedPosition[T any] struct{ p erasable[T] }

type erasable[T any] interface {
	equal(erasable[T]) bool
	next() erasable[T]
	get() *T
}

// Erase converts r into a range of ErasedPosition.
func Erase[P Position[P, T], T any](r Range[P, T]) Range[ErasedPosition[T], T] {
	return Range[ErasedPosition[T], T]{
		From: ErasedPosition[T]{p: boxed[P, T]{p: r.From}},
		To:   ErasedPosition[T]{p: boxed[P, T]{p: r.To}},
	}
}

func (p ErasedPosition[T]) Equal(o ErasedPosition[T]) bool {
	if p.p == nil || o.p == nil {
		return p.p == nil && o.p == nil
	}
	return p.p.equal(o.p)
}

func (p ErasedPosition[T]) Next() ErasedPosition[T] { return ErasedPosition[T]{p: p.p.next()} }

func (p ErasedPosition[T]) Get() *T { return p.p.get() }

type boxed[P Position[P, T], T any] struct{ p P }

func (b boxed[P, T]) equal(o erasable[T]) bool {
	ob, ok := o.(boxed[P, T])
	return ok && b.p.Equal(ob.p)
}

func (b boxed[P, T]) next() erasable[T] { return boxed[P, T]{p: b.p.Next()} }

func (b boxed[P, T]) get() *T { return b.p.Get() }
