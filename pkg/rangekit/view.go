package rangekit

// ViewPosition exposes a position over elements of type E as a position over the unified element type T.
type ViewPosition[P Position[P, E], E any, T any] struct {
	pos  P
	view func(E) T
}

// View converts a range of E elements into a range of T elements.
// It is how stages with different element types are unified under one element type,
// for example a range of int32 and a range of int64 both viewed as int64.
//
// Get on a viewed position returns a reference to a freshly converted value,
// thus writes through it do not reach the underlying sequence.
func View[P Position[P, E], E any, T any](r Range[P, E], view func(E) T) Range[ViewPosition[P, E, T], T] {
	return Range[ViewPosition[P, E, T], T]{
		From: ViewPosition[P, E, T]{pos: r.From, view: view},
		To:   ViewPosition[P, E, T]{pos: r.To, view: view},
	}
}

func (p ViewPosition[P, E, T]) Equal(o ViewPosition[P, E, T]) bool { return p.pos.Equal(o.pos) }

func (p ViewPosition[P, E, T]) Next() ViewPosition[P, E, T] {
	return ViewPosition[P, E, T]{pos: p.pos.Next(), view: p.view}
}

func (p ViewPosition[P, E, T]) Get() *T {
	v := p.view(*p.pos.Get())
	return &v
}

// Unwrap returns the underlying position.
func (p ViewPosition[P, E, T]) Unwrap() P { return p.pos }
