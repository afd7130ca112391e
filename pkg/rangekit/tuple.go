package rangekit

import "iter"

// Tuple is a sequence of up to four stages whose position types are fixed at the call site.
// Unused stages are filled with None.
// Use the Tuple1 .. Tuple4 aliases and the matching constructors instead of spelling out the filler stages.
// Traversals of five or more differently typed stages use Chain.
//
// The iterator of a Tuple keeps its stage handler inline, in a tagged union with one slot per stage.
// Moving to the next stage clears the resident slot and constructs the next one in place,
// so stage transitions never allocate.
type Tuple[P0 Position[P0, T], P1 Position[P1, T], P2 Position[P2, T], P3 Position[P3, T], T any] struct {
	stages int
	r0     Range[P0, T]
	r1     Range[P1, T]
	r2     Range[P2, T]
	r3     Range[P3, T]
}

// Tuple1 is a Tuple with a single stage.
type Tuple1[P0 Position[P0, T], T any] = Tuple[P0, None[T], None[T], None[T], T]

// Tuple2 is a Tuple with two stages.
type Tuple2[P0 Position[P0, T], P1 Position[P1, T], T any] = Tuple[P0, P1, None[T], None[T], T]

// Tuple3 is a Tuple with three stages.
type Tuple3[P0 Position[P0, T], P1 Position[P1, T], P2 Position[P2, T], T any] = Tuple[P0, P1, P2, None[T], T]

// Tuple4 is a Tuple with four stages.
type Tuple4[P0 Position[P0, T], P1 Position[P1, T], P2 Position[P2, T], P3 Position[P3, T], T any] = Tuple[P0, P1, P2, P3, T]

func NewTuple1[P0 Position[P0, T], T any](r0 Range[P0, T]) *Tuple1[P0, T] {
	return &Tuple1[P0, T]{stages: 1, r0: r0}
}

func NewTuple2[P0 Position[P0, T], P1 Position[P1, T], T any](r0 Range[P0, T], r1 Range[P1, T]) *Tuple2[P0, P1, T] {
	return &Tuple2[P0, P1, T]{stages: 2, r0: r0, r1: r1}
}

func NewTuple3[P0 Position[P0, T], P1 Position[P1, T], P2 Position[P2, T], T any](r0 Range[P0, T], r1 Range[P1, T], r2 Range[P2, T]) *Tuple3[P0, P1, P2, T] {
	return &Tuple3[P0, P1, P2, T]{stages: 3, r0: r0, r1: r1, r2: r2}
}

func NewTuple4[P0 Position[P0, T], P1 Position[P1, T], P2 Position[P2, T], P3 Position[P3, T], T any](r0 Range[P0, T], r1 Range[P1, T], r2 Range[P2, T], r3 Range[P3, T]) *Tuple4[P0, P1, P2, P3, T] {
	return &Tuple4[P0, P1, P2, P3, T]{stages: 4, r0: r0, r1: r1, r2: r2, r3: r3}
}

// Len returns the number of stages.
func (t *Tuple[P0, P1, P2, P3, T]) Len() int { return t.stages }

func (t *Tuple[P0, P1, P2, P3, T]) Begin() TupleIterator[P0, P1, P2, P3, T] {
	it := TupleIterator[P0, P1, P2, P3, T]{tuple: t}
	it.enter(0, false)
	it.settle()
	return it
}

// End returns the terminal iterator,
// which is positioned at the end of the last stage's range.
func (t *Tuple[P0, P1, P2, P3, T]) End() TupleIterator[P0, P1, P2, P3, T] {
	it := TupleIterator[P0, P1, P2, P3, T]{tuple: t}
	it.enter(t.stages-1, true)
	return it
}

func (t *Tuple[P0, P1, P2, P3, T]) All() iter.Seq[T] {
	return Walk[T](t.Begin(), t.End())
}

// TupleIterator is the iterator of a Tuple.
// It is a value type, and assigning it creates an independent copy.
type TupleIterator[P0 Position[P0, T], P1 Position[P1, T], P2 Position[P2, T], P3 Position[P3, T], T any] struct {
	tuple *Tuple[P0, P1, P2, P3, T]
	u     stageUnion[P0, P1, P2, P3, T]
}

// stageUnion is a tagged union of the per stage handlers.
// Only the slot selected by tag is alive, every other slot holds its zero value.
type stageUnion[P0 Position[P0, T], P1 Position[P1, T], P2 Position[P2, T], P3 Position[P3, T], T any] struct {
	tag int
	s0  slot[P0, T]
	s1  slot[P1, T]
	s2  slot[P2, T]
	s3  slot[P3, T]
}

// slot is the inline stage handler.
type slot[P Position[P, T], T any] struct {
	rng Range[P, T]
	cur P
}

func (s *slot[P, T]) construct(r Range[P, T], atEnd bool) {
	s.rng = r
	s.cur = r.From
	if atEnd {
		s.cur = r.To
	}
}

func (s *slot[P, T]) destroy() { *s = slot[P, T]{} }

func (s *slot[P, T]) done() bool { return s.cur.Equal(s.rng.To) }

func (s *slot[P, T]) get() *T { return s.cur.Get() }

func (s *slot[P, T]) advance() { s.cur = s.cur.Next() }

func (s *slot[P, T]) equal(o *slot[P, T]) bool { return s.cur.Equal(o.cur) }

func (it *TupleIterator[P0, P1, P2, P3, T]) check() {
	if it.tuple == nil {
		panic(ErrNoStage)
	}
}

// enter destroys the resident stage handler and constructs the handler of the given stage in its place.
func (it *TupleIterator[P0, P1, P2, P3, T]) enter(stage int, atEnd bool) {
	switch it.u.tag {
	case 0:
		it.u.s0.destroy()
	case 1:
		it.u.s1.destroy()
	case 2:
		it.u.s2.destroy()
	case 3:
		it.u.s3.destroy()
	}
	it.u.tag = stage
	switch stage {
	case 0:
		it.u.s0.construct(it.tuple.r0, atEnd)
	case 1:
		it.u.s1.construct(it.tuple.r1, atEnd)
	case 2:
		it.u.s2.construct(it.tuple.r2, atEnd)
	case 3:
		it.u.s3.construct(it.tuple.r3, atEnd)
	default:
		panic(ErrNoStage)
	}
}

func (it *TupleIterator[P0, P1, P2, P3, T]) done() bool {
	switch it.u.tag {
	case 0:
		return it.u.s0.done()
	case 1:
		return it.u.s1.done()
	case 2:
		return it.u.s2.done()
	case 3:
		return it.u.s3.done()
	default:
		panic(ErrNoStage)
	}
}

// nextStage moves to the following stage, and reports false if the current stage is the last one.
func (it *TupleIterator[P0, P1, P2, P3, T]) nextStage() bool {
	if it.tuple.stages <= it.u.tag+1 {
		return false
	}
	it.enter(it.u.tag+1, false)
	return true
}

func (it *TupleIterator[P0, P1, P2, P3, T]) settle() {
	for it.done() && it.nextStage() {
	}
}

func (it *TupleIterator[P0, P1, P2, P3, T]) Next() {
	it.check()
	it.settle()
	if it.done() {
		panic(ErrExhausted)
	}
	switch it.u.tag {
	case 0:
		it.u.s0.advance()
	case 1:
		it.u.s1.advance()
	case 2:
		it.u.s2.advance()
	case 3:
		it.u.s3.advance()
	}
	it.settle()
}

func (it *TupleIterator[P0, P1, P2, P3, T]) Get() *T {
	it.check()
	it.settle()
	if it.done() {
		panic(ErrExhausted)
	}
	switch it.u.tag {
	case 0:
		return it.u.s0.get()
	case 1:
		return it.u.s1.get()
	case 2:
		return it.u.s2.get()
	case 3:
		return it.u.s3.get()
	default:
		panic(ErrNoStage)
	}
}

func (it TupleIterator[P0, P1, P2, P3, T]) Equal(o TupleIterator[P0, P1, P2, P3, T]) bool {
	if it.tuple == nil || o.tuple == nil {
		return it.tuple == nil && o.tuple == nil
	}
	if it.u.tag != o.u.tag {
		return false
	}
	switch it.u.tag {
	case 0:
		return it.u.s0.equal(&o.u.s0)
	case 1:
		return it.u.s1.equal(&o.u.s1)
	case 2:
		return it.u.s2.equal(&o.u.s2)
	case 3:
		return it.u.s3.equal(&o.u.s3)
	default:
		return false
	}
}

func (it TupleIterator[P0, P1, P2, P3, T]) Clone() TupleIterator[P0, P1, P2, P3, T] { return it }

// Stage is the index of the active stage.
func (it TupleIterator[P0, P1, P2, P3, T]) Stage() int { return it.u.tag }
