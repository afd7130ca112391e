package rangekit

import "iter"

// Chain is a sequence of stages where each stage may have its own position type.
// The iterator of a Chain owns one heap allocated StageHandler at a time,
// and replaces it with the handler of the next stage when the current one is exhausted.
//
// A Chain is a value; copies share the same dispatch table.
type Chain[T any] struct {
	stages Stages[T]
}

// NewChain creates a Chain visiting the stages in the given order.
// At least one stage is required.
func NewChain[T any](first Stage[T], rest ...Stage[T]) Chain[T] {
	stages := make(Stages[T], 0, 1+len(rest))
	stages = append(stages, first)
	stages = append(stages, rest...)
	return Chain[T]{stages: stages}
}

// Len returns the number of stages.
func (c Chain[T]) Len() int { return len(c.stages) }

func (c Chain[T]) Begin() ChainIterator[T] {
	it := ChainIterator[T]{
		stages:  c.stages,
		handler: c.stages.Handler(0, false),
	}
	it.settle()
	return it
}

// End returns the terminal iterator,
// which is positioned at the end of the last stage's range.
func (c Chain[T]) End() ChainIterator[T] {
	return ChainIterator[T]{
		stages:  c.stages,
		handler: c.stages.Handler(len(c.stages)-1, true),
	}
}

func (c Chain[T]) All() iter.Seq[T] {
	return Walk[T](c.Begin(), c.End())
}

// ChainIterator is the iterator of a Chain.
//
// Assignment shares the stage handler between the copies,
// use Clone to get an independently positioned iterator.
type ChainIterator[T any] struct {
	stages  Stages[T]
	handler StageHandler[T]
}

func (it *ChainIterator[T]) current() StageHandler[T] {
	if it.handler == nil {
		panic(ErrNoStage)
	}
	return it.handler
}

// settle replaces the handler of an exhausted stage with the handler of the next stage,
// until a stage with remaining elements or the last stage is reached.
func (it *ChainIterator[T]) settle() {
	for it.current().Done() {
		next := it.handler.NextStage(it.stages)
		if next == nil {
			return
		}
		it.handler = next
	}
}

func (it *ChainIterator[T]) Next() {
	it.settle()
	if it.handler.Done() {
		panic(ErrExhausted)
	}
	it.handler.Advance()
	it.settle()
}

func (it *ChainIterator[T]) Get() *T {
	it.settle()
	if it.handler.Done() {
		panic(ErrExhausted)
	}
	return it.handler.Get()
}

func (it ChainIterator[T]) Equal(o ChainIterator[T]) bool {
	if it.handler == nil || o.handler == nil {
		return it.handler == nil && o.handler == nil
	}
	return it.handler.Equal(o.handler)
}

func (it ChainIterator[T]) Clone() ChainIterator[T] {
	if it.handler == nil {
		return it
	}
	return ChainIterator[T]{
		stages:  it.stages,
		handler: it.handler.Clone(),
	}
}

// Stage is the index of the active stage.
func (it ChainIterator[T]) Stage() int {
	return it.current().Stage()
}
