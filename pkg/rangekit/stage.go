package rangekit

// StageHandler iterates the range of a single stage of a Chain.
// A handler is owned by exactly one ChainIterator.
type StageHandler[T any] interface {
	// Done reports whether the current position of the stage equals the end of its range.
	Done() bool
	// Get returns a reference to the element at the current position.
	// Calling Get when Done is a caller error.
	Get() *T
	// Advance moves the current position forward by one.
	// Calling Advance when Done is a caller error.
	Advance()
	// NextStage creates the handler of the following stage, positioned at the beginning of its range.
	// It returns nil when the handler belongs to the last stage.
	NextStage(stages Stages[T]) StageHandler[T]
	// Equal reports whether the other handler belongs to the same stage and is at the same position.
	// Handlers of different stages are never equal.
	Equal(StageHandler[T]) bool
	// Stage is the index of the handled stage.
	Stage() int
	// Clone returns an independent copy of the handler.
	Clone() StageHandler[T]
}

// Stage is an entry of a Chain's dispatch table.
// It knows the concrete position type of one stage,
// and creates the StageHandler for it.
type Stage[T any] interface {
	// Handler creates a handler for the stage at the given index.
	// The handler is positioned at the beginning of the range,
	// or at its end when atEnd is true.
	Handler(index int, atEnd bool) StageHandler[T]
}

// Stages is the dispatch table of a Chain, with exactly one entry per stage.
type Stages[T any] []Stage[T]

// Handler creates the handler for the stage at index,
// or returns nil if there is no such stage.
func (ss Stages[T]) Handler(index int, atEnd bool) StageHandler[T] {
	if index < 0 || len(ss) <= index {
		return nil
	}
	return ss[index].Handler(index, atEnd)
}

// StageOf binds a range to the unified element type T.
// To bind a range with a different element type, convert it with View first.
func StageOf[P Position[P, T], T any](r Range[P, T]) Stage[T] {
	return rangeStage[P, T]{r: r}
}

type rangeStage[P Position[P, T], T any] struct{ r Range[P, T] }

func (s rangeStage[P, T]) Handler(index int, atEnd bool) StageHandler[T] {
	h := &stageHandler[P, T]{index: index, rng: s.r, cur: s.r.From}
	if atEnd {
		h.cur = s.r.To
	}
	return h
}

type stageHandler[P Position[P, T], T any] struct {
	index int
	rng   Range[P, T]
	cur   P
}

func (h *stageHandler[P, T]) Done() bool { return h.cur.Equal(h.rng.To) }

func (h *stageHandler[P, T]) Get() *T { return h.cur.Get() }

func (h *stageHandler[P, T]) Advance() { h.cur = h.cur.Next() }

func (h *stageHandler[P, T]) NextStage(stages Stages[T]) StageHandler[T] {
	return stages.Handler(h.index+1, false)
}

func (h *stageHandler[P, T]) Equal(oth StageHandler[T]) bool {
	o, ok := oth.(*stageHandler[P, T])
	if !ok || o.index != h.index {
		return false
	}
	return h.cur.Equal(o.cur)
}

func (h *stageHandler[P, T]) Stage() int { return h.index }

func (h *stageHandler[P, T]) Clone() StageHandler[T] {
	c := *h
	return &c
}
