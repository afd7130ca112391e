package rangekitcontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/multirange/pkg/rangekit"
)

// Subject is what the Traversal contract needs to exercise a traversal strategy.
type Subject[T any, I any] struct {
	// MakeTraversal creates a traversal over the given stages.
	// The stages are visited in order, and each stage yields its values in order.
	MakeTraversal func(stages [][]T) rangekit.Traversal[T, I]
	// StageCount is the fixed number of stages a strategy supports.
	// Zero means that any positive number of stages is supported.
	StageCount int
	// MakeValue creates a random element value.
	MakeValue func(testing.TB) T
}

// Traversal asserts the behaviour every traversal strategy of rangekit has in common.
func Traversal[T any, I any, C interface {
	*I
	rangekit.Cursor[T, I]
}](mk contract.Make[Subject[T, I]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := let.Var(s, func(t *testcase.T) Subject[T, I] {
		return mk(t)
	})

	stageCount := let.Var(s, func(t *testcase.T) int {
		if n := subject.Get(t).StageCount; 0 < n {
			return n
		}
		return t.Random.IntBetween(1, 5)
	})

	stages := let.Var(s, func(t *testcase.T) [][]T {
		var vss = make([][]T, stageCount.Get(t))
		for i := range vss {
			length := t.Random.IntBetween(0, 5)
			for j := 0; j < length; j++ {
				vss[i] = append(vss[i], subject.Get(t).MakeValue(t))
			}
		}
		return vss
	})

	traversal := let.Var(s, func(t *testcase.T) rangekit.Traversal[T, I] {
		return subject.Get(t).MakeTraversal(stages.Get(t))
	})

	atEnd := func(t *testcase.T) bool {
		it := traversal.Get(t).Begin()
		return C(&it).Equal(traversal.Get(t).End())
	}

	flatten := func(t *testcase.T) []T {
		var exp = make([]T, 0)
		for _, vs := range stages.Get(t) {
			exp = append(exp, vs...)
		}
		return exp
	}

	s.Then("a full traversal visits every element of every stage in order", func(t *testcase.T) {
		got := iterkit.Collect(traversal.Get(t).All())
		assert.Equal(t, flatten(t), got)
	})

	s.Then("the begin/end loop yields the same elements as All", func(t *testcase.T) {
		var (
			got = make([]T, 0)
			it  = traversal.Get(t).Begin()
			end = traversal.Get(t).End()
		)
		for c := C(&it); !c.Equal(end); c.Next() {
			got = append(got, *c.Get())
		}
		assert.Equal(t, flatten(t), got)
	})

	s.Then("the number of steps equals the sum of the stage lengths", func(t *testcase.T) {
		var total int
		for _, vs := range stages.Get(t) {
			total += len(vs)
		}
		assert.Equal(t, total, rangekit.Distance[T, I, C](traversal.Get(t).Begin(), traversal.Get(t).End()))
	})

	s.Then("All can be iterated more than once", func(t *testcase.T) {
		all := traversal.Get(t).All()
		assert.Equal(t, iterkit.Collect(all), iterkit.Collect(all))
	})

	s.Then("Begin equals End only when every stage is empty", func(t *testcase.T) {
		var empty = true
		for _, vs := range stages.Get(t) {
			if 0 < len(vs) {
				empty = false
			}
		}
		assert.Equal(t, empty, atEnd(t))
	})

	s.When("every stage is empty", func(s *testcase.Spec) {
		stages.Let(s, func(t *testcase.T) [][]T {
			return make([][]T, stageCount.Get(t))
		})

		s.Then("Begin equals End", func(t *testcase.T) {
			assert.True(t, atEnd(t))
		})

		s.Then("the traversal yields nothing", func(t *testcase.T) {
			assert.Equal(t, 0, iterkit.Count(traversal.Get(t).All()))
		})

		s.Then("dereferencing Begin panics", func(t *testcase.T) {
			it := traversal.Get(t).Begin()
			out := assert.Panic(t, func() { C(&it).Get() })
			assert.Equal[any](t, rangekit.ErrExhausted, out)
		})
	})

	s.When("only the first stage has a single element", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) T {
			return subject.Get(t).MakeValue(t)
		})
		stages.Let(s, func(t *testcase.T) [][]T {
			vss := make([][]T, stageCount.Get(t))
			vss[0] = []T{value.Get(t)}
			return vss
		})

		s.Then("the traversal yields exactly that element, then reaches End", func(t *testcase.T) {
			var (
				it  = traversal.Get(t).Begin()
				end = traversal.Get(t).End()
				c   = C(&it)
			)
			assert.False(t, c.Equal(end))
			assert.Equal(t, value.Get(t), *c.Get())
			c.Next()
			assert.True(t, c.Equal(end))
		})

		s.Then("advancing past End panics", func(t *testcase.T) {
			it := traversal.Get(t).End()
			out := assert.Panic(t, func() { C(&it).Next() })
			assert.Equal[any](t, rangekit.ErrExhausted, out)
		})
	})

	s.When("there are at least three stages and the middle ones are empty", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			if stageCount.Get(t) < 3 {
				t.Skip("the strategy does not support three stages")
			}
		})

		first := let.Var(s, func(t *testcase.T) []T {
			return []T{subject.Get(t).MakeValue(t), subject.Get(t).MakeValue(t)}
		})
		last := let.Var(s, func(t *testcase.T) []T {
			return []T{subject.Get(t).MakeValue(t)}
		})
		stages.Let(s, func(t *testcase.T) [][]T {
			vss := make([][]T, stageCount.Get(t))
			vss[0] = first.Get(t)
			vss[len(vss)-1] = last.Get(t)
			return vss
		})

		s.Then("the first stage's elements are followed directly by the last stage's elements", func(t *testcase.T) {
			var exp []T
			exp = append(exp, first.Get(t)...)
			exp = append(exp, last.Get(t)...)
			assert.Equal(t, exp, iterkit.Collect(traversal.Get(t).All()))
		})
	})

	s.When("the traversal has elements", func(s *testcase.Spec) {
		stages.Let(s, func(t *testcase.T) [][]T {
			vss := make([][]T, stageCount.Get(t))
			for i := range vss {
				vss[i] = []T{subject.Get(t).MakeValue(t), subject.Get(t).MakeValue(t)}
			}
			return vss
		})

		s.Then("iterators at the same position are equal", func(t *testcase.T) {
			var (
				a = traversal.Get(t).Begin()
				b = traversal.Get(t).Begin()
			)
			assert.True(t, C(&a).Equal(b))
			assert.False(t, atEnd(t))
		})

		s.Then("a clone moves independently from the iterator it was cloned from", func(t *testcase.T) {
			var (
				og = traversal.Get(t).Begin()
				cp = C(&og).Clone()
			)
			assert.True(t, C(&og).Equal(cp))

			C(&cp).Next()
			assert.False(t, C(&og).Equal(cp))
			assert.False(t, C(&cp).Equal(og))

			C(&og).Next()
			assert.True(t, C(&og).Equal(cp))
		})

		s.Then("the iterator crosses the stage boundaries without skipping elements", func(t *testcase.T) {
			var (
				it  = traversal.Get(t).Begin()
				end = traversal.Get(t).End()
				got []T
			)
			for !C(&it).Equal(end) {
				got = append(got, *C(&it).Get())
				// dereferencing twice must not move the iterator
				assert.Equal(t, got[len(got)-1], *C(&it).Get())
				C(&it).Next()
			}
			assert.Equal(t, flatten(t), got)
		})
	})

	return s.AsSuite("Traversal")
}
