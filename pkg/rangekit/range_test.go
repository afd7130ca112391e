package rangekit_test

import (
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/multirange/pkg/rangekit"
)

func TestSlice(t *testing.T) {
	s := testcase.NewSpec(t)

	vs := let.Var(s, func(t *testcase.T) []int {
		return []int{t.Random.Int(), t.Random.Int(), t.Random.Int()}
	})
	subject := let.Var(s, func(t *testcase.T) rangekit.Range[rangekit.SlicePosition[int], int] {
		return rangekit.Slice(vs.Get(t))
	})

	s.Test("every element is visited", func(t *testcase.T) {
		assert.Equal(t, vs.Get(t), iterkit.Collect(subject.Get(t).All()))
		assert.Equal(t, len(vs.Get(t)), subject.Get(t).Len())
		assert.False(t, subject.Get(t).Empty())
	})

	s.Test("positions of different slices are not equal", func(t *testcase.T) {
		var oth = make([]int, len(vs.Get(t)))
		assert.False(t, subject.Get(t).Begin().Equal(rangekit.Slice(oth).Begin()))
	})

	s.Test("positions report their index", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Begin().Index())
		assert.Equal(t, 1, subject.Get(t).Begin().Next().Index())
		assert.Equal(t, len(vs.Get(t)), subject.Get(t).End().Index())
	})

	s.When("the slice is empty", func(s *testcase.Spec) {
		vs.LetValue(s, nil)

		s.Then("the range is empty", func(t *testcase.T) {
			assert.True(t, subject.Get(t).Empty())
			assert.Equal(t, 0, subject.Get(t).Len())
		})
	})

	s.Test("RangeOf can express a sub range", func(t *testcase.T) {
		r := rangekit.Slice(vs.Get(t))
		sub := rangekit.RangeOf[rangekit.SlicePosition[int], int](r.Begin().Next(), r.End())
		assert.Equal(t, vs.Get(t)[1:], iterkit.Collect(sub.All()))
	})
}

func TestForwardList(t *testing.T) {
	s := testcase.NewSpec(t)

	list := let.Var(s, func(t *testcase.T) *rangekit.ForwardList[string] {
		return rangekit.NewForwardList("b", "c")
	})

	s.Test("Append and Prepend keep the order of their arguments", func(t *testcase.T) {
		l := list.Get(t)
		l.Append("d", "e")
		l.Prepend("x", "a")
		assert.Equal(t, []string{"x", "a", "b", "c", "d", "e"}, l.ToSlice())
		assert.Equal(t, 6, l.Len())
	})

	s.Test("Shift removes the first element", func(t *testcase.T) {
		l := list.Get(t)
		v, ok := l.Shift()
		assert.True(t, ok)
		assert.Equal(t, "b", v)
		v, ok = l.Shift()
		assert.True(t, ok)
		assert.Equal(t, "c", v)
		_, ok = l.Shift()
		assert.False(t, ok)
		assert.Equal(t, 0, l.Len())

		l.Append("z")
		assert.Equal(t, []string{"z"}, l.ToSlice())
	})

	s.Test("Range visits the elements", func(t *testcase.T) {
		assert.Equal(t, []string{"b", "c"}, iterkit.Collect(list.Get(t).Range().All()))
	})

	s.Test("the zero value is an empty list", func(t *testcase.T) {
		var l rangekit.ForwardList[int]
		assert.True(t, l.Range().Empty())
		l.Prepend(1)
		assert.Equal(t, []int{1}, l.ToSlice())
	})

	s.Test("a nil list has an empty range", func(t *testcase.T) {
		var l *rangekit.ForwardList[int]
		assert.Equal(t, 0, l.Len())
		assert.True(t, l.Range().Empty())
		assert.Equal(t, 0, iterkit.Count(l.Iter()))
	})
}

func TestView(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("elements are converted", func(t *testcase.T) {
		r := rangekit.View(rangekit.Slice([]int{1, 2, 3}), func(v int) string {
			return string(rune('a' + v - 1))
		})
		assert.Equal(t, []string{"a", "b", "c"}, iterkit.Collect(r.All()))
	})

	s.Test("writes through Get do not reach the source", func(t *testcase.T) {
		var (
			vs = []int{1}
			r  = rangekit.View(rangekit.Slice(vs), func(v int) int { return v })
		)
		*r.Begin().Get() = 42
		assert.Equal(t, []int{1}, vs)
	})

	s.Test("Unwrap returns the underlying position", func(t *testcase.T) {
		var (
			vs = []int{1, 2}
			r  = rangekit.View(rangekit.Slice(vs), func(v int) int { return v })
		)
		assert.Equal(t, 1, r.Begin().Next().Unwrap().Index())
	})
}

func TestErase(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the erased range visits the same elements", func(t *testcase.T) {
		list := rangekit.NewForwardList(1, 2, 3)
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(rangekit.Erase(list.Range()).All()))
	})

	s.Test("positions of different underlying types are not equal", func(t *testcase.T) {
		var (
			a = rangekit.Erase(rangekit.Slice[int](nil))
			b = rangekit.Erase(rangekit.NewForwardList[int]().Range())
		)
		assert.True(t, a.Empty())
		assert.True(t, b.Empty())
		assert.False(t, a.Begin().Equal(b.Begin()))
	})

	s.Test("zero positions are equal only to each other", func(t *testcase.T) {
		var zero rangekit.ErasedPosition[int]
		assert.True(t, zero.Equal(rangekit.ErasedPosition[int]{}))
		assert.False(t, zero.Equal(rangekit.Erase(rangekit.Slice([]int{})).Begin()))
	})
}

func TestWalk(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("breaking out of the loop stops the walk", func(t *testcase.T) {
		mr := rangekit.FromSlices([]int{1, 2}, []int{3, 4})
		var got []int
		for v := range rangekit.Walk[int](mr.Begin(), mr.End()) {
			got = append(got, v)
			if v == 3 {
				break
			}
		}
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	s.Test("the begin iterator is not moved", func(t *testcase.T) {
		var (
			mr    = rangekit.FromSlices([]int{1, 2})
			begin = mr.Begin()
		)
		assert.Equal(t, 2, iterkit.Count(rangekit.Walk[int](begin, mr.End())))
		assert.Equal(t, 1, *begin.Get())
	})

	s.Test("Distance counts the steps between two iterators", func(t *testcase.T) {
		mr := rangekit.FromSlices([]int{1, 2}, nil, []int{3})
		it := mr.Begin()
		it.Next()
		assert.Equal(t, 2, rangekit.Distance[int](it, mr.End()))
		assert.Equal(t, 3, rangekit.Distance[int](mr.Begin(), mr.End()))
	})
}
