package rangekit_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/multirange/internal/mocks"
	"go.llib.dev/multirange/pkg/rangekit"
	"go.llib.dev/multirange/pkg/rangekit/rangekitcontract"
)

func ExampleChain() {
	var (
		arr  = [4]int{1, 2, 3, 4}
		vs   = []int{5, 6, 7, 8}
		list = rangekit.NewForwardList(9, 10, 11, 12)
	)

	c := rangekit.NewChain(
		rangekit.StageOf(rangekit.Slice(arr[:])),
		rangekit.StageOf(rangekit.Slice(vs)),
		rangekit.StageOf(list.Range()),
	)

	for it, end := c.Begin(), c.End(); !it.Equal(end); it.Next() {
		fmt.Print(*it.Get(), " ")
	}
	// Output: 1 2 3 4 5 6 7 8 9 10 11 12
}

func ExampleView() {
	var (
		small = []int32{1, 2}
		large = []int64{3, 4}
	)

	c := rangekit.NewChain(
		rangekit.StageOf(rangekit.View(rangekit.Slice(small), func(v int32) int64 { return int64(v) })),
		rangekit.StageOf(rangekit.Slice(large)),
	)

	for v := range c.All() {
		fmt.Print(v, " ")
	}
	// Output: 1 2 3 4
}

func TestChain(t *testing.T) {
	rangekitcontract.Traversal[int](func(tb testing.TB) rangekitcontract.Subject[int, rangekit.ChainIterator[int]] {
		return rangekitcontract.Subject[int, rangekit.ChainIterator[int]]{
			MakeTraversal: func(stages [][]int) rangekit.Traversal[int, rangekit.ChainIterator[int]] {
				var ss = make([]rangekit.Stage[int], 0, len(stages))
				for i, vs := range stages {
					if i%2 == 0 {
						ss = append(ss, rangekit.StageOf(rangekit.Slice(vs)))
					} else {
						ss = append(ss, rangekit.StageOf(rangekit.NewForwardList(vs...).Range()))
					}
				}
				return rangekit.NewChain(ss[0], ss[1:]...)
			},
			MakeValue: func(tb testing.TB) int { return testcase.ToT(&tb).Random.Int() },
		}
	}).Test(t)

	s := testcase.NewSpec(t)

	var (
		arr  = let.Var(s, func(t *testcase.T) *[4]int { return &[4]int{1, 2, 3, 4} })
		vs   = let.Var(s, func(t *testcase.T) []int { return []int{5, 6, 7, 8} })
		list = let.Var(s, func(t *testcase.T) *rangekit.ForwardList[int] {
			return rangekit.NewForwardList(9, 10, 11, 12)
		})
		subject = let.Var(s, func(t *testcase.T) rangekit.Chain[int] {
			return rangekit.NewChain(
				rangekit.StageOf(rangekit.Slice(arr.Get(t)[:])),
				rangekit.StageOf(rangekit.Slice(vs.Get(t))),
				rangekit.StageOf(list.Get(t).Range()),
			)
		})
	)

	s.Test("smoke", func(t *testcase.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, iterkit.Collect(subject.Get(t).All()))
		assert.Equal(t, 3, subject.Get(t).Len())
	})

	s.Test("the iterator reports the active stage", func(t *testcase.T) {
		it := subject.Get(t).Begin()
		assert.Equal(t, 0, it.Stage())
		for range 4 {
			it.Next()
		}
		assert.Equal(t, 1, it.Stage())
		for range 4 {
			it.Next()
		}
		assert.Equal(t, 2, it.Stage())
		assert.Equal(t, 9, *it.Get())
	})

	s.Test("writes through Get reach the underlying sequences", func(t *testcase.T) {
		c := subject.Get(t)
		for it, end := c.Begin(), c.End(); !it.Equal(end); it.Next() {
			*it.Get() += 100
		}
		assert.Equal(t, [4]int{101, 102, 103, 104}, *arr.Get(t))
		assert.Equal(t, []int{105, 106, 107, 108}, vs.Get(t))
		assert.Equal(t, []int{109, 110, 111, 112}, list.Get(t).ToSlice())
	})

	s.Test("assignment shares the position while Clone does not", func(t *testcase.T) {
		var (
			og     = subject.Get(t).Begin()
			shared = og
			cloned = og.Clone()
		)
		og.Next()
		assert.Equal(t, 2, *shared.Get())
		assert.Equal(t, 1, *cloned.Get())
	})

	s.When("elements are appended to the list after the chain was made", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			subject.Get(t)
			list.Get(t).Append(13)
		})

		s.Then("the appended element is visited", func(t *testcase.T) {
			got := iterkit.Collect(subject.Get(t).All())
			assert.Equal(t, 13, got[len(got)-1])
		})
	})

	s.When("stages are empty at the beginning, the middle and the end", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) rangekit.Chain[int] {
			return rangekit.NewChain(
				rangekit.StageOf(rangekit.Slice[int](nil)),
				rangekit.StageOf(rangekit.Slice([]int{1})),
				rangekit.StageOf(rangekit.NewForwardList[int]().Range()),
				rangekit.StageOf(rangekit.Slice([]int{})),
				rangekit.StageOf(rangekit.Slice([]int{2, 3})),
				rangekit.StageOf(rangekit.NewForwardList[int]().Range()),
			)
		})

		s.Then("only the elements of the non empty stages are yielded", func(t *testcase.T) {
			assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(subject.Get(t).All()))
		})

		s.Then("the number of steps to End is the number of elements", func(t *testcase.T) {
			assert.Equal(t, 3, rangekit.Distance[int](subject.Get(t).Begin(), subject.Get(t).End()))
		})
	})

	s.When("the element types differ", func(s *testcase.Spec) {
		s.Test("View unifies them", func(t *testcase.T) {
			var (
				i32 = []int32{1, 2}
				i64 = []int64{3}
			)
			c := rangekit.NewChain(
				rangekit.StageOf(rangekit.View(rangekit.Slice(i32), func(v int32) int64 { return int64(v) })),
				rangekit.StageOf(rangekit.Slice(i64)),
			)
			assert.Equal(t, []int64{1, 2, 3}, iterkit.Collect(c.All()))
		})
	})

	s.Test("the zero iterator panics with ErrNoStage", func(t *testcase.T) {
		var it rangekit.ChainIterator[int]
		assert.Equal[any](t, rangekit.ErrNoStage, assert.Panic(t, func() { it.Get() }))
		assert.Equal[any](t, rangekit.ErrNoStage, assert.Panic(t, func() { it.Next() }))
		assert.True(t, it.Equal(rangekit.ChainIterator[int]{}))
	})
}

func TestChain_stageProtocol(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("handlers are advanced only while they have elements, and replaced once per stage boundary", func(t *testcase.T) {
		var (
			ctrl   = gomock.NewController(t)
			stage0 = mocks.NewMockStage[int](ctrl)
			stage1 = mocks.NewMockStage[int](ctrl)
			h0     = mocks.NewMockStageHandler[int](ctrl)
			h1     = mocks.NewMockStageHandler[int](ctrl)
			v0, v1 = t.Random.Int(), t.Random.Int()
			left0  = 1
			left1  = 1
		)

		stage0.EXPECT().Handler(0, false).Return(h0).Times(1)
		stage1.EXPECT().Handler(1, false).Return(h1).Times(1)

		h0.EXPECT().Done().DoAndReturn(func() bool { return left0 == 0 }).AnyTimes()
		h0.EXPECT().Get().Return(&v0).Times(1)
		h0.EXPECT().Advance().Do(func() {
			assert.True(t, 0 < left0, "exhausted handler was advanced")
			left0--
		}).Times(1)
		h0.EXPECT().NextStage(gomock.Any()).DoAndReturn(func(ss rangekit.Stages[int]) rangekit.StageHandler[int] {
			return ss.Handler(1, false)
		}).Times(1)

		h1.EXPECT().Done().DoAndReturn(func() bool { return left1 == 0 }).AnyTimes()
		h1.EXPECT().Get().Return(&v1).Times(1)
		h1.EXPECT().Advance().Do(func() {
			assert.True(t, 0 < left1, "exhausted handler was advanced")
			left1--
		}).Times(1)
		h1.EXPECT().NextStage(gomock.Any()).Return(nil).MinTimes(1)

		it := rangekit.NewChain[int](stage0, stage1).Begin()
		assert.Equal(t, v0, *it.Get())
		it.Next()
		assert.Equal(t, v1, *it.Get())
		it.Next()
		assert.Equal[any](t, rangekit.ErrExhausted, assert.Panic(t, func() { it.Next() }))
	})

	s.Test("a handler of a different stage is never equal", func(t *testcase.T) {
		var (
			a = rangekit.StageOf(rangekit.Slice([]int{1})).Handler(0, true)
			b = rangekit.StageOf(rangekit.Slice([]int{1})).Handler(1, true)
		)
		assert.False(t, a.Equal(b))
		assert.True(t, a.Equal(a.Clone()))
	})
}

func BenchmarkChain(b *testing.B) {
	var stages = make([]rangekit.Stage[int], 0, 8)
	for range 8 {
		stages = append(stages, rangekit.StageOf(rangekit.Slice(make([]int, 128))))
	}
	c := rangekit.NewChain(stages[0], stages[1:]...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sum int
		for it, end := c.Begin(), c.End(); !it.Equal(end); it.Next() {
			sum += *it.Get()
		}
		_ = sum
	}
}
