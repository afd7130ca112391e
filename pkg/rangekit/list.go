package rangekit

import "iter"

// ForwardList is a singly linked list.
// The zero value is an empty list ready to use.
type ForwardList[T any] struct {
	head   *flElem[T]
	tail   *flElem[T]
	length int
}

type flElem[T any] struct {
	data T
	next *flElem[T]
}

func NewForwardList[T any](vs ...T) *ForwardList[T] {
	var fl ForwardList[T]
	fl.Append(vs...)
	return &fl
}

func (fl *ForwardList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if fl == nil {
			return
		}
		for current := fl.head; current != nil; current = current.next {
			if !yield(current.data) {
				return
			}
		}
	}
}

func (fl *ForwardList[T]) ToSlice() []T {
	var vs []T
	for v := range fl.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (fl *ForwardList[T]) Append(vs ...T) {
	for _, v := range vs {
		fl.append(v)
	}
}

func (fl *ForwardList[T]) append(v T) {
	newNode := &flElem[T]{data: v}
	if fl.tail == nil {
		fl.head = newNode
		fl.tail = newNode
	} else {
		fl.tail.next = newNode
		fl.tail = newNode
	}
	fl.length++
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (fl *ForwardList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		fl.prepend(vs[i])
	}
}

func (fl *ForwardList[T]) prepend(v T) {
	fl.head = &flElem[T]{data: v, next: fl.head}
	if fl.tail == nil {
		fl.tail = fl.head
	}
	fl.length++
}

func (fl *ForwardList[T]) Shift() (T, bool) {
	if fl.head == nil {
		var zero T
		return zero, false
	}
	first := fl.head
	fl.head = first.next
	if fl.head == nil {
		fl.tail = nil
	}
	fl.length--
	return first.data, true
}

// Len returns the number of elements in the list
func (fl *ForwardList[T]) Len() int {
	if fl == nil {
		return 0
	}
	return fl.length
}

// Range returns the range of the list's elements.
// Appending to the list keeps the range valid, while Shift invalidates positions pointing to the removed element.
func (fl *ForwardList[T]) Range() Range[ListPosition[T], T] {
	var head *flElem[T]
	if fl != nil {
		head = fl.head
	}
	return Range[ListPosition[T], T]{
		From: ListPosition[T]{e: head},
		To:   ListPosition[T]{},
	}
}

// ListPosition is a position in a ForwardList.
type ListPosition[T any] struct{ e *flElem[T] }

func (p ListPosition[T]) Equal(o ListPosition[T]) bool { return p.e == o.e }

func (p ListPosition[T]) Next() ListPosition[T] { return ListPosition[T]{e: p.e.next} }

func (p ListPosition[T]) Get() *T { return &p.e.data }
