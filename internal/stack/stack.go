// Package stack adapts the gods stacks to the LIFO contract of the iterative
// depth-first walk, which wants the new length back from Push.
package stack

import (
	"github.com/emirpasic/gods/v2/stacks/arraystack"
	"github.com/emirpasic/gods/v2/stacks/linkedliststack"
)

// Array is a LIFO stack backed by an array list.
type Array[E comparable] struct {
	s *arraystack.Stack[E]
}

func NewArray[E comparable]() *Array[E] {
	return &Array[E]{s: arraystack.New[E]()}
}

// Push puts v on top of the stack and returns the new length.
func (s *Array[E]) Push(v E) int {
	s.s.Push(v)
	return s.s.Size()
}

// Pop removes the top value. ok is false if the stack is empty.
func (s *Array[E]) Pop() (E, bool) {
	return s.s.Pop()
}

func (s *Array[E]) Peek() (E, bool) {
	return s.s.Peek()
}

func (s *Array[E]) Len() int {
	return s.s.Size()
}

// List is a LIFO stack backed by a singly linked list.
type List[E comparable] struct {
	s *linkedliststack.Stack[E]
}

func NewList[E comparable]() *List[E] {
	return &List[E]{s: linkedliststack.New[E]()}
}

func (s *List[E]) Push(v E) int {
	s.s.Push(v)
	return s.s.Size()
}

func (s *List[E]) Pop() (E, bool) {
	return s.s.Pop()
}

func (s *List[E]) Peek() (E, bool) {
	return s.s.Peek()
}

func (s *List[E]) Len() int {
	return s.s.Size()
}
