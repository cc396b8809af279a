// Package queue adapts the gods queues to the FIFO contract of the level-order
// traversal, which wants the new length back from Enqueue.
package queue

import (
	"github.com/emirpasic/gods/v2/queues/arrayqueue"
	"github.com/emirpasic/gods/v2/queues/linkedlistqueue"
)

// List is a FIFO queue backed by a singly linked list. Enqueue and Dequeue
// are O(1).
type List[E comparable] struct {
	q *linkedlistqueue.Queue[E]
}

func NewList[E comparable]() *List[E] {
	return &List[E]{q: linkedlistqueue.New[E]()}
}

// Enqueue appends v to the back of the queue and returns the new length.
func (q *List[E]) Enqueue(v E) int {
	q.q.Enqueue(v)
	return q.q.Size()
}

// Dequeue removes the front value. ok is false if the queue is empty.
func (q *List[E]) Dequeue() (E, bool) {
	return q.q.Dequeue()
}

func (q *List[E]) Peek() (E, bool) {
	return q.q.Peek()
}

func (q *List[E]) Len() int {
	return q.q.Size()
}

// Array is a FIFO queue backed by an array list. Dequeue shifts the
// remaining elements, so it is O(n).
type Array[E comparable] struct {
	q *arrayqueue.Queue[E]
}

func NewArray[E comparable]() *Array[E] {
	return &Array[E]{q: arrayqueue.New[E]()}
}

func (q *Array[E]) Enqueue(v E) int {
	q.q.Enqueue(v)
	return q.q.Size()
}

func (q *Array[E]) Dequeue() (E, bool) {
	return q.q.Dequeue()
}

func (q *Array[E]) Peek() (E, bool) {
	return q.q.Peek()
}

func (q *Array[E]) Len() int {
	return q.q.Size()
}
