package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fifo interface {
	Enqueue(int) int
	Dequeue() (int, bool)
	Peek() (int, bool)
	Len() int
}

func TestQueueOrder(t *testing.T) {
	for name, q := range map[string]fifo{
		"array": NewArray[int](),
		"list":  NewList[int](),
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := q.Dequeue()
			assert.False(t, ok)

			for i, v := range []int{5, 2, 1, 4, 3} {
				assert.Equal(t, i+1, q.Enqueue(v))
			}

			got := []int{}
			for i := 0; i < 3; i++ {
				v, ok := q.Dequeue()
				assert.True(t, ok)
				got = append(got, v)
			}
			assert.Equal(t, []int{5, 2, 1}, got)
			assert.Equal(t, 2, q.Len())

			v, ok := q.Peek()
			assert.True(t, ok)
			assert.Equal(t, 4, v)

			v, _ = q.Dequeue()
			assert.Equal(t, 4, v)
			v, _ = q.Dequeue()
			assert.Equal(t, 3, v)

			_, ok = q.Dequeue()
			assert.False(t, ok)
			_, ok = q.Peek()
			assert.False(t, ok)
			assert.Equal(t, 0, q.Len())
		})
	}
}

func TestQueueInterleaved(t *testing.T) {
	for name, q := range map[string]fifo{
		"array": NewArray[int](),
		"list":  NewList[int](),
	} {
		t.Run(name, func(t *testing.T) {
			next, want := 0, 0
			for round := 0; round < 50; round++ {
				for i := 0; i < round%7+3; i++ {
					next++
					assert.Equal(t, next-want, q.Enqueue(next-1))
				}
				for i := 0; i < round%5+1 && q.Len() > 0; i++ {
					v, ok := q.Dequeue()
					assert.True(t, ok)
					assert.Equal(t, want, v)
					want++
				}
			}

			for q.Len() > 0 {
				v, _ := q.Dequeue()
				assert.Equal(t, want, v)
				want++
			}
			assert.Equal(t, next, want)
		})
	}
}
