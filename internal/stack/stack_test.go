package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_PushAndPop(t *testing.T) {
	s := NewBounded[int](0)

	for _, v := range []int{1, 2, 3} {
		require.True(t, s.Push(v))
	}

	// LIFO order
	for _, want := range []int{3, 2, 1} {
		val, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, val)
	}

	val, ok := s.Pop()
	assert.False(t, ok, "Pop() from empty stack")
	assert.Equal(t, 0, val)
}

func TestStack_Peek(t *testing.T) {
	s := NewBounded[string](0)

	val, ok := s.Peek()
	assert.False(t, ok)
	assert.Empty(t, val)

	s.Push("first")
	s.Push("second")

	val, ok = s.Peek()
	require.True(t, ok)
	assert.Equal(t, "second", val)

	val, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, "second", val, "Peek does not remove")
}

func TestStack_Bounded(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   int
		accepted int
	}{
		{name: "under_capacity", capacity: 4, pushes: 2, accepted: 2},
		{name: "exact_capacity", capacity: 3, pushes: 3, accepted: 3},
		{name: "over_capacity", capacity: 2, pushes: 5, accepted: 2},
		{name: "zero_capacity_is_unbounded", capacity: 0, pushes: 3, accepted: 3},
		{name: "negative_capacity_is_unbounded", capacity: -1, pushes: 3, accepted: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBounded[int](tt.capacity)

			accepted := 0
			for i := range tt.pushes {
				if s.Push(i) {
					accepted++
				}
			}
			assert.Equal(t, tt.accepted, accepted)

			popped := 0
			for {
				if _, ok := s.Pop(); !ok {
					break
				}
				popped++
			}
			assert.Equal(t, tt.accepted, popped)
		})
	}
}

func TestStack_BoundedKeepsTopOnOverflow(t *testing.T) {
	s := NewBounded[int](1)

	require.True(t, s.Push(7))
	require.False(t, s.Push(8))

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 7, top)
}

func TestStack_PushAfterPopOnFullStack(t *testing.T) {
	s := NewBounded[int](2)
	require.True(t, s.Push(1))
	require.True(t, s.Push(2))
	require.False(t, s.Push(3))

	_, ok := s.Pop()
	require.True(t, ok)
	assert.True(t, s.Push(4))

	top, _ := s.Peek()
	assert.Equal(t, 4, top)
}
