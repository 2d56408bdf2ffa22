package stack

// Stack is a LIFO with an optional hard capacity. A bounded stack never grows
// past its limit, which keeps memory use fixed for callers that size it up
// front.
type Stack[T any] struct {
	items []T
	limit int
}

// NewBounded preallocates capacity slots and refuses pushes beyond them.
// Zero or a negative capacity leaves the stack unbounded.
func NewBounded[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{
		items: make([]T, 0, capacity),
		limit: capacity,
	}
}

// Push reports false when a bounded stack is full; the item is dropped.
func (s *Stack[T]) Push(item T) bool {
	if s.limit > 0 && len(s.items) >= s.limit {
		return false
	}
	s.items = append(s.items, item)
	return true
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	s.items = s.items[:index]
	return item, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}
