package stack

import (
	"errors"
)

var ErrEmptyStack = errors.New("empty stack")

// Stack is a slice backed LIFO used by iterative tree walks.
type Stack[T any] struct {
	s []T
}

func New[T any](initialSize int) *Stack[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	return &Stack[T]{s: make([]T, 0, initialSize)}
}

func (s *Stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

func (s *Stack[T]) Pop() T {
	value := s.Top()
	var zero T
	s.s[len(s.s)-1] = zero // drop the reference so popped nodes can be collected
	s.s = s.s[:len(s.s)-1]
	return value
}

func (s *Stack[T]) Top() T {
	if len(s.s) == 0 {
		panic(ErrEmptyStack)
	}
	return s.s[len(s.s)-1]
}

func (s *Stack[T]) Size() int {
	return len(s.s)
}

func (s *Stack[T]) Empty() bool {
	return len(s.s) == 0
}
