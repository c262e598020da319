package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	s := New[int](0)
	assert.True(t, s.Empty())

	for i := range 5 {
		s.Push(i)
	}
	assert.Equal(t, 5, s.Size())
	assert.Equal(t, 4, s.Top())

	for i := 4; i >= 0; i-- {
		assert.Equal(t, i, s.Pop())
	}
	assert.True(t, s.Empty())
}

func TestStack_Empty(t *testing.T) {
	tcs := []struct {
		name string
		fn   func(s *Stack[string])
	}{
		{name: "pop", fn: func(s *Stack[string]) { s.Pop() }},
		{name: "top", fn: func(s *Stack[string]) { s.Top() }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.PanicsWithValue(t, ErrEmptyStack, func() { tc.fn(New[string](-1)) })
		})
	}
}
