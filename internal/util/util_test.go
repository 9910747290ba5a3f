package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OrderedKeys(t *testing.T) {
	assert := assert.New(t)

	m := map[string]int{"c": 3, "a": 1, "b": 2}

	assert.Equal([]string{"a", "b", "c"}, OrderedKeys(m))
}

func Test_ArticleFor(t *testing.T) {
	testCases := []struct {
		word       string
		capitalize bool
		expect     string
	}{
		{"apple", false, "an"},
		{"banana", false, "a"},
		{"orange", true, "An"},
		{"pear", true, "A"},
		{"", false, "a"},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.expect, ArticleFor(tc.word, tc.capitalize))
		})
	}
}

func Test_Stack_pushPopPeek(t *testing.T) {
	assert := assert.New(t)

	var s Stack[int]
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(3, s.Len())
	assert.Equal(3, s.Peek())
	assert.Equal(2, s.PeekAt(1))

	assert.Equal(3, s.Pop())
	assert.Equal(2, s.Pop())
	assert.Equal(1, s.Len())
	assert.False(s.Empty())
}

func Test_Stack_popOfEmptyPanics(t *testing.T) {
	var s Stack[int]
	assert.Panics(t, func() { s.Pop() })
}

func Test_Stack_peekAtOutOfRangePanics(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	assert.Panics(t, func() { s.PeekAt(5) })
}

func Test_EncString_DecString_roundTrip(t *testing.T) {
	assert := assert.New(t)

	enc := EncString("hello")
	got, n, err := DecString(enc)

	assert.NoError(err)
	assert.Equal("hello", got)
	assert.Equal(len(enc), n)
}

func Test_EncStringSlice_DecStringSlice_roundTrip(t *testing.T) {
	assert := assert.New(t)

	enc := EncStringSlice([]string{"lbrace", "rbrace", "semi"})
	got, n, err := DecStringSlice(enc)

	assert.NoError(err)
	assert.Equal([]string{"lbrace", "rbrace", "semi"}, got)
	assert.Equal(len(enc), n)
}

func Test_EncStringSlice_DecStringSlice_empty(t *testing.T) {
	assert := assert.New(t)

	enc := EncStringSlice(nil)
	got, _, err := DecStringSlice(enc)

	assert.NoError(err)
	assert.Empty(got)
}
