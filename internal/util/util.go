package util

import (
	"sort"
	"strings"
)

// MakeTextList gives a nice list of things based on their display name.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		items[len(items)-1] = "and " + items[len(items)-1]
		output += strings.Join(items, ", ")
	}

	return output
}

// OrderedKeys returns the keys of m in sorted order. Used anywhere a map is
// iterated over but the output needs to be deterministic, such as rendering a
// table or building an error message.
func OrderedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var vowels = map[rune]bool{'a': true, 'e': true, 'i': true, 'o': true, 'u': true}

// ArticleFor returns the English indefinite article ("a" or "an") that should
// precede word, based on whether word starts with a vowel sound. If
// capitalize is true, the article is returned capitalized ("A"/"An").
func ArticleFor(word string, capitalize bool) string {
	art := "a"

	if len(word) > 0 {
		first := strings.ToLower(word)[0:1]
		r := []rune(first)[0]
		if vowels[r] {
			art = "an"
		}
	}

	if capitalize {
		art = strings.ToUpper(art[0:1]) + art[1:]
	}

	return art
}

// Stack is a simple LIFO stack of T. The zero value is usable.
type Stack[T any] struct {
	Of []T
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.Of = append(s.Of, v)
}

// Pop removes and returns the item on top of the stack. Panics if the stack
// is empty.
func (s *Stack[T]) Pop() T {
	if len(s.Of) == 0 {
		panic("pop of empty stack")
	}
	v := s.Of[len(s.Of)-1]
	s.Of = s.Of[:len(s.Of)-1]
	return v
}

// Peek returns the item on top of the stack without removing it. Panics if
// the stack is empty.
func (s *Stack[T]) Peek() T {
	if len(s.Of) == 0 {
		panic("peek of empty stack")
	}
	return s.Of[len(s.Of)-1]
}

// PeekAt returns the item at distance from the top of the stack; PeekAt(0) is
// equivalent to Peek. Panics if distance is out of range.
func (s *Stack[T]) PeekAt(distance int) T {
	idx := len(s.Of) - 1 - distance
	if idx < 0 || idx >= len(s.Of) {
		panic("stack index out of range")
	}
	return s.Of[idx]
}

// Len returns the number of items currently on the stack.
func (s *Stack[T]) Len() int {
	return len(s.Of)
}

// Empty returns whether the stack has no items.
func (s *Stack[T]) Empty() bool {
	return len(s.Of) == 0
}
