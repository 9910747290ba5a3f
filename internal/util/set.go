package util

import (
	"fmt"
	"sort"
	"strings"
)

// StringSet is a map[string]bool with set operations added. Used for FIRST
// sets, lookahead sets, and any other collection of symbol or item keys where
// membership and dedup are all that matter.
type StringSet map[string]bool

func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

func StringSetOf(sl []string) StringSet {
	if sl == nil {
		return nil
	}
	s := StringSet{}
	for i := range sl {
		s.Add(sl[i])
	}
	return s
}

func (s StringSet) Copy() StringSet {
	newS := NewStringSet()
	for k := range s {
		newS[k] = true
	}
	return newS
}

// Union returns a new set that is the union of s and o.
func (s StringSet) Union(o StringSet) StringSet {
	newSet := s.Copy()
	newSet.AddAll(o)
	return newSet
}

func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}

func (s StringSet) Add(value string) {
	s[value] = true
}

// AddAll adds the addition of o into s, returning whether s was changed.
func (s StringSet) AddAll(o StringSet) bool {
	changed := false
	for k := range o {
		if !s.Has(k) {
			s.Add(k)
			changed = true
		}
	}
	return changed
}

func (s StringSet) Remove(value string) {
	delete(s, value)
}

func (s StringSet) Len() int {
	return len(s)
}

func (s StringSet) Empty() bool {
	return s.Len() == 0
}

// Elements returns the members of s. No particular order is guaranteed.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}
	sl := make([]string, 0, len(s))
	for item := range s {
		sl = append(sl, item)
	}
	return sl
}

// StringOrdered shows the contents of the set with items in alphabetical
// order, for use anywhere output needs to be deterministic.
func (s StringSet) StringOrdered() string {
	convs := s.Elements()
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(convs, ", "))
	sb.WriteRune('}')
	return sb.String()
}

func (s StringSet) String() string {
	return s.StringOrdered()
}

// Equal returns whether two sets have the same items.
func (s StringSet) Equal(o any) bool {
	other, ok := o.(StringSet)
	if !ok {
		return false
	}
	if s.Len() != other.Len() {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// SVSet is a set of string keys each mapped to a value of type V, used for
// item sets (keyed by an item's canonical string form) and any other
// collection where the key's canonical string needs to carry its full value
// alongside it.
type SVSet[V any] map[string]V

func NewSVSet[V any](of ...map[string]V) SVSet[V] {
	bs := SVSet[V](map[string]V{})
	for _, m := range of {
		for k := range m {
			bs.Set(k, m[k])
		}
	}
	return bs
}

func (s SVSet[V]) Copy() SVSet[V] {
	return NewSVSet(s)
}

func (s SVSet[V]) Set(idx string, val V) {
	s[idx] = val
}

func (s SVSet[V]) Get(idx string) V {
	return s[idx]
}

func (s SVSet[V]) Has(idx string) bool {
	_, ok := s[idx]
	return ok
}

func (s SVSet[V]) Remove(idx string) {
	delete(s, idx)
}

func (s SVSet[V]) Len() int {
	return len(s)
}

func (s SVSet[V]) Elements() []string {
	elems := make([]string, 0, len(s))
	for k := range s {
		elems = append(elems, k)
	}
	return elems
}

func (s SVSet[V]) Values() []V {
	vals := make([]V, 0, len(s))
	for k := range s {
		vals = append(vals, s[k])
	}
	return vals
}

func (s SVSet[V]) Empty() bool {
	return s.Len() == 0
}

// StringOrdered shows the contents of the set with keys sorted, so that two
// sets with identical content produce identical output regardless of map
// iteration order. This is the canonical form used to dedup item sets when
// building a state machine.
func (s SVSet[V]) StringOrdered() string {
	convs := make([]string, 0, len(s))
	for k := range s {
		convs = append(convs, fmt.Sprintf("%v", k))
	}
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	sb.WriteString(strings.Join(convs, ", "))
	sb.WriteRune('}')
	return sb.String()
}

func (s SVSet[V]) String() string {
	return s.StringOrdered()
}
