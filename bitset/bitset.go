package bitset

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const wordBits = 64

// Set is a fixed-capacity dense bit-set. The zero value is unusable; create
// one with New, Fill or Range. A Set value holds a reference to its word
// array; use Clone for an independent copy.
type Set struct {
	words []uint64
}

// New returns an empty Set with the given capacity. The capacity must be one
// of Capacities.
func New(capacity int) Set {
	if capacity <= 0 || capacity%wordBits != 0 || capacity > MaxCapacity {
		panic(fmt.Sprintf("bitset: unsupported capacity %d", capacity))
	}

	return Set{words: make([]uint64, capacity/wordBits)}
}

// Of returns a Set with the given capacity holding exactly elems.
func Of(capacity int, elems ...int) Set {
	s := New(capacity)
	for _, e := range elems {
		s.Insert(e)
	}

	return s
}

// Fill returns a Set with the given capacity holding {0, …, k-1}.
func Fill(capacity, k int) Set {
	s := New(capacity)
	if k < 0 || k > capacity {
		panic(fmt.Sprintf("bitset: fill size %d out of range", k))
	}
	for i := 0; i < k/wordBits; i++ {
		s.words[i] = ^uint64(0)
	}
	if rem := k % wordBits; rem != 0 {
		s.words[k/wordBits] = (uint64(1) << rem) - 1
	}

	return s
}

// Range returns a Set with the given capacity holding {lo, …, hi-1}.
func Range(capacity, lo, hi int) Set {
	if lo > hi {
		panic(fmt.Sprintf("bitset: invalid range [%d, %d)", lo, hi))
	}
	s := Fill(capacity, hi)
	s.DiffWith(Fill(capacity, lo))

	return s
}

// Capacity returns the number of representable elements.
func (s Set) Capacity() int { return len(s.words) * wordBits }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	w := make([]uint64, len(s.words))
	copy(w, s.words)

	return Set{words: w}
}

// Clear removes all elements in place.
func (s Set) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}

func (s Set) index(v int) (word int, mask uint64) {
	if v < 0 || v >= s.Capacity() {
		panic(fmt.Sprintf("bitset: index %d out of range [0, %d)", v, s.Capacity()))
	}

	return v / wordBits, uint64(1) << (v % wordBits)
}

// Contains reports whether v is in s.
func (s Set) Contains(v int) bool {
	w, m := s.index(v)

	return s.words[w]&m != 0
}

// Insert adds v to s. Inserting a present element panics.
func (s Set) Insert(v int) {
	w, m := s.index(v)
	if s.words[w]&m != 0 {
		panic(fmt.Sprintf("bitset: insert of present element %d", v))
	}
	s.words[w] |= m
}

// Erase removes v from s. Erasing an absent element panics.
func (s Set) Erase(v int) {
	w, m := s.index(v)
	if s.words[w]&m == 0 {
		panic(fmt.Sprintf("bitset: erase of absent element %d", v))
	}
	s.words[w] &^= m
}

// Empty reports whether s has no elements.
func (s Set) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Len returns the number of elements in s.
func (s Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Min returns the smallest element of s. Panics on an empty set.
func (s Set) Min() int {
	for i, w := range s.words {
		if w != 0 {
			return i*wordBits + bits.TrailingZeros64(w)
		}
	}
	panic("bitset: Min of empty set")
}

// Max returns the largest element of s. Panics on an empty set.
func (s Set) Max() int {
	for i := len(s.words) - 1; i >= 0; i-- {
		if w := s.words[i]; w != 0 {
			return i*wordBits + wordBits - 1 - bits.LeadingZeros64(w)
		}
	}
	panic("bitset: Max of empty set")
}

func (s Set) sameCapacity(o Set) {
	if len(s.words) != len(o.words) {
		panic("bitset: capacity mismatch between operands")
	}
}

// Equal reports whether s and o hold the same elements.
func (s Set) Equal(o Set) bool {
	s.sameCapacity(o)
	for i, w := range s.words {
		if w != o.words[i] {
			return false
		}
	}

	return true
}

// IsSubsetOf reports whether every element of s is in o.
func (s Set) IsSubsetOf(o Set) bool {
	s.sameCapacity(o)
	for i, w := range s.words {
		if w&o.words[i] != w {
			return false
		}
	}

	return true
}

// Intersects reports whether s and o share an element.
func (s Set) Intersects(o Set) bool {
	s.sameCapacity(o)
	for i, w := range s.words {
		if w&o.words[i] != 0 {
			return true
		}
	}

	return false
}

// Union returns s ∪ o as a new Set.
func (s Set) Union(o Set) Set {
	r := s.Clone()
	r.UnionWith(o)

	return r
}

// Intersect returns s ∩ o as a new Set.
func (s Set) Intersect(o Set) Set {
	r := s.Clone()
	r.IntersectWith(o)

	return r
}

// Diff returns s \ o as a new Set.
func (s Set) Diff(o Set) Set {
	r := s.Clone()
	r.DiffWith(o)

	return r
}

// SymDiff returns s △ o as a new Set.
func (s Set) SymDiff(o Set) Set {
	r := s.Clone()
	r.SymDiffWith(o)

	return r
}

// UnionWith adds every element of o to s in place.
func (s Set) UnionWith(o Set) {
	s.sameCapacity(o)
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
}

// IntersectWith keeps only the elements of s that are also in o.
func (s Set) IntersectWith(o Set) {
	s.sameCapacity(o)
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
}

// DiffWith removes every element of o from s.
func (s Set) DiffWith(o Set) {
	s.sameCapacity(o)
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
}

// SymDiffWith toggles every element of o in s.
func (s Set) SymDiffWith(o Set) {
	s.sameCapacity(o)
	for i := range s.words {
		s.words[i] ^= o.words[i]
	}
}

// Plus returns s with v added, as a new Set.
func (s Set) Plus(v int) Set {
	r := s.Clone()
	r.Insert(v)

	return r
}

// Minus returns s with v removed, as a new Set.
func (s Set) Minus(v int) Set {
	r := s.Clone()
	r.Erase(v)

	return r
}

// Increment returns s + 1, viewing the set as a little-endian binary numeral.
// Incrementing the full set wraps around to the empty set; subset enumeration
// relies on this convention.
func (s Set) Increment() Set {
	r := s.Clone()
	for i := range r.words {
		r.words[i]++
		if r.words[i] != 0 {
			break
		}
	}

	return r
}

// Decrement returns s - 1, viewing the set as a little-endian binary numeral.
// Decrementing the empty set panics.
func (s Set) Decrement() Set {
	if s.Empty() {
		panic("bitset: Decrement of empty set")
	}
	r := s.Clone()
	for i := range r.words {
		if r.words[i] != 0 {
			r.words[i]--
			break
		}
		r.words[i] = ^uint64(0)
	}

	return r
}

// Hash returns a deterministic hash of s. Each 64-bit lane is multiplied by
// a distinct prime before folding, so equal lane values at different
// positions hash differently.
func (s Set) Hash() uint64 {
	var h uint64
	for i, w := range s.words {
		h ^= primes[i] * w
	}

	return h
}

// String renders s as "{a, b, c}" in ascending order.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.ForEach(func(v int) {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(strconv.Itoa(v))
	})
	b.WriteByte('}')

	return b.String()
}
