// Package trie provides a compact, immutable character set with constant
// time membership tests, suitable for large Unicode classes.
//
// The set is stored as three bitmap tries, one per UTF-8 encoded length
// class. Identical 64-bit leaves and second level chunks are shared, so even
// sets covering most of Unicode stay small.
package trie

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

const (
	tree1End = 0x800
	tree2End = 0x10000
	tree3End = unicode.MaxRune + 1

	tree1Words = tree1End / 64
	tree2Words = tree2End / 64
	tree3Roots = tree3End >> 12
	tree2First = tree1End >> 6
	tree3First = tree2End >> 12
)

// Set is an immutable set of runes. It is safe for concurrent use.
//
// The zero value is the empty set.
type Set struct {
	// Runes below U+0800 are a direct bitmap.
	tree1 [tree1Words]uint64
	// Runes below U+10000: one leaf index per 64 runes.
	tree2Level1 []uint16
	tree2Level2 []uint64
	// All other runes: one chunk per 4096 runes, one leaf per 64.
	tree3Level1 []uint16
	tree3Level2 [][64]uint16
	tree3Level3 []uint64
}

// Contains returns true if r is in the set.
func (s *Set) Contains(r rune) bool {
	bit := uint64(1) << (uint(r) & 63)
	switch {
	case r < 0:
		return false
	case r < tree1End:
		return s.tree1[r>>6]&bit != 0
	case r < tree2End:
		if s.tree2Level1 == nil {
			return false
		}
		leaf := s.tree2Level1[(r>>6)-tree2First]
		return s.tree2Level2[leaf]&bit != 0
	case r < tree3End:
		if s.tree3Level1 == nil {
			return false
		}
		chunk := s.tree3Level1[(r>>12)-tree3First]
		leaf := s.tree3Level2[chunk][(r>>6)&63]
		return s.tree3Level3[leaf]&bit != 0
	}
	return false
}

// Range is an inclusive range of runes.
type Range struct {
	Lo rune
	Hi rune
}

// New builds a Set containing every rune in ranges. Runes outside
// [0, unicode.MaxRune] are ignored.
func New(ranges ...Range) *Set {
	b := &builder{}
	for _, rng := range ranges {
		for r := max(rng.Lo, 0); r <= min(rng.Hi, unicode.MaxRune); r++ {
			b.add(r)
		}
	}
	return b.build()
}

// Of builds a Set from an explicit list of runes.
func Of(runes ...rune) *Set {
	b := &builder{}
	for _, r := range runes {
		b.add(r)
	}
	return b.build()
}

// FromRangeTable builds a Set containing the union of tables.
func FromRangeTable(tables ...*unicode.RangeTable) *Set {
	b := &builder{}
	for _, table := range tables {
		rangetable.Visit(table, b.add)
	}
	return b.build()
}

// builder accumulates a flat bitmap of all of Unicode before compression.
type builder struct {
	bits [tree3End / 64]uint64
}

func (b *builder) add(r rune) {
	if r < 0 || r > unicode.MaxRune {
		return
	}
	b.bits[r>>6] |= 1 << (uint(r) & 63)
}

func (b *builder) build() *Set {
	s := &Set{}
	copy(s.tree1[:], b.bits[:tree1Words])

	leaves2 := leafTable{}
	s.tree2Level1 = make([]uint16, tree2Words-tree2First)
	for i := tree2First; i < tree2Words; i++ {
		s.tree2Level1[i-tree2First] = leaves2.intern(b.bits[i])
	}
	s.tree2Level2 = leaves2.leaves

	leaves3 := leafTable{}
	chunks := map[[64]uint16]uint16{}
	s.tree3Level1 = make([]uint16, tree3Roots-tree3First)
	for i := tree3First; i < tree3Roots; i++ {
		var chunk [64]uint16
		for j := range chunk {
			chunk[j] = leaves3.intern(b.bits[i*64+j])
		}
		index, ok := chunks[chunk]
		if !ok {
			index = uint16(len(s.tree3Level2))
			chunks[chunk] = index
			s.tree3Level2 = append(s.tree3Level2, chunk)
		}
		s.tree3Level1[i-tree3First] = index
	}
	s.tree3Level3 = leaves3.leaves
	return s
}

// leafTable deduplicates 64-bit leaves.
type leafTable struct {
	index  map[uint64]uint16
	leaves []uint64
}

func (l *leafTable) intern(leaf uint64) uint16 {
	if l.index == nil {
		l.index = map[uint64]uint16{}
	}
	if i, ok := l.index[leaf]; ok {
		return i
	}
	i := uint16(len(l.leaves))
	l.index[leaf] = i
	l.leaves = append(l.leaves, leaf)
	return i
}
