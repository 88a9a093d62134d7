package subset

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// IntSet is a set of dense NFA state indices usable as a Registry key.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is the canonical form of a DFA state: the ascending indices of the NFA states it
// stands for, together with the DFA state it was assigned.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

// NewFrozenIntSet Returns a frozen set of values, which must be sorted ascending and free of
// duplicates, assigned to the given DFA state.
func NewFrozenIntSet(values []int, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashValues(values)}
}

// FreezeBitSet Returns the frozen form of the set bits of b.
func FreezeBitSet(b *bitset.BitSet, state int) *FrozenIntSet {
	values := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return NewFrozenIntSet(values, state)
}

func hashValues(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += mix(v)
	}
	return h
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

// Equals Two frozen sets are equal when they hold the same members; the assigned state is not
// part of the identity.
func (f *FrozenIntSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenIntSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State Returns the DFA state this set was assigned when it was frozen.
func (f *FrozenIntSet) State() int {
	return f.state
}

// BitSet Returns the members as a new bitset.
func (f *FrozenIntSet) BitSet() *bitset.BitSet {
	b := bitset.New(0)
	for _, v := range f.values {
		b.Set(uint(v))
	}
	return b
}
