package subset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// nfaTable is an NFA with its labels replaced by dense indices. Every operation of the package
// builds one on entry so the algorithms work on slices and bitsets only.
type nfaTable[S comparable] struct {
	labels []S
	index  map[S]int

	// Sorted alphabet without the epsilon symbol.
	alphabet []Symbol
	symbols  map[Symbol]int

	// epsilon[s] holds the epsilon successors of s, moves[s][i] the successors of s on alphabet[i].
	epsilon [][]int
	moves   [][][]int

	start  int
	accept *bitset.BitSet
}

func newNFATable[S comparable](n *NFA[S]) *nfaTable[S] {
	t := &nfaTable[S]{
		index:   make(map[S]int, len(n.States)),
		symbols: make(map[Symbol]int, len(n.Alphabet)),
	}

	eps := n.EpsilonSymbol()
	for _, sym := range n.Alphabet {
		if sym == eps {
			continue
		}
		if _, ok := t.symbols[sym]; ok {
			continue
		}
		t.symbols[sym] = 0
		t.alphabet = append(t.alphabet, sym)
	}
	slices.Sort(t.alphabet)
	for i, sym := range t.alphabet {
		t.symbols[sym] = i
	}

	for _, s := range n.States {
		t.indexOf(s)
	}
	t.start = t.indexOf(n.Start)
	t.accept = bitset.New(uint(len(t.labels)))
	for _, s := range n.Accepts {
		t.accept.Set(uint(t.indexOf(s)))
	}

	// Declared states first so their transitions are indexed in declaration order.
	for _, s := range n.States {
		t.addTransitions(s, n.Transitions[s], eps)
	}
	for _, s := range undeclaredSources(n) {
		t.addTransitions(s, n.Transitions[s], eps)
	}
	return t
}

// undeclaredSources Returns the transition sources missing from n.States, ordered by their
// printed form so that indexing them does not depend on map iteration order.
func undeclaredSources[S comparable](n *NFA[S]) []S {
	var sources []S
	for s := range n.Transitions {
		if !slices.Contains(n.States, s) {
			sources = append(sources, s)
		}
	}
	slices.SortFunc(sources, func(a, b S) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return sources
}

func (t *nfaTable[S]) indexOf(label S) int {
	if i, ok := t.index[label]; ok {
		return i
	}
	i := len(t.labels)
	t.labels = append(t.labels, label)
	t.index[label] = i
	t.epsilon = append(t.epsilon, nil)
	t.moves = append(t.moves, make([][]int, len(t.alphabet)))
	return i
}

func (t *nfaTable[S]) addTransitions(source S, bySymbol map[Symbol][]S, eps Symbol) {
	if len(bySymbol) == 0 {
		return
	}
	from := t.indexOf(source)

	// Map iteration order is random; visit symbols in a fixed order.
	keys := make([]Symbol, 0, len(bySymbol))
	for sym := range bySymbol {
		keys = append(keys, sym)
	}
	slices.Sort(keys)

	for _, sym := range keys {
		dests := bySymbol[sym]
		if sym == eps {
			for _, d := range dests {
				to := t.indexOf(d)
				t.epsilon[from] = append(t.epsilon[from], to)
			}
			continue
		}
		i, ok := t.symbols[sym]
		if !ok {
			// Symbols outside the alphabet are never consumed.
			continue
		}
		for _, d := range dests {
			to := t.indexOf(d)
			t.moves[from][i] = append(t.moves[from][i], to)
		}
	}
}

// numStates How many NFA states the table knows about, declared or not.
func (t *nfaTable[S]) numStates() int {
	return len(t.labels)
}

// move Returns the union of the successors of every state in set on alphabet[symbol].
func (t *nfaTable[S]) move(set *bitset.BitSet, symbol int) *bitset.BitSet {
	result := bitset.New(uint(t.numStates()))
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		for _, d := range t.moves[s][symbol] {
			result.Set(uint(d))
		}
	}
	return result
}

func (t *nfaTable[S]) isAccept(set *bitset.BitSet) bool {
	return set.IntersectionCardinality(t.accept) > 0
}

func (t *nfaTable[S]) labelsOf(values []int) []S {
	labels := make([]S, len(values))
	for i, v := range values {
		labels[i] = t.labels[v]
	}
	return labels
}
