package subset

import (
	"github.com/bits-and-blooms/bitset"
)

// closure Returns the smallest superset of set that is closed under epsilon transitions. Each
// state is pushed on the worklist at most once: only when it first enters the result.
func (t *nfaTable[S]) closure(set *bitset.BitSet) *bitset.BitSet {
	result := set.Clone()

	workList := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		workList = append(workList, int(s))
	}

	for len(workList) > 0 {
		state := workList[len(workList)-1]
		workList = workList[:len(workList)-1]

		for _, dest := range t.epsilon[state] {
			if !result.Test(uint(dest)) {
				result.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return result
}

// EpsilonClosure Returns every state reachable from the given states through zero or more epsilon
// transitions. States without transitions, declared or not, are returned as they are.
func (n *NFA[S]) EpsilonClosure(states ...S) map[S]struct{} {
	t := newNFATable(n)

	set := bitset.New(uint(t.numStates()))
	for _, s := range states {
		set.Set(uint(t.indexOf(s)))
	}

	result := make(map[S]struct{})
	closed := t.closure(set)
	for s, ok := closed.NextSet(0); ok; s, ok = closed.NextSet(s + 1) {
		result[t.labels[s]] = struct{}{}
	}
	return result
}
