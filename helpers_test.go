package subset

import (
	"math/rand"
	"slices"
)

// referenceNFA: q0 --&--> q1, q1 --a,b--> q2, accepting q2.
func referenceNFA() *NFA[string] {
	return &NFA[string]{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []Symbol{"a", "b", "&"},
		Transitions: map[string]map[Symbol][]string{
			"q0": {"&": {"q1"}},
			"q1": {"a": {"q2"}, "b": {"q2"}},
			"q2": {},
		},
		Start:   "q0",
		Accepts: []string{"q2"},
	}
}

// simulate runs the NFA directly on sets of labels. Closures are computed by iterating to a fixed
// point rather than with a worklist, so it shares no code with the constructor.
func simulate[S comparable](n *NFA[S], input []Symbol) bool {
	eps := n.EpsilonSymbol()
	closure := func(set map[S]bool) map[S]bool {
		for changed := true; changed; {
			changed = false
			for s := range set {
				for _, d := range n.Transitions[s][eps] {
					if !set[d] {
						set[d] = true
						changed = true
					}
				}
			}
		}
		return set
	}

	current := closure(map[S]bool{n.Start: true})
	for _, sym := range input {
		if sym == eps || !slices.Contains(n.Alphabet, sym) {
			return false
		}
		next := make(map[S]bool)
		for s := range current {
			for _, d := range n.Transitions[s][sym] {
				next[d] = true
			}
		}
		current = closure(next)
	}
	for s := range current {
		if slices.Contains(n.Accepts, s) {
			return true
		}
	}
	return false
}

// allStrings returns every string over alphabet of length at most maxLen.
func allStrings(alphabet []Symbol, maxLen int) [][]Symbol {
	result := [][]Symbol{{}}
	frontier := [][]Symbol{{}}
	for l := 0; l < maxLen; l++ {
		var next [][]Symbol
		for _, w := range frontier {
			for _, sym := range alphabet {
				next = append(next, append(slices.Clone(w), sym))
			}
		}
		result = append(result, next...)
		frontier = next
	}
	return result
}

// randomNFA builds an NFA over {a, b, c} with up to maxStates declared states. Some transitions
// lead to the undeclared state 99.
func randomNFA(r *rand.Rand, maxStates int) *NFA[int] {
	numStates := 1 + r.Intn(maxStates)
	n := &NFA[int]{
		Alphabet: []Symbol{"a", "b", "c", DefaultEpsilon},
		Start:    r.Intn(numStates),
	}
	for s := 0; s < numStates; s++ {
		n.States = append(n.States, s)
		if r.Intn(3) == 0 {
			n.Accepts = append(n.Accepts, s)
		}
	}

	target := func() int {
		if r.Intn(12) == 0 {
			return 99
		}
		return r.Intn(numStates)
	}
	for s := 0; s < numStates; s++ {
		for _, sym := range n.Alphabet {
			for k := r.Intn(3); k > 0; k-- {
				if sym == DefaultEpsilon && r.Intn(2) == 0 {
					continue
				}
				n.AddTransition(s, sym, target())
			}
		}
	}
	return n
}

func keys[S comparable](m map[S]struct{}) []S {
	result := make([]S, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
