package subset

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// complete Routes every missing transition to the dead state, creating it on first need. The
// dead state loops to itself on every symbol and never accepts.
func (d *DFA[S]) complete() {
	if d.IsComplete() {
		return
	}
	if d.dead == -1 {
		d.dead = d.createState(nil, false)
		for symbol := range d.alphabet {
			d.setTransition(d.dead, symbol, d.dead)
		}
	}
	for i, dest := range d.transitions {
		if dest == -1 {
			d.transitions[i] = d.dead
		}
	}
}

// Totalize Returns a copy of d in which every state has a transition for every symbol. Missing
// transitions lead to a single dead state, which is only added if something was missing.
func Totalize[S comparable](d *DFA[S]) *DFA[S] {
	result := d.clone()
	result.complete()
	return result
}

// Complement Returns a complete DFA accepting exactly the strings over the alphabet that d
// rejects. The former dead state becomes an accepting sink, so the result has no dead state.
func Complement[S comparable](d *DFA[S]) *DFA[S] {
	result := Totalize(d)
	for p := 0; p < result.numStates; p++ {
		result.isAccept.SetTo(uint(p), !result.IsAccept(p))
	}
	result.dead = -1
	return result
}

// IsEmpty
// Returns true if the given automaton accepts no strings.
func IsEmpty[S comparable](d *DFA[S]) bool {
	if d.NumStates() == 0 {
		return true
	}
	if d.IsAccept(d.Start()) {
		// Common case: it accepts the empty string
		return false
	}

	live := getLiveStatesFromInitial(d)
	return live.IntersectionCardinality(d.isAccept) == 0
}

// IsUniversal
// Returns true if the given automaton accepts every string over its alphabet.
func IsUniversal[S comparable](d *DFA[S]) bool {
	if d.NumStates() == 0 {
		return false
	}

	live := getLiveStatesFromInitial(d)
	for s, ok := live.NextSet(0); ok; s, ok = live.NextSet(s + 1) {
		if !d.IsAccept(int(s)) {
			return false
		}
		row := int(s) * len(d.alphabet)
		for i := range d.alphabet {
			if d.transitions[row+i] == -1 {
				// Missing transitions reject.
				return false
			}
		}
	}
	return true
}

// Returns the states reachable from the initial state.
func getLiveStatesFromInitial[S comparable](d *DFA[S]) *bitset.BitSet {
	numStates := d.NumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 {
		return live
	}

	workList := []int{d.Start()}
	live.Set(uint(d.Start()))
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, dest := range d.Transitions(s) {
			if !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return live
}

// Union Returns an NFA accepting the strings accepted by any of the given automata. A new initial
// state has an epsilon transition to each operand's initial state.
func Union(automata ...*NFA[int]) *NFA[int] {
	result := &NFA[int]{Epsilon: epsilonFor(automata...)}
	result.States = append(result.States, 0)
	result.Start = 0

	for _, a := range automata {
		start, accepts := copyInto(result, a)
		result.AddEpsilon(0, start)
		result.Accepts = append(result.Accepts, accepts...)
	}
	return result
}

// Concatenate Returns an NFA accepting the concatenations of strings accepted by the given
// automata, in order. Accept states of each operand get an epsilon transition to the initial state
// of the next one.
func Concatenate(automata ...*NFA[int]) *NFA[int] {
	if len(automata) == 0 {
		return (&Automata{}).MakeEmptyString()
	}

	result := &NFA[int]{Epsilon: epsilonFor(automata...)}
	var prevAccepts []int
	for i, a := range automata {
		start, accepts := copyInto(result, a)
		if i == 0 {
			result.Start = start
		}
		for _, p := range prevAccepts {
			result.AddEpsilon(p, start)
		}
		prevAccepts = accepts
	}
	result.Accepts = prevAccepts
	return result
}

// Repeat Returns an NFA accepting zero or more repetitions of strings accepted by a (Kleene star).
func Repeat(a *NFA[int]) *NFA[int] {
	result := &NFA[int]{Epsilon: epsilonFor(a)}
	result.States = append(result.States, 0)
	result.Start = 0
	result.Accepts = []int{0}

	start, accepts := copyInto(result, a)
	result.AddEpsilon(0, start)
	for _, p := range accepts {
		result.AddEpsilon(p, 0)
	}
	return result
}

// RepeatMin Returns an NFA accepting min or more repetitions of strings accepted by a.
func RepeatMin(a *NFA[int], min int) *NFA[int] {
	if min <= 0 {
		return Repeat(a)
	}
	as := make([]*NFA[int], 0, min+1)
	for ; min > 0; min-- {
		as = append(as, a)
	}
	as = append(as, Repeat(a))
	return Concatenate(as...)
}

// Optional Returns an NFA accepting the empty string and the strings accepted by a.
func Optional(a *NFA[int]) *NFA[int] {
	return Union(a, (&Automata{}).MakeEmptyString())
}

// epsilonFor Returns an epsilon symbol that none of the automata reads as input.
func epsilonFor(automata ...*NFA[int]) Symbol {
	var inputs []Symbol
	for _, a := range automata {
		eps := a.EpsilonSymbol()
		for _, sym := range a.Alphabet {
			if sym != eps {
				inputs = append(inputs, sym)
			}
		}
	}
	return epsilonAvoiding(inputs...)
}

// epsilonAvoiding Returns DefaultEpsilon, or DefaultEpsilon followed by the smallest number that
// makes it differ from every one of the symbols.
func epsilonAvoiding(symbols ...Symbol) Symbol {
	eps := DefaultEpsilon
	for i := 1; slices.Contains(symbols, eps); i++ {
		eps = Symbol(fmt.Sprintf("%s%d", DefaultEpsilon, i))
	}
	return eps
}

// copyInto Appends the states and transitions of a to result with states renumbered after the
// ones result already has. Epsilon transitions of a are rewritten to result's epsilon symbol, which
// must not be an input symbol of a.
// Returns the renumbered initial and accept states of a.
func copyInto(result *NFA[int], a *NFA[int]) (int, []int) {
	t := newNFATable(a)
	offset := len(result.States)

	for s := range t.labels {
		result.States = append(result.States, offset+s)
	}
	for _, sym := range t.alphabet {
		result.addSymbol(sym)
	}
	for s := range t.labels {
		for _, dest := range t.epsilon[s] {
			result.AddEpsilon(offset+s, offset+dest)
		}
		for i, dests := range t.moves[s] {
			for _, dest := range dests {
				result.AddTransition(offset+s, t.alphabet[i], offset+dest)
			}
		}
	}

	accepts := make([]int, 0, t.accept.Count())
	for s, ok := t.accept.NextSet(0); ok; s, ok = t.accept.NextSet(s + 1) {
		accepts = append(accepts, offset+int(s))
	}
	return offset + t.start, accepts
}
