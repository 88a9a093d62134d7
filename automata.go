package subset

import "slices"

// Automata builds small NFAs over dense int states. They use DefaultEpsilon unless it is one of
// their symbols, and combine with Union, Concatenate, Repeat and Optional.
type Automata struct {
}

// MakeEmpty
// Returns a new automaton with the empty language over the given alphabet.
func (*Automata) MakeEmpty(alphabet ...Symbol) *NFA[int] {
	return &NFA[int]{
		States:   []int{0},
		Alphabet: slices.Clone(alphabet),
		Start:    0,
		Epsilon:  epsilonAvoiding(alphabet...),
	}
}

// MakeEmptyString
// Returns a new automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet ...Symbol) *NFA[int] {
	return &NFA[int]{
		States:   []int{0},
		Alphabet: slices.Clone(alphabet),
		Start:    0,
		Accepts:  []int{0},
		Epsilon:  epsilonAvoiding(alphabet...),
	}
}

// MakeAnyString
// Returns a new automaton that accepts all strings over the given alphabet.
func (*Automata) MakeAnyString(alphabet ...Symbol) *NFA[int] {
	a := &NFA[int]{
		States:  []int{0},
		Start:   0,
		Accepts: []int{0},
		Epsilon: epsilonAvoiding(alphabet...),
	}
	for _, sym := range alphabet {
		a.AddTransition(0, sym, 0)
	}
	return a
}

// MakeAnySymbol
// Returns a new automaton that accepts every single symbol of the given alphabet.
func (*Automata) MakeAnySymbol(alphabet ...Symbol) *NFA[int] {
	a := &NFA[int]{
		States:  []int{0, 1},
		Start:   0,
		Accepts: []int{1},
		Epsilon: epsilonAvoiding(alphabet...),
	}
	for _, sym := range alphabet {
		a.AddTransition(0, sym, 1)
	}
	return a
}

// MakeString
// Returns a new automaton that accepts exactly the given sequence of symbols.
func (*Automata) MakeString(symbols ...Symbol) *NFA[int] {
	a := &NFA[int]{
		States:  []int{0},
		Start:   0,
		Epsilon: epsilonAvoiding(symbols...),
	}
	for i, sym := range symbols {
		a.States = append(a.States, i+1)
		a.AddTransition(i, sym, i+1)
	}
	a.Accepts = []int{len(symbols)}
	return a
}
