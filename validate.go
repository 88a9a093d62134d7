package subset

import (
	"errors"
	"fmt"
	"slices"
)

// Validate Checks that every state the automaton references is declared in States and every
// transition symbol is in the alphabet or is the epsilon symbol. Returns nil for a well formed
// automaton, otherwise all problems joined, each wrapping ErrMalformedAutomaton.
//
// Determinize does not call Validate unless WithStrict is given: by default undeclared states are
// simply states without transitions.
func Validate[S comparable](n *NFA[S]) error {
	declared := make(map[S]struct{}, len(n.States))
	for _, s := range n.States {
		declared[s] = struct{}{}
	}
	isDeclared := func(s S) bool {
		_, ok := declared[s]
		return ok
	}

	eps := n.EpsilonSymbol()
	var errs []error

	if !isDeclared(n.Start) {
		errs = append(errs, fmt.Errorf("%w: start state %v is not declared", ErrMalformedAutomaton, n.Start))
	}
	for _, s := range n.Accepts {
		if !isDeclared(s) {
			errs = append(errs, fmt.Errorf("%w: accept state %v is not declared", ErrMalformedAutomaton, s))
		}
	}

	// Declared sources in declaration order, then the rest, so reports are stable for the common case.
	sources := slices.Clone(n.States)
	for s := range n.Transitions {
		if !isDeclared(s) {
			sources = append(sources, s)
		}
	}

	for _, source := range sources {
		bySymbol := n.Transitions[source]
		if len(bySymbol) == 0 {
			continue
		}
		if !isDeclared(source) {
			errs = append(errs, fmt.Errorf("%w: transitions leave undeclared state %v", ErrMalformedAutomaton, source))
		}

		symbols := make([]Symbol, 0, len(bySymbol))
		for sym := range bySymbol {
			symbols = append(symbols, sym)
		}
		slices.Sort(symbols)

		for _, sym := range symbols {
			if sym != eps && !slices.Contains(n.Alphabet, sym) {
				errs = append(errs, fmt.Errorf("%w: transition %v --%s--> uses a symbol outside the alphabet",
					ErrMalformedAutomaton, source, sym))
			}
			for _, dest := range bySymbol[sym] {
				if !isDeclared(dest) {
					errs = append(errs, fmt.Errorf("%w: transition %v --%s--> %v targets an undeclared state",
						ErrMalformedAutomaton, source, sym, dest))
				}
			}
		}
	}

	return errors.Join(errs...)
}
