// Package subset converts nondeterministic finite automata with epsilon
// transitions into equivalent deterministic automata using the subset
// (powerset) construction, and runs the resulting DFA against input strings.
package subset

// Symbol is a single atomic input token.
type Symbol string

// DefaultEpsilon is the symbol used for silent transitions when NFA.Epsilon is
// left empty.
const DefaultEpsilon Symbol = "&"

// NFA Represents a nondeterministic automaton with epsilon transitions. State labels are opaque
// comparable values; a (state, symbol) pair may lead to zero, one or many states. Transitions may
// reference states that are not listed in States: lookups that find nothing are treated as "no
// transition". Use Validate or WithStrict to reject such automata instead.
//
// An NFA is only read by the operations of this package, never modified.
type NFA[S comparable] struct {
	States      []S
	Alphabet    []Symbol
	Transitions map[S]map[Symbol][]S
	Start       S
	Accepts     []S

	// Epsilon marks silent transitions. Empty means DefaultEpsilon.
	Epsilon Symbol
}

// EpsilonSymbol Returns the symbol this automaton uses for epsilon transitions.
func (n *NFA[S]) EpsilonSymbol() Symbol {
	if n.Epsilon == "" {
		return DefaultEpsilon
	}
	return n.Epsilon
}

// AddState Declare a state. Declaring a state twice is a no-op.
func (n *NFA[S]) AddState(state S) {
	for _, s := range n.States {
		if s == state {
			return
		}
	}
	n.States = append(n.States, state)
}

// SetAccept Set or clear this state as an accept state.
func (n *NFA[S]) SetAccept(state S, accept bool) {
	for i, s := range n.Accepts {
		if s == state {
			if !accept {
				n.Accepts = append(n.Accepts[:i], n.Accepts[i+1:]...)
			}
			return
		}
	}
	if accept {
		n.Accepts = append(n.Accepts, state)
	}
}

// AddTransition Add transitions from source to every dest on label. The label is added to the
// alphabet if it is not there yet.
func (n *NFA[S]) AddTransition(source S, label Symbol, dest ...S) {
	if n.Transitions == nil {
		n.Transitions = make(map[S]map[Symbol][]S)
	}
	bySymbol, ok := n.Transitions[source]
	if !ok {
		bySymbol = make(map[Symbol][]S)
		n.Transitions[source] = bySymbol
	}
	bySymbol[label] = append(bySymbol[label], dest...)
	n.addSymbol(label)
}

// AddEpsilon Add epsilon transitions from source to every dest.
func (n *NFA[S]) AddEpsilon(source S, dest ...S) {
	n.AddTransition(source, n.EpsilonSymbol(), dest...)
}

func (n *NFA[S]) addSymbol(label Symbol) {
	for _, s := range n.Alphabet {
		if s == label {
			return
		}
	}
	n.Alphabet = append(n.Alphabet, label)
}
