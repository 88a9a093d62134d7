package subset

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/bits-and-blooms/bitset"
)

// DFA Represents a deterministic automaton produced by Determinize. States are the integers
// 0..NumStates()-1 and state 0 is always the initial state. The transition function is kept in one
// packed slice with a row of len(Alphabet()) destinations per state, -1 marking a missing
// transition. After completion there are no missing transitions and at most one dead state.
//
// A DFA is never modified once returned, so it may be shared between goroutines.
type DFA[S comparable] struct {
	alphabet []Symbol
	symbols  map[Symbol]int

	// Holds the destination for every (state, symbol) pair.
	transitions []int

	numStates int
	isAccept  *bitset.BitSet

	// The NFA states behind each DFA state, in NFA index order.
	subsets [][]S

	// Index of the dead state, or -1 if there is none.
	dead int
}

func newDFA[S comparable](alphabet []Symbol) *DFA[S] {
	d := &DFA[S]{
		alphabet: alphabet,
		symbols:  make(map[Symbol]int, len(alphabet)),
		isAccept: bitset.New(8),
		dead:     -1,
	}
	for i, sym := range alphabet {
		d.symbols[sym] = i
	}
	return d
}

// Create a new state with no transitions.
func (d *DFA[S]) createState(subset []S, accept bool) int {
	state := d.numStates
	d.numStates++

	row := len(d.transitions)
	d.transitions = grow(d.transitions, row+len(d.alphabet))
	for i := row; i < len(d.transitions); i++ {
		d.transitions[i] = -1
	}
	d.subsets = append(d.subsets, subset)
	d.isAccept.SetTo(uint(state), accept)
	return state
}

func (d *DFA[S]) setTransition(source, symbol, dest int) {
	d.transitions[source*len(d.alphabet)+symbol] = dest
}

func (d *DFA[S]) clone() *DFA[S] {
	return &DFA[S]{
		alphabet:    d.alphabet,
		symbols:     d.symbols,
		transitions: slices.Clone(d.transitions),
		numStates:   d.numStates,
		isAccept:    d.isAccept.Clone(),
		subsets:     slices.Clone(d.subsets),
		dead:        d.dead,
	}
}

// NumStates How many states this automaton has, the dead state included.
func (d *DFA[S]) NumStates() int {
	return d.numStates
}

// States Returns all states in ascending order.
func (d *DFA[S]) States() []int {
	states := make([]int, d.numStates)
	for i := range states {
		states[i] = i
	}
	return states
}

// Start Returns the initial state, the state standing for the epsilon closure of the NFA start.
func (d *DFA[S]) Start() int {
	return 0
}

// Alphabet Returns the sorted input symbols, without the epsilon symbol.
func (d *DFA[S]) Alphabet() []Symbol {
	return slices.Clone(d.alphabet)
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA[S]) IsAccept(state int) bool {
	return d.isAccept.Test(uint(state))
}

// AcceptStates Returns the accept states in ascending order.
func (d *DFA[S]) AcceptStates() []int {
	accepts := make([]int, 0, d.isAccept.Count())
	for s, ok := d.isAccept.NextSet(0); ok && int(s) < d.numStates; s, ok = d.isAccept.NextSet(s + 1) {
		accepts = append(accepts, int(s))
	}
	return accepts
}

// Subset Returns the NFA states the given DFA state stands for. The dead state stands for none.
func (d *DFA[S]) Subset(state int) []S {
	return slices.Clone(d.subsets[state])
}

// DeadState Returns the dead state and true, or -1 and false when the automaton has none.
func (d *DFA[S]) DeadState() (int, bool) {
	return d.dead, d.dead != -1
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if the symbol is not in the alphabet or the state has no
// transition for it.
func (d *DFA[S]) Step(state int, label Symbol) int {
	if state < 0 || state >= d.numStates {
		return -1
	}
	i, ok := d.symbols[label]
	if !ok {
		return -1
	}
	return d.transitions[state*len(d.alphabet)+i]
}

// Transitions Yields the symbol and destination of every transition leaving state, in alphabet
// order.
func (d *DFA[S]) Transitions(state int) iter.Seq2[Symbol, int] {
	return func(yield func(Symbol, int) bool) {
		row := state * len(d.alphabet)
		for i, sym := range d.alphabet {
			dest := d.transitions[row+i]
			if dest == -1 {
				continue
			}
			if !yield(sym, dest) {
				return
			}
		}
	}
}

// NumTransitions How many transitions this automaton has.
func (d *DFA[S]) NumTransitions() int {
	count := 0
	for _, dest := range d.transitions {
		if dest != -1 {
			count++
		}
	}
	return count
}

// IsComplete Returns true if every state has a transition for every symbol of the alphabet.
func (d *DFA[S]) IsComplete() bool {
	return !slices.Contains(d.transitions, -1)
}

// StateName Returns the display name of a state: "dead" for the dead state, q<n> otherwise.
func (d *DFA[S]) StateName(state int) string {
	if d.dead != -1 && state == d.dead {
		return "dead"
	}
	return fmt.Sprintf("q%d", state)
}

// String Renders the transition table, one row per state. The initial state is marked with "->"
// and accept states with "*".
func (d *DFA[S]) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprint(w, "\t")
	for _, sym := range d.alphabet {
		fmt.Fprintf(w, "\t%s", sym)
	}
	fmt.Fprintln(w)

	for s := 0; s < d.numStates; s++ {
		marker := ""
		if s == d.Start() {
			marker = "->"
		}
		if d.IsAccept(s) {
			marker += "*"
		}
		fmt.Fprintf(w, "%s\t%s", marker, d.StateName(s))
		row := s * len(d.alphabet)
		for i := range d.alphabet {
			dest := d.transitions[row+i]
			if dest == -1 {
				fmt.Fprint(w, "\t-")
			} else {
				fmt.Fprintf(w, "\t%s", d.StateName(dest))
			}
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
	return sb.String()
}
