package subset

import (
	"fmt"

	u "github.com/araddon/gou"
	"github.com/bits-and-blooms/bitset"
)

type options struct {
	strict    bool
	partial   bool
	workLimit int
}

// Option configures Determinize.
type Option func(*options)

// WithStrict Validate the NFA first and fail with ErrMalformedAutomaton instead of treating
// undeclared states as states without transitions.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithPartial Skip completion: missing transitions stay missing and no dead state is added.
func WithPartial() Option {
	return func(o *options) {
		o.partial = true
	}
}

// WithWorkLimit Fail with ErrTooComplex once the construction would create more than limit DFA
// states. Zero or less means no limit.
func WithWorkLimit(limit int) Option {
	return func(o *options) {
		o.workLimit = limit
	}
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// Determinize Converts the NFA into an equivalent DFA using subset construction.
// Worst case complexity: exponential in the number of NFA states.
//
// Each DFA state stands for an epsilon closed set of NFA states; state 0 is the closure of the
// NFA start state. Sets are discovered breadth first with the alphabet visited in sorted order, so
// the numbering only depends on the NFA. A DFA state accepts if its set contains an NFA accept
// state. Unless WithPartial is given the result is complete: every missing transition leads to a
// single dead state.
//
// Without options the returned error is always nil.
func Determinize[S comparable](n *NFA[S], opts ...Option) (*DFA[S], error) {
	o := newOptions(opts...)
	if o.strict {
		if err := Validate(n); err != nil {
			return nil, err
		}
	}

	t := newNFATable(n)
	d := newDFA[S](t.alphabet)

	// Canonical sets -> DFA states
	newState := NewRegistry[int](WithBuckets(16))

	initial := bitset.New(uint(t.numStates()))
	initial.Set(uint(t.start))
	initial = t.closure(initial)

	initialSet := FreezeBitSet(initial, 0)
	d.createState(t.labelsOf(initialSet.GetArray()), t.isAccept(initial))
	newState.Intern(initialSet, initialSet.State())

	workList := []*FrozenIntSet{initialSet}
	for len(workList) > 0 {
		current := workList[0]
		workList = workList[1:]
		members := current.BitSet()

		for symbol := range t.alphabet {
			moved := t.move(members, symbol)
			if moved.None() {
				// Left for complete to route to the dead state.
				continue
			}
			closed := t.closure(moved)

			next := FreezeBitSet(closed, d.NumStates())
			dest, seen := newState.Intern(next, next.State())
			if !seen {
				if o.workLimit > 0 && d.NumStates() >= o.workLimit {
					return nil, fmt.Errorf("%w: more than %d states", ErrTooComplex, o.workLimit)
				}
				d.createState(t.labelsOf(next.GetArray()), t.isAccept(closed))
				workList = append(workList, next)
			}
			d.setTransition(current.State(), symbol, dest)
		}
	}

	u.Debugf("determinized %d NFA states into %d DFA states over %d symbols",
		t.numStates(), d.NumStates(), len(t.alphabet))

	if !o.partial {
		d.complete()
	}
	return d, nil
}

// MustDeterminize is like Determinize but panics if the construction fails.
func MustDeterminize[S comparable](n *NFA[S], opts ...Option) *DFA[S] {
	d, err := Determinize(n, opts...)
	if err != nil {
		panic(err)
	}
	return d
}
