package subset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminizeReference(t *testing.T) {
	d, err := Determinize(referenceNFA())
	require.NoError(t, err)

	assert.Equal(t, []Symbol{"a", "b"}, d.Alphabet())
	assert.Equal(t, 3, d.NumStates())
	assert.Equal(t, 0, d.Start())
	assert.Equal(t, []int{1}, d.AcceptStates())
	assert.True(t, d.IsComplete())

	dead, ok := d.DeadState()
	require.True(t, ok)
	assert.Equal(t, 2, dead)
	assert.False(t, d.IsAccept(dead))
	assert.Empty(t, d.Subset(dead))
	for _, sym := range d.Alphabet() {
		assert.Equal(t, dead, d.Step(dead, sym))
	}

	assert.Equal(t, []string{"q0", "q1"}, d.Subset(0))
	assert.Equal(t, []string{"q2"}, d.Subset(1))
	assert.Equal(t, 1, d.Step(0, "a"))
	assert.Equal(t, 1, d.Step(0, "b"))
	assert.Equal(t, dead, d.Step(1, "a"))
	assert.Equal(t, -1, d.Step(0, "c"))
	assert.Equal(t, 6, d.NumTransitions())

	assert.Equal(t, "q0", d.StateName(0))
	assert.Equal(t, "dead", d.StateName(dead))
}

func TestDeterminizeAcceptance(t *testing.T) {
	d := MustDeterminize(referenceNFA())

	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"b", true},
		{"", false},
		{"aa", false},
		{"ab", false},
		{"ba", false},
		{"bb", false},
		{"aaaabb", false},
		{"c", false},
		{"ac", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, d.RunString(tt.input))
		})
	}
}

func TestDeterminizeDeadState(t *testing.T) {
	d := MustDeterminize(referenceNFA())
	dead, ok := d.DeadState()
	require.True(t, ok)

	// "aa" goes q0 -> q1 -> dead
	state := d.Start()
	state = d.Step(state, "a")
	assert.True(t, d.IsAccept(state))
	state = d.Step(state, "a")
	assert.Equal(t, dead, state)
	assert.False(t, d.RunString("aa"))
}

func TestDeterminizeNoDeadStateWhenComplete(t *testing.T) {
	automata := &Automata{}
	d := MustDeterminize(automata.MakeAnyString("a", "b"))

	assert.Equal(t, 1, d.NumStates())
	_, ok := d.DeadState()
	assert.False(t, ok)
	assert.True(t, d.IsComplete())
}

func TestDeterminizeIsDeterministic(t *testing.T) {
	n := Concatenate(
		Repeat(Union((&Automata{}).MakeString("a"), (&Automata{}).MakeString("b"))),
		(&Automata{}).MakeString("a", "b", "b"),
	)

	d1 := MustDeterminize(n)
	d2 := MustDeterminize(n)

	require.Equal(t, d1.NumStates(), d2.NumStates())
	assert.Equal(t, d1.AcceptStates(), d2.AcceptStates())
	for s := 0; s < d1.NumStates(); s++ {
		for _, sym := range d1.Alphabet() {
			assert.Equal(t, d1.Step(s, sym), d2.Step(s, sym), "state %d symbol %s", s, sym)
		}
	}
	assert.Equal(t, d1.String(), d2.String())
}

func TestDeterminizeEmptyLanguage(t *testing.T) {
	n := &NFA[string]{
		States:   []string{"q0", "q1"},
		Alphabet: []Symbol{"a", "b", "&"},
		Transitions: map[string]map[Symbol][]string{
			"q0": {"a": {"q0"}},
		},
		Start:   "q0",
		Accepts: []string{"q1"},
	}

	d := MustDeterminize(n)
	assert.Empty(t, d.AcceptStates())
	assert.True(t, IsEmpty(d))
	for _, w := range allStrings(d.Alphabet(), 4) {
		assert.False(t, d.Run(w), "%v", w)
	}
}

func TestDeterminizeStartAccepting(t *testing.T) {
	n := referenceNFA()
	n.Accepts = append(n.Accepts, "q1")

	d := MustDeterminize(n)
	assert.True(t, d.RunString(""))
	assert.True(t, d.RunString("a"))
	assert.False(t, d.RunString("ab"))
}

func TestDeterminizeEmptyAlphabet(t *testing.T) {
	n := &NFA[int]{States: []int{0, 1}, Start: 0, Accepts: []int{1}}
	n.AddEpsilon(0, 1)

	d := MustDeterminize(n)
	assert.Equal(t, 1, d.NumStates())
	assert.Empty(t, d.Alphabet())
	assert.True(t, d.RunString(""))
	assert.False(t, d.RunString("a"))
}

func TestDeterminizeLenient(t *testing.T) {
	n := referenceNFA()
	// Undeclared target and a symbol outside the alphabet are tolerated.
	n.Transitions["q2"] = map[Symbol][]string{"a": {"ghost"}, "z": {"q0"}}

	d, err := Determinize(n)
	require.NoError(t, err)
	assert.True(t, d.RunString("a"))
	assert.False(t, d.RunString("aa"))
	assert.False(t, d.RunString("az"))
	assert.Equal(t, []Symbol{"a", "b"}, d.Alphabet())
}

func TestDeterminizeStrict(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		_, err := Determinize(referenceNFA(), WithStrict())
		assert.NoError(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		n := referenceNFA()
		n.Transitions["q2"] = map[Symbol][]string{"a": {"ghost"}}

		d, err := Determinize(n, WithStrict())
		assert.Nil(t, d)
		assert.ErrorIs(t, err, ErrMalformedAutomaton)
		assert.ErrorContains(t, err, "ghost")
	})
}

func TestDeterminizePartial(t *testing.T) {
	d, err := Determinize(referenceNFA(), WithPartial())
	require.NoError(t, err)

	assert.Equal(t, 2, d.NumStates())
	assert.False(t, d.IsComplete())
	_, ok := d.DeadState()
	assert.False(t, ok)
	assert.Equal(t, -1, d.Step(1, "a"))

	assert.True(t, d.RunString("a"))
	assert.False(t, d.RunString("aa"))
	assert.False(t, d.RunString(""))
}

func TestDeterminizeWorkLimit(t *testing.T) {
	_, err := Determinize(referenceNFA(), WithWorkLimit(1))
	assert.ErrorIs(t, err, ErrTooComplex)

	d, err := Determinize(referenceNFA(), WithWorkLimit(2))
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumStates())

	assert.Panics(t, func() {
		MustDeterminize(referenceNFA(), WithWorkLimit(1))
	})
}

func TestDeterminizeCollapsesEqualSubsets(t *testing.T) {
	// {1, 2} is reached on "a" from 0 and, discovered in the other order, on "b".
	n := &NFA[int]{States: []int{0, 1, 2}, Start: 0, Accepts: []int{2}}
	n.AddTransition(0, "a", 1, 2)
	n.AddTransition(0, "b", 2, 1)
	n.AddTransition(1, "a", 1)
	n.AddTransition(2, "b", 2)

	d := MustDeterminize(n, WithPartial())
	assert.Equal(t, d.Step(0, "a"), d.Step(0, "b"))
	assert.ElementsMatch(t, []int{1, 2}, d.Subset(d.Step(0, "a")))
}

// undeclaredNFA only declares s; x and y lead to q and p through transitions of their own.
func undeclaredNFA() *NFA[string] {
	n := &NFA[string]{States: []string{"s"}, Start: "s"}
	n.AddEpsilon("s", "x", "y")
	n.AddEpsilon("y", "p")
	n.AddEpsilon("x", "q")
	return n
}

func TestDeterminizeUndeclaredSourceOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		d := MustDeterminize(undeclaredNFA())
		assert.Equal(t, []string{"s", "x", "y", "q", "p"}, d.Subset(0))
	}
}
