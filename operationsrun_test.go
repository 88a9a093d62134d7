package subset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	reference := MustDeterminize(referenceNFA())
	partial := MustDeterminize(referenceNFA(), WithPartial())

	type args struct {
		d     *DFA[string]
		input []Symbol
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{"single a", args{reference, Symbols("a")}, true},
		{"single b", args{reference, Symbols("b")}, true},
		{"empty input", args{reference, nil}, false},
		{"through dead state", args{reference, Symbols("aa")}, false},
		{"unknown symbol", args{reference, Symbols("c")}, false},
		{"unknown symbol after accept", args{reference, Symbols("ac")}, false},
		{"epsilon is never consumed", args{reference, []Symbol{DefaultEpsilon, "a"}}, false},
		{"partial accepts", args{partial, Symbols("b")}, true},
		{"partial missing transition", args{partial, Symbols("ba")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, tt.args.d.Run(tt.args.input), "Run(%v)", tt.args.input)
		})
	}
}

func TestRunMultiCharacterSymbols(t *testing.T) {
	n := &NFA[string]{
		States:  []string{"start", "cond", "done"},
		Start:   "start",
		Accepts: []string{"done"},
	}
	n.AddTransition("start", "if", "cond")
	n.AddTransition("cond", "then", "done")
	n.AddEpsilon("done", "start")

	d := MustDeterminize(n)
	assert.True(t, d.Run(SplitSymbols("if then", " ")))
	assert.True(t, d.Run(SplitSymbols("if,then,if,then", ",")))
	assert.False(t, d.Run(SplitSymbols("if", ",")))
	assert.False(t, d.Run(SplitSymbols("", ",")))
	assert.False(t, d.RunString("ifthen"))
}

func TestSplitSymbols(t *testing.T) {
	assert.Equal(t, []Symbol{"a", "b", "é"}, SplitSymbols("abé", ""))
	assert.Equal(t, []Symbol{"ab", "c"}, SplitSymbols("ab.c", "."))
	assert.Nil(t, SplitSymbols("", "."))
	assert.Empty(t, Symbols(""))
}

func TestRunConcurrent(t *testing.T) {
	d := MustDeterminize(referenceNFA())
	inputs := map[string]bool{"a": true, "b": true, "": false, "aa": false, "bb": false, "c": false}

	var wg sync.WaitGroup
	numWorkers := 64
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for s, want := range inputs {
				assert.Equal(t, want, d.RunString(s), s)
			}
		}()
	}
	wg.Wait()
}
