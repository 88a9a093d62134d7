package subset

import "strings"

// Run Returns true if the automaton accepts the input. A symbol outside the alphabet, or a missing
// transition in a partial DFA, rejects the input; neither is an error.
func (d *DFA[S]) Run(input []Symbol) bool {
	state := d.Start()
	for _, sym := range input {
		state = d.Step(state, sym)
		if state == -1 {
			return false
		}
	}
	return d.IsAccept(state)
}

// RunString is Run with every rune of s taken as one symbol.
func (d *DFA[S]) RunString(s string) bool {
	return d.Run(Symbols(s))
}

// Symbols Splits s into one symbol per rune.
func Symbols(s string) []Symbol {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}

// SplitSymbols Splits s around sep into symbols, for alphabets with multi character symbols. An
// empty s is the empty input. An empty sep splits into runes.
func SplitSymbols(s, sep string) []Symbol {
	if sep == "" {
		return Symbols(s)
	}
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	symbols := make([]Symbol, len(parts))
	for i, p := range parts {
		symbols[i] = Symbol(p)
	}
	return symbols
}
