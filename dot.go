package subset

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteDOT Writes a Graphviz digraph of the automaton. Accept states are drawn as double
// circles; transitions between the same two states share one edge labelled with all symbols.
func (d *DFA[S]) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph DFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	for s := 0; s < d.numStates; s++ {
		shape := "circle"
		if d.IsAccept(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    %s [shape=%s];\n", d.StateName(s), shape)
	}
	for s := 0; s < d.numStates; s++ {
		dests, labels := groupEdges(d.Transitions(s))
		for _, dest := range dests {
			fmt.Fprintf(bw, "    %s -> %s [label=%q];\n", d.StateName(s), d.StateName(dest), strings.Join(labels[dest], ","))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point];\n    _start -> %s;\n", d.StateName(d.Start()))
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// WriteDOT Writes a Graphviz digraph of the automaton. Epsilon transitions are labelled ε.
func (n *NFA[S]) WriteDOT(w io.Writer) error {
	t := newNFATable(n)
	name := func(s int) string {
		return fmt.Sprintf("%q", fmt.Sprint(t.labels[s]))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph NFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	for s := range t.labels {
		shape := "circle"
		if t.accept.Test(uint(s)) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    %s [shape=%s];\n", name(s), shape)
	}
	for s := range t.labels {
		dests, labels := groupEdges(func(yield func(Symbol, int) bool) {
			for _, dest := range t.epsilon[s] {
				if !yield("ε", dest) {
					return
				}
			}
			for i, ds := range t.moves[s] {
				for _, dest := range ds {
					if !yield(t.alphabet[i], dest) {
						return
					}
				}
			}
		})
		for _, dest := range dests {
			fmt.Fprintf(bw, "    %s -> %s [label=%q];\n", name(s), name(dest), strings.Join(labels[dest], ","))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point];\n    _start -> %s;\n", name(t.start))
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// groupEdges Collects the labels of each destination, keeping destinations in first-seen order.
func groupEdges(edges func(yield func(Symbol, int) bool)) ([]int, map[int][]string) {
	var dests []int
	labels := make(map[int][]string)
	for sym, dest := range edges {
		if _, ok := labels[dest]; !ok {
			dests = append(dests, dest)
		}
		labels[dest] = append(labels[dest], string(sym))
	}
	return dests, labels
}
