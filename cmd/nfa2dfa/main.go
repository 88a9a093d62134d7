// Command nfa2dfa converts an automaton definition into a DFA and checks strings against it.
//
//	nfa2dfa -def automaton.nfa [-table] [-dot out.dot] a b aa
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	u "github.com/araddon/gou"

	"github.com/geange/subset"
	"github.com/geange/subset/definition"
)

type config struct {
	defFile   string
	strict    bool
	partial   bool
	workLimit int
	dotFile   string
	nfaDot    bool
	table     bool
	sep       string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.defFile, "def", "", "automaton definition file (.yaml, .yml, .nfa, .fa, .txt)")
	logLevel := flag.String("loglevel", "info", "log level [debug|info|warn|error]")
	flag.BoolVar(&cfg.strict, "strict", false, "reject definitions referencing undeclared states or symbols")
	flag.BoolVar(&cfg.partial, "partial", false, "do not add a dead state for missing transitions")
	flag.IntVar(&cfg.workLimit, "worklimit", 0, "maximum number of DFA states, 0 for no limit")
	flag.StringVar(&cfg.dotFile, "dot", "", "write a Graphviz DOT file, - for stdout")
	flag.BoolVar(&cfg.nfaDot, "nfa", false, "export the NFA instead of the DFA with -dot")
	flag.BoolVar(&cfg.table, "table", false, "print the DFA transition table")
	flag.StringVar(&cfg.sep, "sep", "", "symbol separator in test strings, empty splits into characters")
	flag.Parse()

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if cfg.defFile == "" {
		fmt.Fprintln(os.Stderr, "usage: nfa2dfa -def <file> [flags] [strings...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(cfg, flag.Args(), os.Stdout); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg config, inputs []string, stdout io.Writer) error {
	def, err := definition.Load(cfg.defFile)
	if err != nil {
		return err
	}
	nfa := def.NFA()

	var opts []subset.Option
	if cfg.strict {
		opts = append(opts, subset.WithStrict())
	}
	if cfg.partial {
		opts = append(opts, subset.WithPartial())
	}
	if cfg.workLimit > 0 {
		opts = append(opts, subset.WithWorkLimit(cfg.workLimit))
	}

	dfa, err := subset.Determinize(nfa, opts...)
	if err != nil {
		return err
	}
	dead, hasDead := dfa.DeadState()
	u.Infof("%s: %d DFA states, %d accepting, dead state %v", cfg.defFile, dfa.NumStates(), len(dfa.AcceptStates()), hasDead)
	if hasDead {
		u.Debugf("dead state is %s", dfa.StateName(dead))
	}

	if cfg.table {
		fmt.Fprint(stdout, dfa.String())
	}

	if cfg.dotFile != "" {
		if err := writeDOT(cfg, nfa, dfa, stdout); err != nil {
			return err
		}
	}

	for _, s := range inputs {
		accepted := dfa.Run(subset.SplitSymbols(s, cfg.sep))
		fmt.Fprintf(stdout, "Does the DFA accept '%s'? %v\n", s, accepted)
	}
	return nil
}

func writeDOT(cfg config, nfa *subset.NFA[string], dfa *subset.DFA[string], stdout io.Writer) (err error) {
	w := stdout
	if cfg.dotFile != "-" {
		var f *os.File
		f, err = os.Create(cfg.dotFile)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		w = f
	}

	if cfg.nfaDot {
		err = nfa.WriteDOT(w)
	} else {
		err = dfa.WriteDOT(w)
	}
	if err == nil && cfg.dotFile != "-" {
		u.Infof("DOT written to %s", cfg.dotFile)
	}
	return err
}
