// Package definition loads hand written automaton definitions from YAML or from a line oriented
// text format and turns them into subset.NFA values.
package definition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	u "github.com/araddon/gou"

	"github.com/geange/subset"
)

var (
	// ErrUnknownFormat is returned by Load for files whose extension names no known format.
	ErrUnknownFormat = errors.New("unknown definition format")

	// ErrNoStart is returned for definitions without a start state.
	ErrNoStart = errors.New("definition has no start state")
)

// Definition is the serialized form of an NFA with string state labels and symbols. An empty
// Epsilon means subset.DefaultEpsilon; an empty Alphabet is taken from the transition symbols.
type Definition struct {
	States      []string                       `yaml:"states"`
	Alphabet    []string                       `yaml:"alphabet"`
	Epsilon     string                         `yaml:"epsilon"`
	Start       string                         `yaml:"start"`
	Accept      []string                       `yaml:"accept"`
	Transitions map[string]map[string][]string `yaml:"transitions"`
}

// AddTransition Add transitions from source to every dest on symbol.
func (d *Definition) AddTransition(source, symbol string, dest ...string) {
	if d.Transitions == nil {
		d.Transitions = make(map[string]map[string][]string)
	}
	if d.Transitions[source] == nil {
		d.Transitions[source] = make(map[string][]string)
	}
	d.Transitions[source][symbol] = append(d.Transitions[source][symbol], dest...)
}

// NFA Returns the automaton described by d. The definition is copied, later changes to d do
// not affect the result.
func (d *Definition) NFA() *subset.NFA[string] {
	n := &subset.NFA[string]{
		States:      slices.Clone(d.States),
		Transitions: make(map[string]map[subset.Symbol][]string, len(d.Transitions)),
		Start:       d.Start,
		Accepts:     slices.Clone(d.Accept),
		Epsilon:     subset.Symbol(d.Epsilon),
	}

	alphabet := d.Alphabet
	if len(alphabet) == 0 {
		alphabet = d.transitionSymbols()
	}
	for _, sym := range alphabet {
		n.Alphabet = append(n.Alphabet, subset.Symbol(sym))
	}

	for source, bySymbol := range d.Transitions {
		out := make(map[subset.Symbol][]string, len(bySymbol))
		for sym, dest := range bySymbol {
			out[subset.Symbol(sym)] = slices.Clone(dest)
		}
		n.Transitions[source] = out
	}
	return n
}

func (d *Definition) transitionSymbols() []string {
	var symbols []string
	for _, bySymbol := range d.Transitions {
		for sym := range bySymbol {
			if !slices.Contains(symbols, sym) {
				symbols = append(symbols, sym)
			}
		}
	}
	slices.Sort(symbols)
	return symbols
}

func (d *Definition) check() error {
	if d.Start == "" {
		return ErrNoStart
	}
	return nil
}

// Format is a serialization of a Definition.
type Format int

const (
	FormatYAML Format = iota
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatText:
		return "text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf Returns the format named by the extension of path: .yaml and .yml for YAML, .nfa, .fa
// and .txt for the text format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".nfa", ".fa", ".txt":
		return FormatText, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Parse Decodes data in the given format. The name is used in error messages.
func Parse(format Format, name string, data []byte) (*Definition, error) {
	var def *Definition
	var err error
	switch format {
	case FormatYAML:
		def, err = ParseYAML(data)
	case FormatText:
		def, err = ParseText(name, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// Load Reads and decodes the definition file at path, choosing the format from its extension.
func Load(path string) (*Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	u.Debugf("loading %s definition from %s", format, path)
	def, err := Parse(format, path, data)
	if err != nil {
		return nil, err
	}
	u.Debugf("%s: %d states, %d symbols, start %q", path, len(def.States), len(def.Alphabet), def.Start)
	return def, nil
}
