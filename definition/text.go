package definition

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type textFile struct {
	Lines []*textLine `parser:"( @@ | EOL )*"`
}

type textLine struct {
	Pos lexer.Position

	States     []string        `parser:"  'states' @Word+"`
	Alphabet   []string        `parser:"| 'alphabet' @Word+"`
	Epsilon    *string         `parser:"| 'epsilon' @Word"`
	Start      *string         `parser:"| 'start' @Word"`
	Accept     []string        `parser:"| 'accept' @Word+"`
	Transition *textTransition `parser:"| @@"`
}

type textTransition struct {
	From   string   `parser:"@Word"`
	Symbol string   `parser:"@Word Arrow"`
	To     []string `parser:"@Word ( Comma @Word )*"`
}

var (
	textLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "EOL", Pattern: `[\r\n]+`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Arrow", Pattern: `->`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Word", Pattern: `[^\s,#]+`},
	})

	textParser = participle.MustBuild[textFile](
		participle.Lexer(textLexer),
		participle.Elide("Comment", "Whitespace"),
	)
)

// ParseText Decodes the line oriented text format. One statement per line, "#" starts a comment.
// The words states, alphabet, epsilon, start and accept are keywords and cannot name states.
//
//	states q0 q1 q2
//	alphabet a b &
//	start q0
//	accept q2
//	q0 & -> q1
//	q1 a -> q2
//	q1 b -> q2, q0
func ParseText(name string, data []byte) (*Definition, error) {
	file, err := textParser.ParseBytes(name, data)
	if err != nil {
		return nil, err
	}

	def := &Definition{}
	seenStart := false
	for _, line := range file.Lines {
		switch {
		case line.States != nil:
			def.States = append(def.States, line.States...)
		case line.Alphabet != nil:
			def.Alphabet = append(def.Alphabet, line.Alphabet...)
		case line.Epsilon != nil:
			if def.Epsilon != "" {
				return nil, fmt.Errorf("%s: duplicate epsilon statement", line.Pos)
			}
			def.Epsilon = *line.Epsilon
		case line.Start != nil:
			if seenStart {
				return nil, fmt.Errorf("%s: duplicate start statement", line.Pos)
			}
			seenStart = true
			def.Start = *line.Start
		case line.Accept != nil:
			def.Accept = append(def.Accept, line.Accept...)
		case line.Transition != nil:
			tr := line.Transition
			def.AddTransition(tr.From, tr.Symbol, tr.To...)
		}
	}

	if err := def.check(); err != nil {
		return nil, err
	}
	return def, nil
}
