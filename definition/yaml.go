package definition

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML Decodes a YAML definition. Unknown keys are rejected. Note that "&" starts an anchor
// in YAML and must be quoted when used as a symbol.
//
//	states: [q0, q1, q2]
//	alphabet: [a, b, "&"]
//	start: q0
//	accept: [q2]
//	transitions:
//	  q0: {"&": [q1]}
//	  q1: {a: [q2], b: [q2]}
func ParseYAML(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoStart
		}
		return nil, err
	}
	if err := def.check(); err != nil {
		return nil, err
	}
	return &def, nil
}
