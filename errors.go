package subset

import "errors"

var (
	// ErrMalformedAutomaton is wrapped by every problem Validate reports.
	ErrMalformedAutomaton = errors.New("malformed automaton")

	// ErrTooComplex is returned when determinizing would create more states than the work limit.
	ErrTooComplex = errors.New("automaton too complex to determinize")
)
