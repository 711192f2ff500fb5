package parser

import "fmt"

// ParseError is the engine's only fatal failure: a malformed AWS account ID.
// It halts the parse call that found it; no partial result is returned.
type ParseError struct {
	// Line é a linha do texto fonte onde o valor apareceu (1-based).
	Line int
	// Value é o valor ofensivo, exatamente como escrito.
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid AWS account ID on line %d: %s", e.Line, e.Value)
}
