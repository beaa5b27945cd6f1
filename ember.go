package ember

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrNoMatch 表示在某个位置没有任何产生式匹配.
var ErrNoMatch = errors.New("no match")

// IncompleteError is returned by Parse and ParseExpression when input
// remains that no production accepts. Offset is the character index where
// parsing stopped.
type IncompleteError struct {
	Offset int
	Parsed int // number of statements accepted before Offset
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("offset %d: %v after %d statements", e.Offset, ErrNoMatch, e.Parsed)
}

func (e *IncompleteError) Unwrap() error {
	return ErrNoMatch
}

// Parse parses the whole input as a program. The returned program is
// never nil; on error it holds the statements accepted before the
// offending offset.
func Parse(input string, opts ...Option) (*Program, error) {
	p := NewParser(NewLexer(input), opts...)
	program := p.ParseProgram()
	if !p.Lexer().AtEOF() {
		return program, &IncompleteError{Offset: p.Lexer().Pos(), Parsed: len(program.Statements)}
	}
	return program, nil
}

// ParseExpression parses input as exactly one expression, allowing
// surrounding whitespace.
func ParseExpression(input string, opts ...Option) (Expr, error) {
	l := NewLexer(input)
	l.IgnoreSpaces()
	p := NewParser(l, opts...)
	x, ok := p.ParseExpr()
	if !ok {
		return nil, fmt.Errorf("parse expression: %w", &IncompleteError{Offset: l.Pos()})
	}
	l.IgnoreSpaces()
	if !l.AtEOF() {
		return x, fmt.Errorf("parse expression: %w", &IncompleteError{Offset: l.Pos()})
	}
	return x, nil
}

// Format renders node back to source text.
func Format(node Node, opts FormatOptions) []byte {
	var out bytes.Buffer
	node.Format(&out, "", opts)
	return out.Bytes()
}
