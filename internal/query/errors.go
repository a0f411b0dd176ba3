package query

import (
	"errors"
	"fmt"
)

var (
	// ErrLex indicates the query text could not be tokenized.
	ErrLex = errors.New("query: lex error")

	// ErrParse indicates the token stream does not form a valid query.
	ErrParse = errors.New("query: parse error")
)

// LexError reports a tokenization failure at a byte offset in the query text.
type LexError struct {
	Position int
	Message  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Position, e.Message)
}

func (e *LexError) Unwrap() error { return ErrLex }

// ParseError reports an unexpected token at a byte offset in the query text.
type ParseError struct {
	Position int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: expected %s, found %s", e.Position, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// Position returns the byte offset carried by a lex or parse error,
// or -1 when the error carries none.
func Position(err error) int {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return lexErr.Position
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Position
	}
	return -1
}
