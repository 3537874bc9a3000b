package tsschema

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrUnsupportedType   = errors.New("unsupported type")
	ErrInvalidAnnotation = errors.New("invalid annotation")
)

// ParseError identifies the template that failed to parse or convert.
type ParseError struct {
	Template string
	Pos      lexer.Position
	Err      error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("schema %s: %d:%d: %v", e.Template, e.Pos.Line, e.Pos.Column, e.Err)
	}
	return fmt.Sprintf("schema %s: %v", e.Template, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
