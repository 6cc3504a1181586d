package cronexpr

import (
	"errors"
	"fmt"

	"github.com/solatis/cronconv/internal/types"
)

// Internal failure reasons. They decide that parsing failed and are never
// surfaced past ParseError.
var (
	errFieldCount  = errors.New("expected 5 fields")
	errMaskPattern = errors.New("wildcard mask matches no period")
	errTermSyntax  = errors.New("term matches no grammar")
	errOutOfDomain = errors.New("value out of domain")
	errInvalidStep = errors.New("invalid step")
)

// ErrorKind classifies a ParseError. InvalidExpression is the only kind.
type ErrorKind string

const InvalidExpression ErrorKind = "invalid_cron"

// ParseError reports a rejected expression. Input holds the raw text exactly
// as the caller supplied it so it can be shown again for correction.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Input   string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %q", e.Message, e.Input)
}

// Unwrap lets errors.Is match types.ErrInvalidExpression.
func (e *ParseError) Unwrap() error {
	return types.ErrInvalidExpression
}

func (c *Converter) invalid(input string) *ParseError {
	return &ParseError{
		Kind:    InvalidExpression,
		Message: c.opts.Locale.ErrorInvalidCron,
		Input:   input,
	}
}
