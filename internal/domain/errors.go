package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every rejected product attribute set,
	// including malformed records.
	ErrValidation = errors.New("invalid product attribute")

	// ErrParse matches malformed record text only.
	ErrParse = errors.New("malformed product record")

	ErrDuplicateProduct = errors.New("product already exists")
	ErrProductNotFound  = errors.New("product not found")
)

// ValidationError reports a well-formed attribute that breaks a product rule.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ParseError reports record text that cannot be turned into attributes:
// a wrong field count or a non-numeric id, quantity or price.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed record %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse || target == ErrValidation
}

func (e *ParseError) Unwrap() error { return e.Err }
