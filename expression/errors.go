// SPDX-License-Identifier: MIT

package expression

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("expression: syntax error")

	// ErrUnknownFunction reports a call to a function outside the supported set.
	ErrUnknownFunction = errors.New("expression: unknown function")

	// ErrUnboundVariable reports a free variable missing from Bind's name list.
	ErrUnboundVariable = errors.New("expression: unbound variable")
)

// SyntaxError locates a parse failure inside the source formula.
type SyntaxError struct {
	Source string
	Pos    int // byte offset into Source
	Msg    string
	Kind   error // optional finer sentinel, e.g. ErrUnknownFunction
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expression: %s at offset %d in %q", e.Msg, e.Pos, e.Source)
}

// Unwrap lets errors.Is match ErrSyntax and, when set, Kind.
func (e *SyntaxError) Unwrap() []error {
	if e.Kind != nil {
		return []error{ErrSyntax, e.Kind}
	}
	return []error{ErrSyntax}
}
