// SPDX-License-Identifier: MIT

package polynomial

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel matched by every *ParseError.
var ErrParse = errors.New("polynomial: parse error")

// ParseError reports the substring of Input that could not be read.
type ParseError struct {
	Input  string // full input as given to Parse
	Term   string // offending term or sign neighbourhood, trimmed
	Reason string // short human-readable cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("polynomial: cannot parse %q in %q: %s", e.Term, e.Input, e.Reason)
}

// Unwrap lets errors.Is(err, ErrParse) succeed.
func (e *ParseError) Unwrap() error { return ErrParse }

// errExponentRange is surfaced as the Reason of a *ParseError.
var errExponentRange = fmt.Errorf("exponent must be an integer in [0, %d]", MaxExponent)
