// Package errors puts the stdlib inspection helpers next to the pkg/errors
// constructors so infrastructure code needs a single import. Constructors
// record a stack trace; %+v prints it.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	Is     = stderrors.Is
	As     = stderrors.As
	Join   = stderrors.Join
	Unwrap = stderrors.Unwrap

	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)

// IsAny reports whether err matches one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}
