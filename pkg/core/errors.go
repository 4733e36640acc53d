package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidKind        = errors.New("kind must be one of: raws, epochs or icas")
	ErrMissingLog         = errors.New("missing review log, was this directory cleaned?")
	ErrParameterMismatch  = errors.New("processing parameters do not match the reviewed ones")
	ErrStorageUnavailable = errors.New("review log storage unavailable")
	ErrInvalidArtifact    = errors.New("invalid artifact")
)

// InvalidKindError reports the rejected kind.
type InvalidKindError struct {
	Kind string
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("%v (got %q)", ErrInvalidKind, e.Kind)
}

func (e *InvalidKindError) Is(target error) bool {
	return target == ErrInvalidKind
}

// ParameterMismatchError names the first snapshot field that differs.
type ParameterMismatchError struct {
	Field   string
	Stored  any
	Current any
}

func (e *ParameterMismatchError) Error() string {
	return fmt.Sprintf("parameter mismatch: %s was %v and now is %v", e.Field, e.Stored, e.Current)
}

func (e *ParameterMismatchError) Is(target error) bool {
	return target == ErrParameterMismatch
}
