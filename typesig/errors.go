package typesig

import "errors"

var (
	// ErrUnsupportedTypeDescriptor is returned for a handle whose kind
	// cannot be classified, such as a bare wildcard.
	ErrUnsupportedTypeDescriptor = errors.New("unsupported type descriptor")

	// ErrTypeArityMismatch is returned when the number of actual type
	// arguments differs from the number of declared type parameters.
	ErrTypeArityMismatch = errors.New("type arity mismatch")

	// ErrNoSamFound is returned when no single abstract method can be
	// located, directly or one inheritance step away.
	ErrNoSamFound = errors.New("no single abstract method found")

	// ErrAmbiguousSam is returned when more than one abstract method is
	// eligible.
	ErrAmbiguousSam = errors.New("ambiguous single abstract method")

	errResolving = errors.New("functional interface already being resolved")
)
