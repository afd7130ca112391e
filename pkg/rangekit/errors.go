package rangekit

import "go.llib.dev/frameless/pkg/errorkit"

const (
	// ErrExhausted is the panic value when an iterator is advanced or dereferenced past its last element.
	ErrExhausted errorkit.Error = "ErrExhausted"
	// ErrNoStage is the panic value when an iterator has no active stage,
	// which is the case for zero value iterators.
	ErrNoStage errorkit.Error = "ErrNoStage"
)
