package tile

import "errors"

// Sentinel errors returned by registry and resolver operations. Callers
// match them with errors.Is; every failure is recoverable and no operation
// leaves the registry partially mutated.
var (
	// ErrUnresolvedReference is returned when a template references a name
	// that was never defined in the registry.
	ErrUnresolvedReference = errors.New("unresolved tile reference")

	// ErrResolutionCycle is returned when expansion does not terminate
	// within the pass bound, indicating self- or mutually-referential
	// definitions.
	ErrResolutionCycle = errors.New("tile resolution did not terminate")

	// ErrFormat is returned by DefineFormatted when the arguments do not
	// match the format pattern's verbs.
	ErrFormat = errors.New("format pattern mismatch")
)
