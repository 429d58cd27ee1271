package solver

import "errors"

// Sentinel errors returned by Solve and the concrete Solver
// implementations (spec section 4.6, section 7 "error kinds").
var (
	// ErrIncompatiblePuzzleSize is returned when a board's shape matches
	// neither a solver's own shape nor its transpose.
	ErrIncompatiblePuzzleSize = errors.New("solver: incompatible puzzle size")

	// ErrUnsolvable is returned when a board fails the solvability check
	// (spec section 4.7) before any search is attempted.
	ErrUnsolvable = errors.New("solver: board is not solvable")

	// ErrNoSolutionFound is returned when Options.DepthCap is set and no
	// solution within that bound exists.
	ErrNoSolutionFound = errors.New("solver: no solution found within depth cap")
)
