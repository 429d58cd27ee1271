package puzzle

import "fmt"

// InvalidBoardError is returned by NewBoard when the input tile array does
// not describe a well-formed board: wrong length, a tile value out of
// range, a duplicate value, or a missing gap.
type InvalidBoardError struct {
	Reason string
}

func (e *InvalidBoardError) Error() string {
	return fmt.Sprintf("puzzle: invalid board: %s", e.Reason)
}
