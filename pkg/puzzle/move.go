package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a pair (direction, amount) with amount >= 1. A single-tile move
// has amount 1; in Mtm, one Move is one metric unit regardless of amount,
// while in Stm the metric length of a Move is its amount.
type Move struct {
	Direction Direction
	Amount    int
}

// String renders the canonical short form: a direction letter optionally
// followed by a decimal amount, omitted when the amount is 1 (e.g. "U",
// "D3").
func (m Move) String() string {
	if m.Amount == 1 {
		return m.Direction.String()
	}
	return fmt.Sprintf("%v%d", m.Direction, m.Amount)
}

// ParseMove parses the canonical short form produced by Move.String.
func ParseMove(s string) (Move, error) {
	if len(s) == 0 {
		return Move{}, fmt.Errorf("puzzle: empty move")
	}
	d, ok := ParseDirection(s[0])
	if !ok {
		return Move{}, fmt.Errorf("puzzle: invalid move %q: %w", s, errInvalidDirection)
	}
	if len(s) == 1 {
		return Move{Direction: d, Amount: 1}, nil
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 {
		return Move{}, fmt.Errorf("puzzle: invalid move amount %q", s)
	}
	return Move{Direction: d, Amount: n}, nil
}

// Moves is an ordered sequence of Move, as returned by a solver.
type Moves []Move

func (ms Moves) String() string {
	parts := make([]string, len(ms))
	for i, m := range ms {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// ParseMoves parses a space-separated sequence produced by Moves.String.
func ParseMoves(s string) (Moves, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Fields(s)
	out := make(Moves, len(fields))
	for i, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// Len returns the total metric length of the sequence under the given
// metric: the sum of amounts for Stm, or simply the move count for Mtm.
func (ms Moves) Len(metric Metric) int {
	if metric == Mtm {
		return len(ms)
	}
	total := 0
	for _, m := range ms {
		total += m.Amount
	}
	return total
}

// Metric distinguishes the two move-counting conventions used throughout
// the solver: Stm counts every single-tile slide, Mtm counts a maximal
// colinear run of slides as one unit.
type Metric uint8

const (
	// Stm is the single-tile-move metric.
	Stm Metric = iota
	// Mtm is the multi-tile-move metric.
	Mtm
)

func (m Metric) String() string {
	if m == Mtm {
		return "Mtm"
	}
	return "Stm"
}

// CompressDirections folds a flat sequence of single-tile directions (as
// emitted by a DFS move stack) into Moves, coalescing maximal runs of the
// same direction into one Move with the run length as amount. Coalescing
// leaves the Stm length (the sum of amounts) unchanged. The solvers in
// pkg/solver build their Moves directly and do not call it.
func CompressDirections(dirs []Direction) Moves {
	var out Moves
	for _, d := range dirs {
		if n := len(out); n > 0 && out[n-1].Direction == d {
			out[n-1].Amount++
			continue
		}
		out = append(out, Move{Direction: d, Amount: 1})
	}
	return out
}
