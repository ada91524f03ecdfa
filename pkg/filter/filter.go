// Package filter restricts the arbiter's legal actions to a tractable
// subset for search: a Chebyshev-ball whitelist of squares around the
// previous move, combined with a per-side direction mask.
package filter

import (
	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/rank"
)

// DirectionFilter enables or disables each of the four move directions,
// relative to the side to move's own forward orientation.
type DirectionFilter struct {
	Forward, Back, Left, Right bool
}

// AllDirections is the permissive mask used by the radius filter.
func AllDirections() DirectionFilter {
	return DirectionFilter{Forward: true, Back: true, Left: true, Right: true}
}

// Filter is a pure, stateless predicate over actions: a square whitelist
// plus a direction mask, evaluated against the side currently to move.
type Filter struct {
	Whitelist  map[board.Coord]bool
	Directions DirectionFilter
	Mover      rank.Color
}

// Apply returns the sublist of b.Actions() passing the filter, preserving
// their original order and indices.
func (f *Filter) Apply(b *board.Board) []board.Action {
	var out []board.Action
	for _, a := range b.Actions() {
		if f.toInclude(a) {
			out = append(out, a)
		}
	}
	return out
}

func (f *Filter) toInclude(a board.Action) bool {
	if !f.Whitelist[a.Source()] && !f.Whitelist[a.Destination()] {
		return false
	}

	included := true
	switch f.Mover {
	case rank.Blue:
		switch {
		case a.SrcRow < a.DstRow:
			included = f.Directions.Forward
		case a.SrcRow > a.DstRow:
			included = f.Directions.Back
		case a.SrcCol > a.DstCol:
			included = f.Directions.Right
		case a.SrcCol < a.DstCol:
			included = f.Directions.Left
		}
	case rank.Red:
		switch {
		case a.SrcRow > a.DstRow:
			included = f.Directions.Forward
		case a.SrcRow < a.DstRow:
			included = f.Directions.Back
		case a.SrcCol < a.DstCol:
			included = f.Directions.Right
		case a.SrcCol > a.DstCol:
			included = f.Directions.Left
		}
	}
	return included
}

func toWhitelistSet(squares []board.Coord) map[board.Coord]bool {
	set := make(map[board.Coord]bool, len(squares))
	for _, sq := range squares {
		set[sq] = true
	}
	return set
}

// BuildRadiusFilter constructs the post-opening action filter: a Chebyshev
// ball around the previous move's attack location (on WIN/LOSS) or its
// source cell otherwise, growing the radius from 2 until at least one
// legal action survives. The starting point of 2 (radius pre-incremented
// once before the first whitelist build) is grounded on the original
// trainer's loop.
func BuildRadiusFilter(b *board.Board, previousAction board.Action, previousResult rank.Result, attackLocation board.Coord) *Filter {
	radius := 1
	for {
		radius++
		var center board.Coord
		if previousResult == rank.Win || previousResult == rank.Loss {
			center = attackLocation
		} else {
			center = previousAction.Source()
		}
		f := &Filter{
			Whitelist:  toWhitelistSet(b.SquaresWithinRadius(center, radius)),
			Directions: AllDirections(),
			Mover:      b.ToMove(),
		}
		if len(f.Apply(b)) > 0 {
			return f
		}
	}
}

// OpeningFilter is the special filter for the game's first two plies
// (turns 1 and 2, one per side): every
// square is whitelisted, but only forward moves are permitted, biasing the
// opening toward advancing pieces.
func OpeningFilter(b *board.Board) *Filter {
	whitelist := make(map[board.Coord]bool, board.Rows*board.Columns)
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			whitelist[board.Coord{Row: row, Col: col}] = true
		}
	}
	return &Filter{
		Whitelist:  whitelist,
		Directions: DirectionFilter{Forward: true},
		Mover:      b.ToMove(),
	}
}
