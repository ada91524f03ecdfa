package solver

import (
	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/infostate"
	"github.com/jal9o3/OLA/pkg/rank"
)

// Abstraction bundles the true board with both players' infostates. The
// solver's public contract only needs the board plus the side-to-move's
// own view, but both must be carried and kept in lockstep internally: every
// transition updates both infostates so each remains consistent with the
// true board (§4.C), even though only one is ever read at a given node.
type Abstraction struct {
	Board *board.Board
	Blue  *infostate.Infostate
	Red   *infostate.Infostate
}

// NewAbstraction builds the starting abstraction for a freshly assembled
// board: both infostates constructed from scratch.
func NewAbstraction(b *board.Board) *Abstraction {
	return &Abstraction{
		Board: b,
		Blue:  infostate.New(b, rank.Blue),
		Red:   infostate.New(b, rank.Red),
	}
}

// InfostateOf returns the infostate belonging to c.
func (a *Abstraction) InfostateOf(c rank.Color) *infostate.Infostate {
	if c == rank.Blue {
		return a.Blue
	}
	return a.Red
}

// Transition applies action to the board, classifies its result with
// board.ClassifyActionResult, and applies action and result to both
// infostates, returning the resulting abstraction and that result. Parent
// abstractions are never mutated.
func (a *Abstraction) Transition(action board.Action) (*Abstraction, rank.Result) {
	next := a.Board.Transition(action)
	result := board.ClassifyActionResult(a.Board, next, action)
	return &Abstraction{
		Board: next,
		Blue:  a.Blue.Transition(action, result),
		Red:   a.Red.Transition(action, result),
	}, result
}
