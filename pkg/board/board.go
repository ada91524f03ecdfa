// Package board implements the full-information arbiter state for Game of
// the Generals: the 8x9 grid, legal action enumeration, transition and
// clash adjudication, terminality and reward, and the heuristic evaluator's
// material subset.
package board

import (
	"fmt"

	"github.com/jal9o3/OLA/pkg/rank"
)

const (
	Rows    = 8
	Columns = 9
)

// Coord is a zero-indexed (row, column) square on the board.
type Coord struct {
	Row, Col int
}

// InBounds reports whether c lies within the board's 8x9 extent.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Columns
}

// Board is the flat 8x9 integer grid of rank codes plus the turn and
// anticipating flags. The zero value is not a valid board; use New.
type Board struct {
	cells            [Rows][Columns]int
	toMove           rank.Color
	blueAnticipating bool
	redAnticipating  bool
}

// New constructs a board from a fully populated 8x9 grid of rank codes.
func New(cells [Rows][Columns]int, toMove rank.Color) *Board {
	return &Board{cells: cells, toMove: toMove}
}

// At returns the raw rank code at (row, col).
func (b *Board) At(row, col int) int {
	return b.cells[row][col]
}

// ToMove returns the side to move.
func (b *Board) ToMove() rank.Color {
	return b.toMove
}

// BlueAnticipating reports whether BLUE's flag is in its one-ply grace
// state, awaiting RED's response.
func (b *Board) BlueAnticipating() bool {
	return b.blueAnticipating
}

// RedAnticipating reports whether RED's flag is in its one-ply grace state.
func (b *Board) RedAnticipating() bool {
	return b.redAnticipating
}

// clone returns a deep copy; transitions never mutate their receiver.
func (b *Board) clone() *Board {
	next := *b
	return &next
}

// Action is the 4-digit r1c1r2c2 encoding of a source-destination move.
type Action struct {
	SrcRow, SrcCol, DstRow, DstCol int
}

// String renders the action in its canonical r1c1r2c2 form.
func (a Action) String() string {
	return fmt.Sprintf("%d%d%d%d", a.SrcRow, a.SrcCol, a.DstRow, a.DstCol)
}

// ParseAction decodes a 4-character r1c1r2c2 string.
func ParseAction(s string) (Action, error) {
	if len(s) != 4 {
		return Action{}, fmt.Errorf("board: action %q must be 4 digits", s)
	}
	var digits [4]int
	for i := 0; i < 4; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Action{}, fmt.Errorf("board: action %q contains non-digit at %d", s, i)
		}
		digits[i] = int(c - '0')
	}
	return Action{SrcRow: digits[0], SrcCol: digits[1], DstRow: digits[2], DstCol: digits[3]}, nil
}

// Source returns the action's starting square.
func (a Action) Source() Coord { return Coord{a.SrcRow, a.SrcCol} }

// Destination returns the action's target square.
func (a Action) Destination() Coord { return Coord{a.DstRow, a.DstCol} }

// isAllied reports whether the cell value belongs to color c.
func isAllied(cell int, c rank.Color) bool {
	if cell == 0 {
		return false
	}
	return rank.ColorOf(cell) == c
}

// Actions enumerates every orthogonal move of the side-to-move into a
// non-allied cell, in the contractually stable row-major UP/DOWN/RIGHT/LEFT
// order. This order defines the index layout of the regret/strategy/profile
// vectors; it must never change.
func (b *Board) Actions() []Action {
	var moves []Action
	mover := b.toMove
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			square := b.cells[row][col]
			if !isAllied(square, mover) {
				continue
			}
			if row != Rows-1 && !isAllied(b.cells[row+1][col], mover) { // UP
				moves = append(moves, Action{row, col, row + 1, col})
			}
			if row != 0 && !isAllied(b.cells[row-1][col], mover) { // DOWN
				moves = append(moves, Action{row, col, row - 1, col})
			}
			if col != Columns-1 && !isAllied(b.cells[row][col+1], mover) { // RIGHT
				moves = append(moves, Action{row, col, row, col + 1})
			}
			if col != 0 && !isAllied(b.cells[row][col-1], mover) { // LEFT
				moves = append(moves, Action{row, col, row, col - 1})
			}
		}
	}
	return moves
}

// Transition applies action to the board, returning the resulting state.
// action must be legal (as produced by Actions); illegal actions are a
// programming error and panic rather than returning a recoverable error.
func (b *Board) Transition(action Action) *Board {
	src, dst := action.Source(), action.Destination()
	mover := b.toMove

	srcPiece := b.cells[src.Row][src.Col]
	if srcPiece == 0 || rank.ColorOf(srcPiece) != mover {
		panic(fmt.Sprintf("board: illegal action %s: source does not hold a %s piece", action, mover))
	}
	dstPiece := b.cells[dst.Row][dst.Col]
	if dstPiece != 0 && rank.ColorOf(dstPiece) == mover {
		panic(fmt.Sprintf("board: illegal action %s: destination holds an allied piece", action))
	}

	next := b.clone()
	if dstPiece == 0 {
		next.cells[dst.Row][dst.Col] = srcPiece
		next.cells[src.Row][src.Col] = 0
	} else {
		attackerRank := rank.Normalize(srcPiece)
		defenderRank := rank.Normalize(dstPiece)
		switch rank.Clash(attackerRank, defenderRank) {
		case rank.Win:
			next.cells[dst.Row][dst.Col] = srcPiece
			next.cells[src.Row][src.Col] = 0
		case rank.Loss:
			next.cells[src.Row][src.Col] = 0
		default: // Draw
			next.cells[src.Row][src.Col] = 0
			next.cells[dst.Row][dst.Col] = 0
		}
	}

	next.toMove = mover.Opponent()
	next.updateAnticipating()
	return next
}

// updateAnticipating recomputes the grace-turn bits from scratch against the
// board just produced: a side is anticipating whenever its flag currently
// sits in the opposite end-row with no enemy on either horizontal neighbor.
// The bit carries no memory of its own; IsTerminal turns it into a win only
// once to_move has cycled back to the flag's own owner, giving the defender
// exactly one intervening ply to contest it.
func (next *Board) updateAnticipating() {
	next.blueAnticipating = false
	if col, ok := findFlagInRow(&next.cells, Rows-1, rank.Blue); ok {
		next.blueAnticipating = next.hasNoAdjacentEnemy(Rows-1, col, rank.Blue)
	}
	next.redAnticipating = false
	if col, ok := findFlagInRow(&next.cells, 0, rank.Red); ok {
		next.redAnticipating = next.hasNoAdjacentEnemy(0, col, rank.Red)
	}
}

func findFlagInRow(cells *[Rows][Columns]int, row int, owner rank.Color) (int, bool) {
	for col := 0; col < Columns; col++ {
		cell := cells[row][col]
		if cell != 0 && rank.ColorOf(cell) == owner && rank.Normalize(cell) == rank.Flag {
			return col, true
		}
	}
	return 0, false
}

// hasNoAdjacentEnemy mirrors original_source/generals.py's has_none_adjacent:
// true if neither horizontal neighbor of (row, col) holds an enemy piece
// (each is empty, allied, or off-board).
func (b *Board) hasNoAdjacentEnemy(row, col int, owner rank.Color) bool {
	opponent := owner.Opponent()
	left := col > 0 && isAllied(b.cells[row][col-1], opponent)
	right := col < Columns-1 && isAllied(b.cells[row][col+1], opponent)
	return !left && !right
}

// ClassifyActionResult computes the Result of applying action by differencing
// b against next, so callers never duplicate the clash logic.
func ClassifyActionResult(b, next *Board, action Action) rank.Result {
	src, dst := action.Source(), action.Destination()
	challenger := b.cells[src.Row][src.Col]
	target := b.cells[dst.Row][dst.Col]

	srcAfter := next.cells[src.Row][src.Col]
	dstAfter := next.cells[dst.Row][dst.Col]

	switch {
	case srcAfter == 0 && dstAfter == 0 && target != 0:
		return rank.Draw
	case srcAfter == 0 && dstAfter == challenger && target == 0:
		return rank.Occupy
	case srcAfter == 0 && dstAfter == challenger && target != 0:
		return rank.Win
	case srcAfter == 0 && dstAfter == target:
		return rank.Loss
	default:
		panic(fmt.Sprintf("board: cannot classify result of action %s", action))
	}
}

// IsTerminal reports whether the game has ended: a flag is missing, or a
// flag has been anticipating since before this ply and it is now its own
// owner's turn again (the defender had its one chance to contest it and did
// not take the flag or block its neighbors).
func (b *Board) IsTerminal() bool {
	_, blueFlagExists := findFlagAnywhere(&b.cells, rank.Blue)
	_, redFlagExists := findFlagAnywhere(&b.cells, rank.Red)
	if !blueFlagExists || !redFlagExists {
		return true
	}
	if b.blueAnticipating && b.toMove == rank.Blue {
		return true
	}
	if b.redAnticipating && b.toMove == rank.Red {
		return true
	}
	return false
}

func findFlagAnywhere(cells *[Rows][Columns]int, owner rank.Color) (int, bool) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cell := cells[row][col]
			if cell != 0 && rank.ColorOf(cell) == owner && rank.Normalize(cell) == rank.Flag {
				return col, true
			}
		}
	}
	return 0, false
}

// RewardMagnitude is the terminal payoff magnitude, large enough that any
// finite heuristic evaluation or material estimate is dominated by it.
const RewardMagnitude = 1000

// Reward returns the terminal payoff signed to BLUE's perspective: +W for a
// BLUE win, -W for a RED win, 0 for a draw. Only meaningful when IsTerminal.
func (b *Board) Reward() int {
	_, blueFlagExists := findFlagAnywhere(&b.cells, rank.Blue)
	_, redFlagExists := findFlagAnywhere(&b.cells, rank.Red)

	if !blueFlagExists {
		return -RewardMagnitude
	}
	if !redFlagExists {
		return RewardMagnitude
	}
	if b.blueAnticipating && b.toMove == rank.Blue {
		return RewardMagnitude
	}
	if b.redAnticipating && b.toMove == rank.Red {
		return -RewardMagnitude
	}
	return 0
}

// chebyshevDistance is the max of the row and column deltas.
func chebyshevDistance(a, c Coord) int {
	dr := a.Row - c.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - c.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

// SquaresWithinRadius returns every on-board coordinate within Chebyshev
// distance radius of center, for use by the action filter.
func (b *Board) SquaresWithinRadius(center Coord, radius int) []Coord {
	var out []Coord
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			sq := Coord{row, col}
			if chebyshevDistance(sq, center) <= radius {
				out = append(out, sq)
			}
		}
	}
	return out
}

// totalFirepower is the sum of rank codes across a full 21-piece army
// (1+2*6+3+4+5+6+7+8+9+10+11+12+13+14+15*2), used to normalize Material.
const totalFirepower = 145

// Material is the firepower-ratio subset of the heuristic evaluator: each
// side's summed rank codes over totalFirepower, signed to BLUE. It stands in
// for evaluation() when an action is skipped by the action filter, since
// those actions never recurse and so cannot receive a full evaluation.
func (b *Board) Material() float64 {
	var blueFirepower, redFirepower float64
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			cell := b.cells[row][col]
			if cell == 0 {
				continue
			}
			switch rank.ColorOf(cell) {
			case rank.Blue:
				blueFirepower += float64(cell)
			case rank.Red:
				redFirepower += float64(rank.Normalize(cell))
			}
		}
	}
	const captureReward = 0.08
	return (blueFirepower/totalFirepower)*captureReward - (redFirepower/totalFirepower)*captureReward
}
