// Package infostate implements each player's obscured view of the arbiter
// board: own pieces fully identified, enemy pieces held as a rank interval
// that only ever tightens as clashes reveal information.
package infostate

import (
	"fmt"
	"strings"

	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/rank"
)

// Piece is one cell of an infostate: a color and a closed rank interval.
// The zero value represents an empty cell (Color == rank.Empty).
type Piece struct {
	Color             rank.Color
	RankLow, RankHigh rank.Rank
}

// Identified reports whether the piece's true rank is fully known.
func (p Piece) Identified() bool {
	return p.RankLow == p.RankHigh
}

// Infostate is one player's obscured view of the board: an 8x9 grid of
// Piece plus the side to move and the owner's own anticipating bit. Enemy
// flag anticipation is not tracked here since an enemy piece's identity as
// a flag may itself be unknown.
type Infostate struct {
	cells        [board.Rows][board.Columns]Piece
	owner        rank.Color
	toMove       rank.Color
	anticipating bool
}

// New builds the starting infostate for owner from a fully known board:
// allied cells are identified outright, enemy cells collapse to [FLAG,SPY].
func New(b *board.Board, owner rank.Color) *Infostate {
	is := &Infostate{owner: owner, toMove: b.ToMove()}
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			code := b.At(row, col)
			if code == 0 {
				continue
			}
			color := rank.ColorOf(code)
			if color == owner {
				r := rank.Normalize(code)
				is.cells[row][col] = Piece{Color: color, RankLow: r, RankHigh: r}
			} else {
				is.cells[row][col] = Piece{Color: color, RankLow: rank.Flag, RankHigh: rank.Spy}
			}
		}
	}
	is.updateAnticipating()
	return is
}

// Owner returns the player this infostate is obscured for.
func (is *Infostate) Owner() rank.Color { return is.owner }

// ToMove returns the side to move.
func (is *Infostate) ToMove() rank.Color { return is.toMove }

// Anticipating reports whether owner's own flag is in its one-ply grace
// state, from owner's perspective.
func (is *Infostate) Anticipating() bool { return is.anticipating }

// At returns the obscured piece at (row, col).
func (is *Infostate) At(row, col int) Piece { return is.cells[row][col] }

func (is *Infostate) clone() *Infostate {
	next := *is
	return &next
}

// updateAnticipating mirrors board.updateAnticipating but only for owner's
// own flag, which is always fully identified so its position is certain.
func (is *Infostate) updateAnticipating() {
	is.anticipating = false
	row := 0
	if is.owner == rank.Blue {
		row = board.Rows - 1
	}
	for col := 0; col < board.Columns; col++ {
		p := is.cells[row][col]
		if p.Color == is.owner && p.RankLow == rank.Flag && p.RankHigh == rank.Flag {
			is.anticipating = is.hasNoAdjacentEnemy(row, col)
			break
		}
	}
}

func (is *Infostate) hasNoAdjacentEnemy(row, col int) bool {
	opponent := is.owner.Opponent()
	left := col > 0 && is.cells[row][col-1].Color == opponent
	right := col < board.Columns-1 && is.cells[row][col+1].Color == opponent
	return !left && !right
}

// tightenWinner narrows p, known to have just beaten a piece of rank k, to
// the ranks consistent with that outcome: ordinarily strictly above k, with
// the private/spy inversion when k is SPY (only PRIVATE beats a SPY).
func tightenWinner(p *Piece, k rank.Rank) {
	if k < rank.Spy {
		if k+1 > p.RankLow {
			p.RankLow = k + 1
		}
	} else {
		p.RankLow, p.RankHigh = rank.Private, rank.Private
	}
}

// tightenLoser narrows p, known to have just lost to a piece of rank k, to
// the ranks consistent with that outcome: ordinarily strictly below k, with
// the inversion when k is PRIVATE (only SPY loses to a PRIVATE).
func tightenLoser(p *Piece, k rank.Rank) {
	if k != rank.Private {
		p.RankHigh = k - 1
	} else {
		p.RankLow, p.RankHigh = rank.Spy, rank.Spy
	}
}

// Transition updates the infostate after action resolves to result, tightening
// whichever side of the clash is not owner's own piece, then applying the
// same positional change the arbiter applied and flipping to-move.
func (is *Infostate) Transition(action board.Action, result rank.Result) *Infostate {
	src, dst := action.Source(), action.Destination()
	next := is.clone()

	attacker := next.cells[src.Row][src.Col]
	defender := next.cells[dst.Row][dst.Col]

	if result != rank.Occupy {
		var known, unidentified *Piece
		var unidentifiedAtSrc bool
		if attacker.Color == next.owner {
			known, unidentified = &attacker, &defender
			unidentifiedAtSrc = false
		} else {
			known, unidentified = &defender, &attacker
			unidentifiedAtSrc = true
		}
		k := known.RankLow

		switch result {
		case rank.Draw:
			unidentified.RankLow, unidentified.RankHigh = k, k
		case rank.Win:
			if unidentifiedAtSrc {
				tightenWinner(unidentified, k)
			} else {
				tightenLoser(unidentified, k)
			}
		case rank.Loss:
			if unidentifiedAtSrc {
				tightenLoser(unidentified, k)
			} else {
				tightenWinner(unidentified, k)
			}
		}
	}

	switch result {
	case rank.Draw:
		next.cells[src.Row][src.Col] = Piece{}
		next.cells[dst.Row][dst.Col] = Piece{}
	case rank.Loss:
		next.cells[src.Row][src.Col] = Piece{}
		next.cells[dst.Row][dst.Col] = defender
	default: // WIN, OCCUPY
		next.cells[dst.Row][dst.Col] = attacker
		next.cells[src.Row][src.Col] = Piece{}
	}

	next.toMove = next.toMove.Opponent()
	next.updateAnticipating()
	return next
}

// Fields renders the infostate as the flat integer sequence used both by
// Serialize and by the training row's infostate columns: 8x9 cells each as
// three integers (color, rank_low, rank_high), followed by to-move and the
// owner's anticipating bit.
func (is *Infostate) Fields() []int {
	fields := make([]int, 0, board.Rows*board.Columns*3+2)
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			p := is.cells[row][col]
			fields = append(fields, int(p.Color), int(p.RankLow), int(p.RankHigh))
		}
	}
	anticipatingBit := 0
	if is.anticipating {
		anticipatingBit = 1
	}
	fields = append(fields, int(is.toMove), anticipatingBit)
	return fields
}

// Serialize renders the canonical table key: Fields space-joined. This
// exact layout is the strategy-profile infostate key.
func (is *Infostate) Serialize() string {
	fields := is.Fields()
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", f)
	}
	return b.String()
}
