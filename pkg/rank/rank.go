// Package rank defines the piece rank table and clash adjudication for
// Game of the Generals, along with the board colors each rank belongs to.
package rank

import "fmt"

// Rank identifies a piece's power level, ascending in strength except for
// the spy/private inversion handled separately in Clash.
type Rank int

const (
	Blank Rank = iota
	Flag
	Private
	Sergeant
	SecondLieutenant
	FirstLieutenant
	Captain
	Major
	LieutenantColonel
	Colonel
	BrigadierGeneral
	MajorGeneral
	LieutenantGeneral
	General
	GeneralOfTheArmy
	Spy
)

// Offset is the value added to a rank code to represent a RED piece on the
// flat arbiter board, so the board can stay a plain 8x9 integer grid.
const Offset = int(Spy)

// String renders a rank using the same short labels the rest of the corpus
// uses for logging and CLI output.
func (r Rank) String() string {
	switch r {
	case Blank:
		return "-"
	case Flag:
		return "FLAG"
	case Private:
		return "PVT"
	case Sergeant:
		return "SGT"
	case SecondLieutenant:
		return "2LT"
	case FirstLieutenant:
		return "1LT"
	case Captain:
		return "CPT"
	case Major:
		return "MAJ"
	case LieutenantColonel:
		return "LTC"
	case Colonel:
		return "COL"
	case BrigadierGeneral:
		return "BGEN"
	case MajorGeneral:
		return "MGEN"
	case LieutenantGeneral:
		return "LGEN"
	case General:
		return "GEN"
	case GeneralOfTheArmy:
		return "GOA"
	case Spy:
		return "SPY"
	default:
		return fmt.Sprintf("RANK(%d)", int(r))
	}
}

// Color is the owning side of a nonzero board cell.
type Color int

const (
	Empty Color = iota
	Blue
	Red
)

// String renders the color for logging.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Opponent returns the other side. Calling it on Empty is a programming
// error and panics, mirroring the arbiter's fail-fast stance on malformed
// input (see §7 of the design notes: illegal states are not recoverable).
func (c Color) Opponent() Color {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		panic("rank: Opponent called on Empty color")
	}
}

// ColorOf reports the owner of a raw board cell value: 0 is empty, 1-15 is
// BLUE, 16-30 is RED.
func ColorOf(code int) Color {
	switch {
	case code == 0:
		return Empty
	case code >= int(Flag) && code <= int(Spy):
		return Blue
	case code >= int(Flag)+Offset && code <= int(Spy)+Offset:
		return Red
	default:
		panic(fmt.Sprintf("rank: code %d out of range", code))
	}
}

// Normalize strips the RED offset from a raw board cell value, returning the
// true rank regardless of owning color.
func Normalize(code int) Rank {
	if code == 0 {
		return Blank
	}
	if code > Offset {
		return Rank(code - Offset)
	}
	return Rank(code)
}

// Encode reapplies the RED offset (or leaves a BLUE/empty code untouched).
func Encode(r Rank, c Color) int {
	if r == Blank {
		return 0
	}
	if c == Red {
		return int(r) + Offset
	}
	return int(r)
}

// Result is the outcome of one piece challenging another.
type Result int

const (
	Draw Result = iota
	Win
	Occupy
	Loss
)

// String renders the result for logging and training-row dumps.
func (r Result) String() string {
	switch r {
	case Draw:
		return "DRAW"
	case Win:
		return "WIN"
	case Occupy:
		return "OCCUPY"
	case Loss:
		return "LOSS"
	default:
		return "UNKNOWN"
	}
}

// Clash adjudicates an attacker challenging a defender, both already
// normalized to 1-15. It implements the private/spy inversion and the
// flag-vs-flag rule before falling back to plain rank comparison.
func Clash(attacker, defender Rank) Result {
	switch {
	case attacker == Private && defender == Spy:
		return Win
	case attacker == Spy && defender == Private:
		return Loss
	case attacker == Flag && defender == Flag:
		return Win
	case attacker > defender:
		return Win
	case attacker < defender:
		return Loss
	default:
		return Draw
	}
}
