package infostate

import (
	"testing"

	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/rank"
)

func emptyGrid() [board.Rows][board.Columns]int {
	return [board.Rows][board.Columns]int{}
}

func placeFlagsOutOfReach(cells *[board.Rows][board.Columns]int) {
	cells[0][0] = int(rank.Flag)
	cells[7][8] = int(rank.Flag) + rank.Offset
}

// S1 — PRIVATE beats SPY, viewed from both sides.
func TestTransitionPrivateBeatsSpyBothViews(t *testing.T) {
	cells := emptyGrid()
	placeFlagsOutOfReach(&cells)
	cells[1][3] = int(rank.Private)
	cells[2][3] = int(rank.Spy) + rank.Offset

	b := board.New(cells, rank.Blue)
	action, err := board.ParseAction("1323")
	if err != nil {
		t.Fatal(err)
	}
	next := b.Transition(action)
	result := board.ClassifyActionResult(b, next, action)
	if result != rank.Win {
		t.Fatalf("result = %v, want WIN", result)
	}

	blueView := New(b, rank.Blue).Transition(action, result)
	p := blueView.At(2, 3)
	if !p.Identified() || p.RankLow != rank.Private {
		t.Errorf("blue view at (2,3) = %+v, want identified PRIVATE", p)
	}

	redView := New(b, rank.Red).Transition(action, result)
	p = redView.At(2, 3)
	if !p.Identified() || p.RankLow != rank.Private {
		t.Errorf("red view tightened attacker = %+v, want identified PRIVATE", p)
	}
	if redView.At(1, 3).Color != rank.Empty {
		t.Errorf("red view source should be vacated")
	}
}

// S2 — SPY beats GENERAL: the loser's infostate should tighten the
// attacker to exactly SPY.
func TestTransitionSpyBeatsGeneralTightensAttacker(t *testing.T) {
	cells := emptyGrid()
	placeFlagsOutOfReach(&cells)
	cells[3][4] = int(rank.Spy)
	cells[3][5] = int(rank.General) + rank.Offset

	b := board.New(cells, rank.Blue)
	action, err := board.ParseAction("3435")
	if err != nil {
		t.Fatal(err)
	}
	next := b.Transition(action)
	result := board.ClassifyActionResult(b, next, action)

	redView := New(b, rank.Red).Transition(action, result)
	p := redView.At(3, 5)
	if !p.Identified() || p.RankLow != rank.Spy {
		t.Errorf("red view tightened unknown attacker = %+v, want identified SPY", p)
	}
}

func TestTransitionDrawCollapsesBothRanges(t *testing.T) {
	cells := emptyGrid()
	placeFlagsOutOfReach(&cells)
	cells[4][4] = int(rank.Captain)
	cells[4][5] = int(rank.Captain) + rank.Offset

	b := board.New(cells, rank.Blue)
	action, err := board.ParseAction("4445")
	if err != nil {
		t.Fatal(err)
	}
	next := b.Transition(action)
	result := board.ClassifyActionResult(b, next, action)
	if result != rank.Draw {
		t.Fatalf("result = %v, want DRAW", result)
	}

	redView := New(b, rank.Red).Transition(action, result)
	if redView.At(4, 4).Color != rank.Empty || redView.At(4, 5).Color != rank.Empty {
		t.Errorf("both cells should be emptied on draw")
	}
}

func TestNewIdentifiesOwnPiecesOnly(t *testing.T) {
	cells := emptyGrid()
	cells[1][1] = int(rank.Sergeant)
	cells[5][5] = int(rank.Colonel) + rank.Offset

	b := board.New(cells, rank.Blue)
	blueView := New(b, rank.Blue)
	if !blueView.At(1, 1).Identified() {
		t.Errorf("owner's own piece must be identified")
	}
	enemy := blueView.At(5, 5)
	if enemy.Identified() {
		t.Errorf("enemy piece must start unidentified")
	}
	if enemy.RankLow != rank.Flag || enemy.RankHigh != rank.Spy {
		t.Errorf("enemy piece range = [%v,%v], want [FLAG,SPY]", enemy.RankLow, enemy.RankHigh)
	}
}

func TestSerializeStable(t *testing.T) {
	cells := emptyGrid()
	placeFlagsOutOfReach(&cells)
	b := board.New(cells, rank.Blue)
	is := New(b, rank.Blue)
	if is.Serialize() != is.Serialize() {
		t.Errorf("Serialize() is not stable across calls")
	}
}
