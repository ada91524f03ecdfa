package eval

import (
	"testing"

	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/rank"
)

func emptyGrid() [board.Rows][board.Columns]int {
	return [board.Rows][board.Columns]int{}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	cells := emptyGrid()
	cells[0][0] = int(rank.Flag)
	cells[7][8] = int(rank.Flag) + rank.Offset
	cells[4][4] = int(rank.General)

	b := board.New(cells, rank.Blue)
	if got := Evaluate(b); got <= 0 {
		t.Errorf("Evaluate() = %v, want > 0 with a lone BLUE GENERAL on the board", got)
	}
}

func TestEvaluateSymmetricOnMirroredMaterial(t *testing.T) {
	cells := emptyGrid()
	cells[3][4] = int(rank.Flag)
	cells[4][4] = int(rank.Flag) + rank.Offset

	b := board.New(cells, rank.Blue)
	got := Evaluate(b)
	if got < -0.01 || got > 0.01 {
		t.Errorf("Evaluate() = %v, want roughly 0 for a mirrored flags-only position", got)
	}
}

func TestEvaluateNoEnemyReturnsFinite(t *testing.T) {
	cells := emptyGrid()
	cells[0][0] = int(rank.Flag)
	b := board.New(cells, rank.Blue)
	// Missing RED flag: Evaluate must not panic or hang in the BFS search.
	_ = Evaluate(b)
}

func TestEvaluateBoundedByFractionOfRewardMagnitude(t *testing.T) {
	cells := emptyGrid()
	cells[0][0] = int(rank.Flag)
	cells[7][8] = int(rank.Flag) + rank.Offset
	i := 0
	for r := rank.Private; r <= rank.GeneralOfTheArmy; r++ {
		cells[1+i/board.Columns][i%board.Columns] = int(r)
		i++
	}

	b := board.New(cells, rank.Blue)
	got := Evaluate(b)
	if got < 0 || got > float64(board.RewardMagnitude)/2 {
		t.Errorf("Evaluate() = %v, want within a small fraction of RewardMagnitude", got)
	}
}
