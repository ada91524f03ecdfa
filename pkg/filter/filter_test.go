package filter

import (
	"testing"

	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/rank"
)

func emptyGrid() [board.Rows][board.Columns]int {
	return [board.Rows][board.Columns]int{}
}

func TestOpeningFilterForwardOnly(t *testing.T) {
	cells := emptyGrid()
	cells[0][0] = int(rank.Flag)
	cells[7][8] = int(rank.Flag) + rank.Offset
	cells[3][3] = int(rank.Sergeant)

	b := board.New(cells, rank.Blue)
	f := OpeningFilter(b)
	for _, a := range f.Apply(b) {
		if a.DstRow <= a.SrcRow {
			t.Errorf("opening filter admitted non-forward action %s for BLUE", a)
		}
	}
}

func TestOpeningFilterForwardOnlyRed(t *testing.T) {
	cells := emptyGrid()
	cells[0][0] = int(rank.Flag)
	cells[7][8] = int(rank.Flag) + rank.Offset
	cells[4][4] = int(rank.Sergeant) + rank.Offset

	b := board.New(cells, rank.Red)
	f := OpeningFilter(b)
	for _, a := range f.Apply(b) {
		if a.DstRow >= a.SrcRow {
			t.Errorf("opening filter admitted non-forward action %s for RED", a)
		}
	}
}

func TestBuildRadiusFilterNonEmpty(t *testing.T) {
	cells := emptyGrid()
	cells[0][0] = int(rank.Flag)
	cells[7][8] = int(rank.Flag) + rank.Offset
	cells[4][4] = int(rank.Sergeant)

	b := board.New(cells, rank.Blue)
	prev, err := board.ParseAction("3343")
	if err != nil {
		t.Fatal(err)
	}
	f := BuildRadiusFilter(b, prev, rank.Occupy, board.Coord{})
	if len(f.Apply(b)) == 0 {
		t.Errorf("BuildRadiusFilter must guarantee at least one legal action")
	}
}

func TestBuildRadiusFilterUsesAttackLocationOnWin(t *testing.T) {
	cells := emptyGrid()
	cells[0][0] = int(rank.Flag)
	cells[7][8] = int(rank.Flag) + rank.Offset
	cells[4][4] = int(rank.Sergeant)

	b := board.New(cells, rank.Blue)
	prev, err := board.ParseAction("3343")
	if err != nil {
		t.Fatal(err)
	}
	f := BuildRadiusFilter(b, prev, rank.Win, board.Coord{Row: 4, Col: 4})
	if !f.Whitelist[board.Coord{Row: 4, Col: 4}] {
		t.Errorf("whitelist should be centered on the attack location after a WIN")
	}
}
