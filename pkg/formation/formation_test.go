package formation

import (
	"math/rand"
	"testing"

	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/rank"
)

func TestSampleNeverPlacesFlagInFrontRow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		blue := Sample(rng, rank.Blue)
		if containsFlag(frontChunk(blue)) {
			t.Fatalf("BLUE formation has flag in front row: %v", blue)
		}
		red := Sample(rng, rank.Red)
		if containsFlag(frontChunk(red)) {
			t.Fatalf("RED formation has flag in front row: %v", red)
		}
	}
}

func TestSamplePreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	got := Sample(rng, rank.Blue)
	if len(got) != len(SortedFormation) {
		t.Fatalf("len(Sample()) = %d, want %d", len(got), len(SortedFormation))
	}
	counts := make(map[rank.Rank]int)
	for _, r := range got {
		counts[r]++
	}
	want := make(map[rank.Rank]int)
	for _, r := range SortedFormation {
		want[r]++
	}
	for r, n := range want {
		if counts[r] != n {
			t.Errorf("count of %v = %d, want %d", r, counts[r], n)
		}
	}
}

func TestAssembleBoardPlacesBothSides(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	blue := Sample(rng, rank.Blue)
	red := Sample(rng, rank.Red)

	b := AssembleBoard(blue, red)

	var blueCount, redCount int
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			code := b.At(row, col)
			if code == 0 {
				continue
			}
			switch rank.ColorOf(code) {
			case rank.Blue:
				blueCount++
				if row > 2 {
					t.Errorf("BLUE piece found outside rows 0..2 at (%d,%d)", row, col)
				}
			case rank.Red:
				redCount++
				if row < 5 {
					t.Errorf("RED piece found outside rows 5..7 at (%d,%d)", row, col)
				}
			}
		}
	}
	wantPieces := len(SortedFormation) - 6 // six blanks carry no piece
	if blueCount != wantPieces || redCount != wantPieces {
		t.Errorf("blueCount=%d redCount=%d, want %d each", blueCount, redCount, wantPieces)
	}
}

func TestAssembleBoardFlagNeverOnFrontRow(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	blue := Sample(rng, rank.Blue)
	red := Sample(rng, rank.Red)
	b := AssembleBoard(blue, red)

	for col := 0; col < board.Columns; col++ {
		if b.At(2, col) == int(rank.Flag) {
			t.Fatalf("BLUE flag must not be placed on row 2 (BLUE's front row)")
		}
		if b.At(5, col) == int(rank.Flag)+rank.Offset {
			t.Fatalf("RED flag must not be placed on row 5 (RED's front row)")
		}
	}
}
