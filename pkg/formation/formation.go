// Package formation samples legal starting placements for Game of the
// Generals and assembles them into the arbiter's starting board.
package formation

import (
	"math/rand"

	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/rank"
)

// SortedFormation is the 27-cell multiset filling a side's three home rows:
// six blanks, one flag, six privates, two spies, and one each of the
// remaining twelve ranks.
var SortedFormation = []rank.Rank{
	rank.Blank, rank.Blank, rank.Blank, rank.Blank, rank.Blank, rank.Blank,
	rank.Flag, rank.Private, rank.Private, rank.Private, rank.Private, rank.Private, rank.Private,
	rank.Sergeant, rank.SecondLieutenant, rank.FirstLieutenant, rank.Captain, rank.Major,
	rank.LieutenantColonel, rank.Colonel, rank.BrigadierGeneral, rank.MajorGeneral,
	rank.LieutenantGeneral, rank.General, rank.GeneralOfTheArmy, rank.Spy, rank.Spy,
}

// Sample draws a uniform random arrangement of SortedFormation, rejecting
// and resampling whenever the flag lands in the row closest to the enemy.
// The formation is returned in placement order: index 0 fills the row
// closest to the enemy, read left to right, three rows of nine, the same
// convention for both colors (RED's matrix is placed as-is; BLUE's is
// flipped end-to-end in AssembleBoard, grounded on
// original_source/core.py's _flip_matrix, but the shuffled formation list
// itself is color-agnostic).
func Sample(rng *rand.Rand, owner rank.Color) []rank.Rank {
	formation := make([]rank.Rank, len(SortedFormation))
	for {
		copy(formation, SortedFormation)
		rng.Shuffle(len(formation), func(i, j int) {
			formation[i], formation[j] = formation[j], formation[i]
		})
		if !containsFlag(frontChunk(formation)) {
			return append([]rank.Rank(nil), formation...)
		}
	}
}

func frontChunk(formation []rank.Rank) []rank.Rank {
	return formation[0:9]
}

func containsFlag(chunk []rank.Rank) bool {
	for _, r := range chunk {
		if r == rank.Flag {
			return true
		}
	}
	return false
}

// placeFormationOnMatrix fills rows [Rows-3,Rows) row-major with the
// formation, encoded for owner.
func placeFormationOnMatrix(formation []rank.Rank, owner rank.Color) [board.Rows][board.Columns]int {
	var matrix [board.Rows][board.Columns]int
	i := 0
	for row := board.Rows - 3; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			if i < len(formation) {
				matrix[row][col] = rank.Encode(formation[i], owner)
				i++
			}
		}
	}
	return matrix
}

// flipMatrix reverses a matrix top-to-bottom and left-to-right.
func flipMatrix(m [board.Rows][board.Columns]int) [board.Rows][board.Columns]int {
	var out [board.Rows][board.Columns]int
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			out[row][col] = m[board.Rows-1-row][board.Columns-1-col]
		}
	}
	return out
}

// AssembleBoard builds the starting arbiter board from each side's sampled
// formation: BLUE's placement matrix is flipped end-to-end so BLUE occupies
// rows 0..2 with row 2 (formation index 0..8) facing RED; RED's placement
// matrix is used directly, landing its own row 0..8 chunk at row 5, facing
// BLUE. The two matrices have disjoint supports and are summed cell-wise.
func AssembleBoard(blueFormation, redFormation []rank.Rank) *board.Board {
	blueMatrix := flipMatrix(placeFormationOnMatrix(blueFormation, rank.Blue))
	redMatrix := placeFormationOnMatrix(redFormation, rank.Red)

	var combined [board.Rows][board.Columns]int
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			combined[row][col] = blueMatrix[row][col] + redMatrix[row][col]
		}
	}
	return board.New(combined, rank.Blue)
}
