package training

import "github.com/jal9o3/OLA/pkg/board"

// TimelessActions is the fixed, canonical enumeration of every orthogonal
// move on the board regardless of occupancy: each cell times its 2-4
// neighbors, same UP/DOWN/RIGHT/LEFT order board.Actions uses for a single
// piece. Its length (254 on an 8x9 board) is the training row's dense
// action-probability width.
var TimelessActions = buildTimelessActions()

// timelessIndex maps an action to its position in TimelessActions.
var timelessIndex = buildTimelessIndex()

func buildTimelessActions() []board.Action {
	var actions []board.Action
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Columns; col++ {
			if row != board.Rows-1 { // UP
				actions = append(actions, board.Action{SrcRow: row, SrcCol: col, DstRow: row + 1, DstCol: col})
			}
			if row != 0 { // DOWN
				actions = append(actions, board.Action{SrcRow: row, SrcCol: col, DstRow: row - 1, DstCol: col})
			}
			if col != board.Columns-1 { // RIGHT
				actions = append(actions, board.Action{SrcRow: row, SrcCol: col, DstRow: row, DstCol: col + 1})
			}
			if col != 0 { // LEFT
				actions = append(actions, board.Action{SrcRow: row, SrcCol: col, DstRow: row, DstCol: col - 1})
			}
		}
	}
	return actions
}

func buildTimelessIndex() map[board.Action]int {
	idx := make(map[board.Action]int, len(TimelessActions))
	for i, a := range TimelessActions {
		idx[a] = i
	}
	return idx
}

// DenseStrategyVector maps probs (aligned to actions, a per-state action
// list) into the fixed-width timeless action space, zero-filled everywhere
// an action isn't legal in the current state.
func DenseStrategyVector(actions []board.Action, probs []float64) []float64 {
	dense := make([]float64, len(TimelessActions))
	for i, a := range actions {
		pos, ok := timelessIndex[a]
		if !ok {
			panic("training: action not found in timeless action space")
		}
		dense[pos] = probs[i]
	}
	return dense
}
