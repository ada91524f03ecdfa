// Package training implements the self-play driver: per ply it builds the
// abstraction, invokes the solver, samples an action from the readout
// strategy, advances both infostates and the repetition detector, and
// emits a CSV training row.
package training

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/filter"
	"github.com/jal9o3/OLA/pkg/formation"
	"github.com/jal9o3/OLA/pkg/infostate"
	"github.com/jal9o3/OLA/pkg/rank"
	"github.com/jal9o3/OLA/pkg/solver"
)

// Game holds one training game's running state between plies.
type Game struct {
	abstraction *solver.Abstraction
	cfr         *solver.CFR
	rng         *rand.Rand
	repetition  *repetitionDetector

	turnNumber int
	iterations int
	depth      int

	previousAction board.Action
	previousResult rank.Result
	attackLocation board.Coord
}

// NewGame assembles the starting board from the two formations and readies
// a fresh solver and repetition detector. iterations and depth are passed
// through to every per-ply solve call.
func NewGame(blueFormation, redFormation []rank.Rank, seed int64, iterations, depth int) *Game {
	b := formation.AssembleBoard(blueFormation, redFormation)
	return &Game{
		abstraction: solver.NewAbstraction(b),
		cfr:         solver.NewCFR(),
		rng:         rand.New(rand.NewSource(seed)),
		repetition:  newRepetitionDetector(),
		turnNumber:  1,
		iterations:  iterations,
		depth:       depth,
	}
}

// Board exposes the current arbiter board for inspection.
func (g *Game) Board() *board.Board { return g.abstraction.Board }

// Profile exposes the game's accumulated strategy profile, for the
// optional debug JSON dump.
func (g *Game) Profile() *solver.StrategyProfile { return g.cfr.Profile() }

// StepResult reports the outcome of a single ply.
type StepResult struct {
	ChosenAction   board.Action
	Result         rank.Result
	Terminal       bool
	RepetitionDraw bool
	TrainingRow    []string
}

// Step runs one ply: build the action filter for this turn, solve, read out
// and sample a strategy, apply the action, advance the repetition detector.
// Calling Step again after Terminal is a programming error.
func (g *Game) Step() StepResult {
	b := g.abstraction.Board
	if b.IsTerminal() {
		panic("training: Step called on a terminal game")
	}

	var actionFilter *filter.Filter
	if g.turnNumber == 1 || g.turnNumber == 2 {
		actionFilter = filter.OpeningFilter(b)
	} else {
		actionFilter = filter.BuildRadiusFilter(b, g.previousAction, g.previousResult, g.attackLocation)
	}

	profile := g.cfr.Solve(g.abstraction, g.turnNumber, g.iterations, g.depth, actionFilter)

	toMove := b.ToMove()
	actions := b.Actions()
	key := g.abstraction.InfostateOf(toMove).Serialize()
	strat := profile.GetOrCreate(key, len(actions))

	probs := dropLowestK(strat.AverageStrategy(), DropLowestK)
	probs = restrictToFilter(actions, probs, actionFilter, b)

	chosenIdx := argmaxBreakingTiesRandomly(probs, g.rng)
	chosenAction := actions[chosenIdx]

	nextAbstraction, result := g.abstraction.Transition(chosenAction)

	row := buildTrainingRow(g.abstraction.InfostateOf(toMove), actions, probs)

	g.abstraction = nextAbstraction
	g.previousAction = chosenAction
	g.previousResult = result
	if result == rank.Win || result == rank.Loss {
		g.attackLocation = chosenAction.Destination()
	}
	g.turnNumber++

	repeated := g.repetition.Observe(chosenAction.String())
	terminal := nextAbstraction.Board.IsTerminal() || repeated

	return StepResult{
		ChosenAction:   chosenAction,
		Result:         result,
		Terminal:       terminal,
		RepetitionDraw: repeated && !nextAbstraction.Board.IsTerminal(),
		TrainingRow:    row,
	}
}

// restrictToFilter zeroes probability mass on actions the filter excludes
// and renormalizes; when the filter leaves no surviving mass it falls back
// to the unrestricted probs, since BuildRadiusFilter/OpeningFilter already
// guarantee at least one legal action but the readout's drop-lowest-k step
// can zero out all of that action's mass first.
func restrictToFilter(actions []board.Action, probs []float64, f *filter.Filter, b *board.Board) []float64 {
	if f == nil {
		return probs
	}
	included := f.Apply(b)
	whitelisted := make(map[board.Action]bool, len(included))
	for _, a := range included {
		whitelisted[a] = true
	}
	restricted := make([]float64, len(probs))
	sum := 0.0
	for i, a := range actions {
		if whitelisted[a] {
			restricted[i] = probs[i]
			sum += probs[i]
		}
	}
	if sum <= 0 {
		return probs
	}
	for i := range restricted {
		restricted[i] /= sum
	}
	return restricted
}

func buildTrainingRow(mover *infostate.Infostate, actions []board.Action, probs []float64) []string {
	fields := mover.Fields()
	dense := DenseStrategyVector(actions, probs)
	row := make([]string, 0, len(fields)+len(dense))
	for _, f := range fields {
		row = append(row, strconv.Itoa(f))
	}
	for _, p := range dense {
		row = append(row, strconv.FormatFloat(p, 'f', -1, 64))
	}
	return row
}

// Stats summarizes a Run invocation.
type Stats struct {
	GamesPlayed     int
	RowsWritten     int
	RepetitionDraws int
}

// Run plays games back to back, sampling a fresh pair of formations and
// seed for each, writing one CSV row per ply until targetRows rows have
// been written or ctx is canceled. Cancellation is checked only between
// games and between plies, never inside solve itself. lastGame, if non-nil,
// is set to the most recently started Game once Run returns, so a caller
// can optionally dump its accumulated strategy profile.
func Run(ctx context.Context, w io.Writer, targetRows, iterations, depth int, rng *rand.Rand, lastGame **Game) (Stats, error) {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	var stats Stats
	for stats.RowsWritten < targetRows {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		blue := formation.Sample(rng, rank.Blue)
		red := formation.Sample(rng, rank.Red)
		seed := rng.Int63()
		game := NewGame(blue, red, seed, iterations, depth)
		if lastGame != nil {
			*lastGame = game
		}
		stats.GamesPlayed++

		for stats.RowsWritten < targetRows {
			select {
			case <-ctx.Done():
				writer.Flush()
				return stats, ctx.Err()
			default:
			}

			result := game.Step()
			if result.TrainingRow != nil {
				if err := writer.Write(result.TrainingRow); err != nil {
					return stats, fmt.Errorf("training: write row: %w", err)
				}
				stats.RowsWritten++
			}
			if result.RepetitionDraw {
				stats.RepetitionDraws++
			}
			if result.Terminal {
				break
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return stats, fmt.Errorf("training: flush: %w", err)
		}
	}
	return stats, nil
}
