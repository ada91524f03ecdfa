// Package solver implements depth-limited counterfactual regret
// minimization over abstracted Game of the Generals states: recursive
// regret-matching with memoization, a heuristic cutoff at the search
// horizon, and an optional action filter for branching control.
package solver

import (
	"github.com/jal9o3/OLA/pkg/board"
	"github.com/jal9o3/OLA/pkg/eval"
	"github.com/jal9o3/OLA/pkg/filter"
	"github.com/jal9o3/OLA/pkg/rank"
)

// CFR runs depth-limited vanilla CFR and accumulates a single long-lived
// strategy profile across calls to Solve.
type CFR struct {
	profile *StrategyProfile
	memo    map[memoKey]float64
}

type memoKey struct {
	infoKey     string
	depth       int
	toMove      rank.Color
	perspective rank.Color
}

// NewCFR creates a solver with an empty strategy profile.
func NewCFR() *CFR {
	return &CFR{profile: NewStrategyProfile()}
}

// Profile returns the strategy profile accumulated so far.
func (c *CFR) Profile() *StrategyProfile {
	return c.profile
}

// Solve runs the CFR recursion for iterations rounds, once per perspective
// player each round, from root to the given depth. actionFilter may be nil
// (no pruning) or a filter already selected by the caller for this ply
// (the opening whole-board filter for turns {1,2}, the radius filter
// otherwise). The memo is keyed on perspective as well as infostate/depth/
// toMove and is reset before every top-level traversal, so a cached utility
// from one perspective's pass (or one iteration's pass) can never be
// returned in place of another's regret/strategy-sum update.
func (c *CFR) Solve(root *Abstraction, turnNumber, iterations, depth int, actionFilter *filter.Filter) *StrategyProfile {
	for i := 0; i < iterations; i++ {
		c.memo = make(map[memoKey]float64)
		c.cfr(root, rank.Blue, 1.0, 1.0, depth, turnNumber, actionFilter)
		c.memo = make(map[memoKey]float64)
		c.cfr(root, rank.Red, 1.0, 1.0, depth, turnNumber, actionFilter)
	}
	return c.profile
}

// cfr returns the utility of node from perspective's point of view.
func (c *CFR) cfr(node *Abstraction, perspective rank.Color, piBlue, piRed float64, depth, turnNumber int, actionFilter *filter.Filter) float64 {
	b := node.Board

	if b.IsTerminal() {
		utility := float64(b.Reward())
		if perspective == rank.Red {
			utility = -utility
		}
		return utility
	}
	if depth == 0 {
		utility := eval.Evaluate(b)
		if perspective == rank.Red {
			utility = -utility
		}
		return utility
	}

	toMove := b.ToMove()
	infoOf := node.InfostateOf(toMove)
	key := infoOf.Serialize()

	mk := memoKey{infoKey: key, depth: depth, toMove: toMove, perspective: perspective}
	if cached, ok := c.memo[mk]; ok {
		return cached
	}

	actions := b.Actions()
	strat := c.profile.GetOrCreate(key, len(actions))
	profile := strat.Profile

	included := make([]bool, len(actions))
	if actionFilter == nil {
		for i := range included {
			included[i] = true
		}
	} else {
		whitelisted := make(map[board.Action]bool, len(actions))
		for _, a := range actionFilter.Apply(b) {
			whitelisted[a] = true
		}
		for i, a := range actions {
			included[i] = whitelisted[a]
		}
	}

	util := make([]float64, len(actions))
	nodeUtil := 0.0

	for i, a := range actions {
		if !included[i] {
			// Filtered-out actions never recurse; Material() stands in for
			// evaluation() since it's the cheapest consistent estimate a
			// zero-recursion action can receive.
			material := b.Material()
			if perspective == rank.Red {
				material = -material
			}
			util[i] = material
			nodeUtil += profile[i] * util[i]
			continue
		}

		child, _ := node.Transition(a)
		nextPiBlue, nextPiRed := piBlue, piRed
		if toMove == rank.Blue {
			nextPiBlue *= profile[i]
		} else {
			nextPiRed *= profile[i]
		}
		util[i] = -c.cfr(child, perspective, nextPiBlue, nextPiRed, depth-1, turnNumber, actionFilter)
		nodeUtil += profile[i] * util[i]
	}

	if toMove == perspective {
		var piOpponent, piOwn float64
		if perspective == rank.Blue {
			piOpponent, piOwn = piRed, piBlue
		} else {
			piOpponent, piOwn = piBlue, piRed
		}
		for i := range actions {
			strat.RegretSum[i] += piOpponent * (util[i] - nodeUtil)
			strat.StrategySum[i] += piOwn * profile[i]
		}
		strat.regretMatch()
	}

	c.memo[mk] = nodeUtil
	return nodeUtil
}
