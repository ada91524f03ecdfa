package training

import (
	"math/rand"
	"sort"
)

// DropLowestK is the fixed prune width applied to the average strategy
// before sampling, per the training driver's readout step.
const DropLowestK = 3

// dropLowestK zeroes the k lowest-probability entries of probs and
// renormalizes the remainder, falling back to uniform if nothing survives.
func dropLowestK(probs []float64, k int) []float64 {
	out := append([]float64(nil), probs...)
	n := len(out)
	if k <= 0 || k >= n {
		normalize(out)
		return out
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return out[idx[i]] < out[idx[j]] })
	for _, i := range idx[:k] {
		out[i] = 0
	}
	normalize(out)
	return out
}

// normalize scales probs to sum to 1, falling back to uniform when every
// entry is non-positive.
func normalize(probs []float64) {
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	if sum <= 0 {
		if len(probs) == 0 {
			return
		}
		u := 1.0 / float64(len(probs))
		for i := range probs {
			probs[i] = u
		}
		return
	}
	for i := range probs {
		probs[i] /= sum
	}
}

// argmaxBreakingTiesRandomly returns the index of the largest entry in
// probs, picking uniformly at random among ties.
func argmaxBreakingTiesRandomly(probs []float64, rng *rand.Rand) int {
	best := probs[0]
	ties := []int{0}
	for i := 1; i < len(probs); i++ {
		switch {
		case probs[i] > best:
			best = probs[i]
			ties = ties[:0]
			ties = append(ties, i)
		case probs[i] == best:
			ties = append(ties, i)
		}
	}
	if len(ties) == 1 {
		return ties[0]
	}
	return ties[rng.Intn(len(ties))]
}
