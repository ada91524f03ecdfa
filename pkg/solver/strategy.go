package solver

import "fmt"

// Strategy stores the regret-matching state for a single infostate key:
// cumulative regret, cumulative reach-weighted strategy for averaging, and
// the current regret-matched mixed strategy.
type Strategy struct {
	InfoKey     string
	NumActions  int
	RegretSum   []float64
	StrategySum []float64
	Profile     []float64
}

// NewStrategy creates a strategy over numActions actions, uniform initial
// profile as required by the regret-matching contract.
func NewStrategy(infoKey string, numActions int) *Strategy {
	s := &Strategy{
		InfoKey:     infoKey,
		NumActions:  numActions,
		RegretSum:   make([]float64, numActions),
		StrategySum: make([]float64, numActions),
		Profile:     make([]float64, numActions),
	}
	s.uniformProfile()
	return s
}

func (s *Strategy) uniformProfile() {
	if s.NumActions == 0 {
		return
	}
	u := 1.0 / float64(s.NumActions)
	for i := range s.Profile {
		s.Profile[i] = u
	}
}

// regretMatch recomputes Profile from RegretSum: proportional to positive
// regret, or uniform when no action has positive regret.
func (s *Strategy) regretMatch() {
	sum := 0.0
	for _, r := range s.RegretSum {
		if r > 0 {
			sum += r
		}
	}
	if sum <= 0 {
		s.uniformProfile()
		return
	}
	for i, r := range s.RegretSum {
		if r > 0 {
			s.Profile[i] = r / sum
		} else {
			s.Profile[i] = 0
		}
	}
}

// AverageStrategy returns StrategySum normalized to a distribution, the
// strategy that converges toward equilibrium play.
func (s *Strategy) AverageStrategy() []float64 {
	avg := make([]float64, s.NumActions)
	sum := 0.0
	for _, v := range s.StrategySum {
		sum += v
	}
	if sum <= 0 {
		if s.NumActions > 0 {
			u := 1.0 / float64(s.NumActions)
			for i := range avg {
				avg[i] = u
			}
		}
		return avg
	}
	for i, v := range s.StrategySum {
		avg[i] = v / sum
	}
	return avg
}

// String renders the strategy for debug logging.
func (s *Strategy) String() string {
	avg := s.AverageStrategy()
	out := fmt.Sprintf("infoset %s (%d actions)\n", s.InfoKey, s.NumActions)
	for i := range avg {
		out += fmt.Sprintf("  action %d: avg=%.3f regret=%.3f\n", i, avg[i], s.RegretSum[i])
	}
	return out
}

// StrategyProfile stores the strategy for every infostate key encountered
// during a solve.
type StrategyProfile struct {
	strategies map[string]*Strategy
}

// NewStrategyProfile creates an empty profile.
func NewStrategyProfile() *StrategyProfile {
	return &StrategyProfile{strategies: make(map[string]*Strategy)}
}

// GetOrCreate returns the strategy for infoKey, creating a fresh uniform one
// sized to numActions the first time it's seen.
func (sp *StrategyProfile) GetOrCreate(infoKey string, numActions int) *Strategy {
	if s, ok := sp.strategies[infoKey]; ok {
		return s
	}
	s := NewStrategy(infoKey, numActions)
	sp.strategies[infoKey] = s
	return s
}

// Get retrieves a strategy by infostate key.
func (sp *StrategyProfile) Get(infoKey string) (*Strategy, bool) {
	s, ok := sp.strategies[infoKey]
	return s, ok
}

// All returns every strategy in the profile.
func (sp *StrategyProfile) All() map[string]*Strategy {
	return sp.strategies
}

// NumInfoSets reports how many distinct infostate keys the profile covers.
func (sp *StrategyProfile) NumInfoSets() int {
	return len(sp.strategies)
}
