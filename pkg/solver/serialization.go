package solver

import (
	"encoding/json"
	"os"
)

// SerializableStrategy is the JSON-friendly form of a Strategy, used only
// by the optional debug dump (§4.F); the in-memory Strategy is never
// marshaled directly so its fields can keep evolving independently.
type SerializableStrategy struct {
	InfoKey     string    `json:"info_key"`
	NumActions  int       `json:"num_actions"`
	RegretSum   []float64 `json:"regret_sum"`
	StrategySum []float64 `json:"strategy_sum"`
	Profile     []float64 `json:"profile"`
}

// SerializableProfile is the JSON-friendly form of a StrategyProfile.
type SerializableProfile struct {
	Version    string                 `json:"version"`
	Strategies []SerializableStrategy `json:"strategies"`
}

// ToJSON serializes the profile for offline inspection.
func (sp *StrategyProfile) ToJSON() ([]byte, error) {
	out := SerializableProfile{
		Version:    "1.0",
		Strategies: make([]SerializableStrategy, 0, len(sp.strategies)),
	}
	for key, strat := range sp.strategies {
		out.Strategies = append(out.Strategies, SerializableStrategy{
			InfoKey:     key,
			NumActions:  strat.NumActions,
			RegretSum:   strat.RegretSum,
			StrategySum: strat.StrategySum,
			Profile:     strat.Profile,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// FromJSON reconstructs a profile previously written by ToJSON.
func FromJSON(data []byte) (*StrategyProfile, error) {
	var in SerializableProfile
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}
	sp := NewStrategyProfile()
	for _, s := range in.Strategies {
		strat := NewStrategy(s.InfoKey, s.NumActions)
		strat.RegretSum = s.RegretSum
		strat.StrategySum = s.StrategySum
		strat.Profile = s.Profile
		sp.strategies[s.InfoKey] = strat
	}
	return sp, nil
}

// SaveToFile writes the profile to filename as JSON, gated behind the
// debug-dump CLI flag: not part of the core solve contract (§4.F).
func (sp *StrategyProfile) SaveToFile(filename string) error {
	data, err := sp.ToJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile reads a profile previously written by SaveToFile.
func LoadFromFile(filename string) (*StrategyProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}
