package solver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStrategyProfileJSONRoundTrip(t *testing.T) {
	sp := NewStrategyProfile()
	strat := sp.GetOrCreate("0 1 1 1 1 2 3 3 15 1 0", 3)
	strat.RegretSum = []float64{1.5, -0.5, 0}
	strat.StrategySum = []float64{10, 5, 2}
	strat.regretMatch()

	data, err := sp.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("ToJSON returned empty output")
	}

	restored, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	got, ok := restored.Get("0 1 1 1 1 2 3 3 15 1 0")
	if !ok {
		t.Fatal("round-tripped profile missing the infoset")
	}
	for i, v := range strat.RegretSum {
		if got.RegretSum[i] != v {
			t.Errorf("RegretSum[%d] = %v, want %v", i, got.RegretSum[i], v)
		}
	}
}

func TestSaveLoadFile(t *testing.T) {
	sp := NewStrategyProfile()
	strat := sp.GetOrCreate("infoset-a", 2)
	strat.RegretSum = []float64{1, 2}

	path := filepath.Join(t.TempDir(), "profile.json")
	if err := sp.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.NumInfoSets() != 1 {
		t.Errorf("NumInfoSets() = %d, want 1", loaded.NumInfoSets())
	}
}
