package training

import "strings"

const (
	// RepetitionWindow is the sliding window length W over recent moves.
	RepetitionWindow = 6
	// RepetitionThreshold is the occurrence count R that marks a game drawn.
	RepetitionThreshold = 2
)

// repetitionDetector tracks a sliding window of the last RepetitionWindow
// moves and fires once any window-length tuple has been seen
// RepetitionThreshold times.
type repetitionDetector struct {
	history []string
	counts  map[string]int
}

func newRepetitionDetector() *repetitionDetector {
	return &repetitionDetector{counts: make(map[string]int)}
}

// Observe records move and reports whether the trailing window now repeats
// a previously seen window at least RepetitionThreshold times.
func (d *repetitionDetector) Observe(move string) bool {
	d.history = append(d.history, move)
	if len(d.history) < RepetitionWindow {
		return false
	}
	window := strings.Join(d.history[len(d.history)-RepetitionWindow:], "|")
	d.counts[window]++
	return d.counts[window] >= RepetitionThreshold
}
