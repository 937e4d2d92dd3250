package regimes

// RegimeTracker records a bounded history of detected RegimeStates and
// derives distribution/transition analytics over it. Supplemented from
// the Rust original's regime tracker; wired as the backing store for the
// orchestrator's regime_analytics() surface.
type RegimeTracker struct {
	history     []RegimeState
	maxHistory  int
	transitions int
	lastRegime  MarketRegime
	hasLast     bool
}

// NewTracker builds a tracker bounded to maxHistory entries.
func NewTracker(maxHistory int) *RegimeTracker {
	return &RegimeTracker{maxHistory: maxHistory}
}

// Record appends a state, evicting the oldest entry once at capacity,
// and counts strict regime changes.
func (t *RegimeTracker) Record(state RegimeState) {
	if t.hasLast && !t.lastRegime.Equal(state.CurrentRegime) {
		t.transitions++
	}
	t.lastRegime = state.CurrentRegime
	t.hasLast = true

	t.history = append(t.history, state)
	if len(t.history) > t.maxHistory {
		t.history = t.history[1:]
	}
}

// Current returns the most recently recorded state.
func (t *RegimeTracker) Current() (RegimeState, bool) {
	if len(t.history) == 0 {
		return RegimeState{}, false
	}
	return t.history[len(t.history)-1], true
}

// Transitions returns the count of strict regime changes observed.
func (t *RegimeTracker) Transitions() int { return t.transitions }

// AverageDuration returns the mean RegimeState.Duration across history.
func (t *RegimeTracker) AverageDuration() float64 {
	if len(t.history) == 0 {
		return 0
	}
	var sum uint
	for _, s := range t.history {
		sum += s.Duration
	}
	return float64(sum) / float64(len(t.history))
}

// RegimeDistribution returns the fraction of history entries in each
// MarketRegimeKind.
func (t *RegimeTracker) RegimeDistribution() map[MarketRegimeKind]float64 {
	dist := map[MarketRegimeKind]float64{}
	if len(t.history) == 0 {
		return dist
	}
	counts := map[MarketRegimeKind]int{}
	for _, s := range t.history {
		counts[s.CurrentRegime.Kind]++
	}
	for k, c := range counts {
		dist[k] = float64(c) / float64(len(t.history))
	}
	return dist
}

// HistoryLen returns the number of entries currently buffered — never
// exceeds maxHistory.
func (t *RegimeTracker) HistoryLen() int { return len(t.history) }
