package regimes

// RegimeSchedule is a FIFO queue of segments, remembering its initial
// form so that Repeat can restart from the same sequence. Completion is
// tracked by total step count against the original schedule's summed
// duration, independent of exactly when a segment is popped internally —
// this is what lets "after exactly sum(durations) steps, is_complete"
// hold regardless of the one-step lag between a segment filling up and
// its successor becoming visible to CurrentSegment.
type RegimeSchedule struct {
	segments              []RegimeSegment
	originalSegments      []RegimeSegment
	originalTotalDuration uint
	segmentProgress       uint
	totalProgress         uint
	repeat                bool
}

// NewSchedule builds a non-repeating schedule from the given segments.
func NewSchedule(segments []RegimeSegment) *RegimeSchedule {
	return newScheduleWithRepeat(segments, false)
}

// NewRepeatingSchedule builds a schedule that restarts from the original
// segment list whenever it would otherwise complete.
func NewRepeatingSchedule(segments []RegimeSegment) *RegimeSchedule {
	return newScheduleWithRepeat(segments, true)
}

func newScheduleWithRepeat(segments []RegimeSegment, repeat bool) *RegimeSchedule {
	original := make([]RegimeSegment, len(segments))
	copy(original, segments)
	live := make([]RegimeSegment, len(segments))
	copy(live, segments)

	var total uint
	for _, s := range original {
		total += s.Duration
	}

	return &RegimeSchedule{
		segments:              live,
		originalSegments:      original,
		originalTotalDuration: total,
		repeat:                repeat,
	}
}

// CurrentSegment returns the head of the queue, if any.
func (s *RegimeSchedule) CurrentSegment() (RegimeSegment, bool) {
	if len(s.segments) == 0 {
		return RegimeSegment{}, false
	}
	return s.segments[0], true
}

// Advance pops a segment that filled up on the PREVIOUS call (so the
// regime reported right after a call still reflects the segment that
// just completed its final step), then increments progress into
// whatever segment is now current.
func (s *RegimeSchedule) Advance() {
	if len(s.segments) > 0 && s.segmentProgress >= s.segments[0].Duration {
		s.segments = s.segments[1:]
		s.segmentProgress = 0
		if len(s.segments) == 0 && s.repeat {
			s.segments = append(s.segments, s.originalSegments...)
		}
	}

	if len(s.segments) > 0 {
		s.segmentProgress++
	}
	s.totalProgress++
}

// CurrentSegmentProgress returns the fraction of the current segment
// completed, in [0,1].
func (s *RegimeSchedule) CurrentSegmentProgress() float64 {
	cur, ok := s.CurrentSegment()
	if !ok || cur.Duration == 0 {
		return 0
	}
	return float64(s.segmentProgress) / float64(cur.Duration)
}

// TotalProgress returns the number of steps advanced since construction
// or the last Reset.
func (s *RegimeSchedule) TotalProgress() uint { return s.totalProgress }

// IsComplete reports whether exactly the original schedule's total
// duration has elapsed, for a non-repeating schedule.
func (s *RegimeSchedule) IsComplete() bool {
	if s.repeat {
		return false
	}
	return s.originalTotalDuration > 0 && s.totalProgress >= s.originalTotalDuration
}

// Reset rewinds to the original segment list and zeroes all progress
// counters.
func (s *RegimeSchedule) Reset() {
	s.segments = make([]RegimeSegment, len(s.originalSegments))
	copy(s.segments, s.originalSegments)
	s.segmentProgress = 0
	s.totalProgress = 0
}

// AddSegment appends to both the live queue and the original list (so a
// later Reset keeps it), and extends the total-duration accounting used
// by IsComplete.
func (s *RegimeSchedule) AddSegment(seg RegimeSegment) {
	s.segments = append(s.segments, seg)
	s.originalSegments = append(s.originalSegments, seg)
	s.originalTotalDuration += seg.Duration
}

// RemainingSegments returns the count of segments still queued,
// including the current one.
func (s *RegimeSchedule) RemainingSegments() int { return len(s.segments) }

// RemainingStepsInSegment returns how many more Advance calls the current
// segment can absorb before it fills up.
func (s *RegimeSchedule) RemainingStepsInSegment() uint {
	cur, ok := s.CurrentSegment()
	if !ok || s.segmentProgress >= cur.Duration {
		return 0
	}
	return cur.Duration - s.segmentProgress
}

// TotalDuration sums the duration of every segment currently queued.
func (s *RegimeSchedule) TotalDuration() uint {
	var total uint
	for _, seg := range s.segments {
		total += seg.Duration
	}
	return total
}
