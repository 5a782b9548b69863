package sim

// ScoreTracker is a monotonic, non-negative score counter.
type ScoreTracker struct {
	value int
}

// Value returns the current score.
func (s *ScoreTracker) Value() int {
	return s.value
}

// Add increases the score. Non-positive amounts are ignored.
func (s *ScoreTracker) Add(points int) {
	if points <= 0 {
		return
	}
	s.value += points
}
