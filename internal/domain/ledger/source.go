package ledger

import (
	"math/rand"
	"sync"
	"time"
)

// AttendanceSource supplies the status for one (employee, working day)
// pair at generation time. The production deployment would back this
// with a real time-and-attendance feed; the console ships with a
// weighted random stand-in that is deterministic under a seeded rng.
type AttendanceSource interface {
	Draw(employeeID string, day time.Time) Status
}

// Weights is the categorical distribution the weighted source draws
// from. The remainder after Leave+Absent+Missing is PRESENT.
type Weights struct {
	Leave   float64
	Absent  float64
	Missing float64
}

// DefaultWeights mirrors the console's stand-in policy: 10% leave,
// 10% absent, 10% missing, 70% present.
func DefaultWeights() Weights {
	return Weights{Leave: 0.10, Absent: 0.10, Missing: 0.10}
}

// WeightedSource is safe for concurrent use: one instance is shared
// across all session builds, and *rand.Rand is not.
type WeightedSource struct {
	mu      sync.Mutex
	rng     *rand.Rand
	weights Weights
}

func NewWeightedSource(rng *rand.Rand, weights Weights) *WeightedSource {
	return &WeightedSource{rng: rng, weights: weights}
}

// Draw ignores the pair identity: every cell is an independent draw.
func (s *WeightedSource) Draw(string, time.Time) Status {
	s.mu.Lock()
	r := s.rng.Float64()
	s.mu.Unlock()
	switch {
	case r < s.weights.Leave:
		return StatusLeave
	case r < s.weights.Leave+s.weights.Absent:
		return StatusAbsent
	case r < s.weights.Leave+s.weights.Absent+s.weights.Missing:
		return StatusMissing
	}
	return StatusPresent
}
