package practicesession

import "github.com/quickreview/backend/internal/domain/questionbank"

// Candidate is a question eligible for review together with its stats.
type Candidate struct {
	Question questionbank.Question
	Stats    questionbank.QuestionStats
}

// Selector picks the next question to review. It holds no state between
// calls: everything it knows comes from the candidates' stats.
type Selector struct {
	rng     Rand
	weights Weights
}

type Option func(*Selector)

// WithRand replaces the process-wide random source.
func WithRand(r Rand) Option {
	return func(s *Selector) { s.rng = r }
}

func WithWeights(w Weights) Option {
	return func(s *Selector) { s.weights = w }
}

func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		rng:     globalRand{},
		weights: DefaultWeights(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick returns the next question to present, or false when there are no
// candidates.
//
// Without prioritizeWeak the pick is uniform. With it, candidates are split
// into accuracy tiers, a non-empty tier is drawn by weight, and the least
// recently reviewed question of that tier wins (never-reviewed first).
func (s *Selector) Pick(candidates []Candidate, prioritizeWeak bool) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	if !prioritizeWeak {
		return candidates[s.rng.IntN(len(candidates))], true
	}

	var tiers [numTiers][]Candidate
	for _, c := range candidates {
		t := Classify(c.Stats)
		tiers[t] = append(tiers[t], c)
	}

	return leastRecentlyReviewed(s.drawTier(tiers)), true
}

// drawTier picks one of the non-empty tiers, in Low, Mid, High order.
func (s *Selector) drawTier(tiers [numTiers][]Candidate) []Candidate {
	present := make([][]Candidate, 0, numTiers)
	weights := make([]float64, 0, numTiers)
	for t := TierLow; t <= TierHigh; t++ {
		if len(tiers[t]) == 0 {
			continue
		}
		present = append(present, tiers[t])
		weights = append(weights, s.weights.of(t))
	}
	return present[newDistribution(weights).sample(s.rng)]
}

// leastRecentlyReviewed returns the first never-reviewed candidate, or the one
// with the oldest last review. Ties keep input order.
func leastRecentlyReviewed(tier []Candidate) Candidate {
	best := tier[0]
	for _, c := range tier[1:] {
		if reviewedBefore(c.Stats, best.Stats) {
			best = c
		}
	}
	return best
}

func reviewedBefore(a, b questionbank.QuestionStats) bool {
	switch {
	case a.LastReview == nil:
		return b.LastReview != nil
	case b.LastReview == nil:
		return false
	default:
		return a.LastReview.Before(*b.LastReview)
	}
}
