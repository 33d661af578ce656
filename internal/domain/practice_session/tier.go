package practicesession

import "github.com/quickreview/backend/internal/domain/questionbank"

// Tier groups questions by how well they are known.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh

	numTiers = 3
)

const (
	midThreshold  = 0.5
	highThreshold = 0.8
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	case TierHigh:
		return "high"
	}
	return "unknown"
}

// Classify places a question in exactly one tier. Questions that were never
// answered land in TierLow regardless of anything else.
func Classify(stats questionbank.QuestionStats) Tier {
	switch {
	case !stats.Attempted(), stats.Accuracy < midThreshold:
		return TierLow
	case stats.Accuracy < highThreshold:
		return TierMid
	default:
		return TierHigh
	}
}
