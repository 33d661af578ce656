package questionbank

import "time"

// QuestionStats is derived from a question's answer records on every read.
// Nothing here is persisted.
type QuestionStats struct {
	CorrectCount int
	WrongCount   int
	TotalCount   int
	Accuracy     float64    // 0 when TotalCount == 0
	LastReview   *time.Time // nil when never reviewed
}

// Attempted reports whether the question has been answered at least once.
// Accuracy alone cannot tell a fresh question from one that was always missed.
func (s QuestionStats) Attempted() bool {
	return s.TotalCount > 0
}

// ComputeStats derives counts, accuracy and last review time from records.
func ComputeStats(records []AnswerRecord) QuestionStats {
	var stats QuestionStats
	for _, r := range records {
		if r.Correct {
			stats.CorrectCount++
		} else {
			stats.WrongCount++
		}
		if stats.LastReview == nil || r.CreatedAt.After(*stats.LastReview) {
			t := r.CreatedAt
			stats.LastReview = &t
		}
	}
	stats.TotalCount = len(records)
	stats.Accuracy = ratio(stats.CorrectCount, stats.TotalCount)
	return stats
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
