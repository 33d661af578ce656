package practicesession_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
	"github.com/quickreview/backend/internal/domain/questionbank"
)

// fixedRand always returns the same draw.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func candidate(id string, total, correct int, lastReview time.Duration) practicesession.Candidate {
	stats := questionbank.QuestionStats{
		CorrectCount: correct,
		WrongCount:   total - correct,
		TotalCount:   total,
	}
	if total > 0 {
		stats.Accuracy = float64(correct) / float64(total)
		t := now.Add(-lastReview)
		stats.LastReview = &t
	}
	return practicesession.Candidate{
		Question: questionbank.Question{ID: id},
		Stats:    stats,
	}
}

func pick(t *testing.T, s *practicesession.Selector, cands []practicesession.Candidate, weak bool) string {
	t.Helper()
	got, ok := s.Pick(cands, weak)
	require.True(t, ok)
	return got.Question.ID
}

func TestPick_Empty(t *testing.T) {
	t.Parallel()

	s := practicesession.NewSelector()
	for _, weak := range []bool{true, false} {
		_, ok := s.Pick(nil, weak)
		assert.False(t, ok)
	}
}

func TestPick_Scenario(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("q1", 0, 0, 0),
		candidate("q2", 3, 1, 48*time.Hour),
		candidate("q3", 5, 5, time.Hour),
	}

	// Low and High are present: total weight 5+2 = 7.
	lowDraw := practicesession.NewSelector(practicesession.WithRand(fixedRand{f: 3.0 / 7}))
	assert.Equal(t, "q1", pick(t, lowDraw, cands, true))

	highDraw := practicesession.NewSelector(practicesession.WithRand(fixedRand{f: 6.0 / 7}))
	assert.Equal(t, "q3", pick(t, highDraw, cands, true))
}

func TestPick_SingleTierAnyDraw(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("a", 4, 3, 2*time.Hour), // 0.75 -> mid
		candidate("b", 2, 1, time.Hour),   // 0.5 -> mid
	}

	for _, f := range []float64{0, 0.25, 0.5, 0.999999, 1, 3} {
		s := practicesession.NewSelector(practicesession.WithRand(fixedRand{f: f}))
		assert.Equal(t, "a", pick(t, s, cands, true), "draw %v", f)
	}
}

func TestPick_NeverReviewedFirstWithinTier(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("yesterday", 2, 0, 24*time.Hour),
		candidate("fresh", 0, 0, 0),
	}

	for _, f := range []float64{0, 0.5, 0.99} {
		s := practicesession.NewSelector(practicesession.WithRand(fixedRand{f: f}))
		assert.Equal(t, "fresh", pick(t, s, cands, true))
	}
}

func TestPick_OldestReviewWithinTier(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("recent", 5, 5, time.Minute),
		candidate("oldest", 5, 4, 72*time.Hour),
		candidate("middle", 10, 9, 24*time.Hour),
	}

	s := practicesession.NewSelector(practicesession.WithRand(fixedRand{f: 0.5}))
	assert.Equal(t, "oldest", pick(t, s, cands, true))
}

func TestPick_TierOrderLowMidHigh(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("high", 5, 5, time.Hour),
		candidate("mid", 3, 2, time.Hour),
		candidate("low", 3, 0, time.Hour),
	}

	// Cumulative weights: low 5, mid 8, high 10.
	tests := []struct {
		f    float64
		want string
	}{
		{0, "low"},
		{0.49, "low"},
		{0.51, "mid"},
		{0.79, "mid"},
		{0.81, "high"},
		{0.99, "high"},
	}
	for _, tt := range tests {
		s := practicesession.NewSelector(practicesession.WithRand(fixedRand{f: tt.f}))
		assert.Equal(t, tt.want, pick(t, s, cands, true), "draw %v", tt.f)
	}
}

func TestPick_CustomWeights(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("low", 3, 0, time.Hour),
		candidate("high", 5, 5, time.Hour),
	}

	s := practicesession.NewSelector(
		practicesession.WithWeights(practicesession.Weights{Low: 1, Mid: 1, High: 9}),
		practicesession.WithRand(fixedRand{f: 0.2}),
	)
	assert.Equal(t, "high", pick(t, s, cands, true))
}

func TestPick_Uniform(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("a", 0, 0, 0),
		candidate("b", 5, 5, time.Hour),
		candidate("c", 1, 0, time.Hour),
	}

	for i, want := range []string{"a", "b", "c"} {
		s := practicesession.NewSelector(practicesession.WithRand(fixedRand{n: i}))
		assert.Equal(t, want, pick(t, s, cands, false))
	}
}

func TestPick_ReturnsMemberOfInput(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("a", 0, 0, 0),
		candidate("b", 4, 2, time.Hour),
		candidate("c", 5, 5, time.Hour),
	}
	ids := map[string]bool{"a": true, "b": true, "c": true}

	s := practicesession.NewSelector()
	for i := 0; i < 200; i++ {
		for _, weak := range []bool{true, false} {
			assert.True(t, ids[pick(t, s, cands, weak)])
		}
	}
}

func TestPick_DoesNotReorderInput(t *testing.T) {
	t.Parallel()

	cands := []practicesession.Candidate{
		candidate("newer", 2, 0, time.Hour),
		candidate("older", 2, 0, 5*time.Hour),
	}

	s := practicesession.NewSelector(practicesession.WithRand(fixedRand{}))
	assert.Equal(t, "older", pick(t, s, cands, true))
	assert.Equal(t, "newer", cands[0].Question.ID)
}
