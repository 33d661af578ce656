// simulation/simulation.go
package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
	"github.com/quickreview/backend/internal/domain/questionbank"
	"github.com/quickreview/backend/internal/worker"
)

// Learner is a synthetic question: Skill is the probability that the
// simulated user answers it correctly.
type Learner struct {
	Prompt string
	Skill  float64
}

type Config struct {
	Rounds  int
	Trials  int
	Workers int
	Seed    uint64
	Weights practicesession.Weights
}

// Report aggregates every trial. Picks is indexed like the learners passed
// to Run.
type Report struct {
	Trials    int
	Rounds    int
	Picks     []int
	TierPicks [3]int
}

// Share returns the fraction of all picks that went to question i.
func (r Report) Share(i int) float64 {
	total := r.Trials * r.Rounds
	if total == 0 {
		return 0
	}
	return float64(r.Picks[i]) / float64(total)
}

// Run reviews the learners for cfg.Rounds rounds in weighted mode, once per
// trial. Trials run in parallel, each with its own random stream derived
// from cfg.Seed, so a given seed always yields the same report.
func Run(learners []Learner, cfg Config) (Report, error) {
	if len(learners) == 0 {
		return Report{}, errors.New("simulation: no learners")
	}
	if cfg.Rounds < 1 || cfg.Trials < 1 {
		return Report{}, fmt.Errorf("simulation: rounds and trials must be positive, got %d and %d", cfg.Rounds, cfg.Trials)
	}
	if err := cfg.Weights.Validate(); err != nil {
		return Report{}, fmt.Errorf("simulation: %w", err)
	}

	trials := make([]uint64, cfg.Trials)
	for i := range trials {
		trials[i] = uint64(i)
	}

	results := worker.Map(cfg.Workers, trials, func(trial uint64) Report {
		rng := rand.New(rand.NewPCG(cfg.Seed, trial))
		return runTrial(learners, cfg, rng)
	})

	report := Report{Trials: cfg.Trials, Rounds: cfg.Rounds, Picks: make([]int, len(learners))}
	for _, r := range results {
		for i, n := range r.Picks {
			report.Picks[i] += n
		}
		for t, n := range r.TierPicks {
			report.TierPicks[t] += n
		}
	}
	return report, nil
}

func runTrial(learners []Learner, cfg Config, rng *rand.Rand) Report {
	selector := practicesession.NewSelector(
		practicesession.WithRand(rng),
		practicesession.WithWeights(cfg.Weights),
	)

	questions := make([]questionbank.Question, len(learners))
	index := make(map[string]int, len(learners))
	for i, l := range learners {
		id := fmt.Sprintf("q%d", i)
		questions[i] = questionbank.Question{ID: id, Prompt: l.Prompt}
		index[id] = i
	}

	records := make([][]questionbank.AnswerRecord, len(learners))
	report := Report{Picks: make([]int, len(learners))}
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	candidates := make([]practicesession.Candidate, len(learners))
	for round := 0; round < cfg.Rounds; round++ {
		for i, q := range questions {
			candidates[i] = practicesession.Candidate{Question: q, Stats: questionbank.ComputeStats(records[i])}
		}

		picked, _ := selector.Pick(candidates, true)
		i := index[picked.Question.ID]
		report.Picks[i]++
		report.TierPicks[practicesession.Classify(picked.Stats)]++

		clock = clock.Add(time.Minute)
		records[i] = append(records[i], questionbank.AnswerRecord{
			QuestionID: picked.Question.ID,
			Correct:    rng.Float64() < learners[i].Skill,
			CreatedAt:  clock,
		})
	}
	return report
}
