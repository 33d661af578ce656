package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
	"github.com/quickreview/backend/internal/simulation"
)

func newSimulateCmd() *cobra.Command {
	var (
		skills string
		cfg    = simulation.Config{Weights: practicesession.DefaultWeights()}
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate weighted review against synthetic questions",
		Long: `Runs the weighted selector against one synthetic question per --skills
entry, where each value is the chance of answering that question correctly,
and reports how often each question and accuracy tier was picked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			learners, err := parseSkills(skills)
			if err != nil {
				return err
			}

			report, err := simulation.Run(learners, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Question\tSkill\tPicks\tShare")
			for i, l := range learners {
				fmt.Fprintf(w, "%s\t%.2f\t%d\t%.1f%%\n", l.Prompt, l.Skill, report.Picks[i], report.Share(i)*100)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			total := float64(report.Trials * report.Rounds)
			fmt.Fprintf(out, "\nTier picks: low %.1f%%, mid %.1f%%, high %.1f%%\n",
				float64(report.TierPicks[practicesession.TierLow])/total*100,
				float64(report.TierPicks[practicesession.TierMid])/total*100,
				float64(report.TierPicks[practicesession.TierHigh])/total*100,
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&skills, "skills", "0.2,0.6,0.95", "comma-separated answer probabilities, one per question")
	f.IntVar(&cfg.Rounds, "rounds", 100, "reviews per trial")
	f.IntVar(&cfg.Trials, "trials", 50, "independent trials")
	f.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "trials run in parallel")
	f.Uint64Var(&cfg.Seed, "seed", 1, "random seed")
	f.Float64Var(&cfg.Weights.Low, "weight-low", cfg.Weights.Low, "low tier weight")
	f.Float64Var(&cfg.Weights.Mid, "weight-mid", cfg.Weights.Mid, "mid tier weight")
	f.Float64Var(&cfg.Weights.High, "weight-high", cfg.Weights.High, "high tier weight")
	return cmd
}

func parseSkills(s string) ([]simulation.Learner, error) {
	var learners []simulation.Learner
	for i, part := range strings.Split(s, ",") {
		skill, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || skill < 0 || skill > 1 {
			return nil, fmt.Errorf("invalid skill %q: want a number between 0 and 1", part)
		}
		learners = append(learners, simulation.Learner{Prompt: fmt.Sprintf("q%d", i+1), Skill: skill})
	}
	return learners, nil
}
