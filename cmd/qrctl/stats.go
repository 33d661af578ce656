package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var bankID string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show answer statistics, weakest questions first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.open(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			overview, err := a.Review.Overview(ctx, bankID)
			if err != nil {
				return err
			}
			items, err := a.Review.WeakestFirst(ctx, bankID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Questions: %d\n", overview.TotalQuestions)
			fmt.Fprintf(out, "Answers:   %d (%d correct, %d wrong)\n", overview.Total, overview.Correct, overview.Wrong)
			fmt.Fprintf(out, "Accuracy:  %.1f%%\n\n", overview.Accuracy*100)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tQuestion\tAccuracy\tAttempts\tLast Review")
			for _, item := range items {
				last := "never"
				if item.Stats.LastReview != nil {
					last = item.Stats.LastReview.Local().Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%d\t%s\n",
					item.Question.ID, truncate(item.Question.Prompt, 50), item.Stats.Accuracy*100, item.Stats.TotalCount, last)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&bankID, "bank", "", "limit to one bank ID")
	return cmd
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
