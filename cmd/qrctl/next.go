package main

import (
	"fmt"

	"github.com/spf13/cobra"

	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
)

func newNextCmd(opts *rootOptions) *cobra.Command {
	var (
		bankID  string
		uniform bool
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the question that would be reviewed next",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := opts.open(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			picked, err := a.Review.PickNext(ctx, bankID, !uniform)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", picked.Question.Prompt)
			fmt.Fprintf(out, "id: %s  tier: %s  attempts: %d  accuracy: %.0f%%\n",
				picked.Question.ID,
				practicesession.Classify(picked.Stats),
				picked.Stats.TotalCount,
				picked.Stats.Accuracy*100,
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&bankID, "bank", "", "bank ID (required)")
	cmd.Flags().BoolVar(&uniform, "uniform", false, "pick uniformly instead of favouring weak questions")
	_ = cmd.MarkFlagRequired("bank")
	return cmd
}
