package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE...",
		Short: "Import questions from JSON upload files",
		Long: `Each file has the upload format:

  {"bank_name": "Go", "questions": [{"question": "...", "answer": "..."}]}

Files are parsed in parallel and imported in the order given. A bad file is
reported and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := a.Importer.ImportFiles(cmd.Context(), args)
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions -> %s (%s)\n",
					r.Path, r.Result.Count, r.Result.BankName, r.Result.BankID)
			}
			if err != nil {
				return errors.New("some files failed to import")
			}
			return nil
		},
	}
}
