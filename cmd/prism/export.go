package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/prism/errors"
	"github.com/kbukum/prism/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "export <protocol> --db <file>",
		Short: "Write a protocol snapshot to a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return errors.InvalidInput("db", "--db is required")
			}
			p, err := a.protocol(args[0])
			if err != nil {
				return err
			}
			sum, err := export.WriteFile(cmd.Context(), dbPath, p)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, sum, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "run %s: %s, %d records, %d partition rows, %d trials -> %s\n",
					sum.RunID, sum.Protocol, sum.Records, sum.Partitions, sum.Trials, dbPath)
				return err
			})
		},
	}
	addOutputFlag(cmd, &format)
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file")
	return cmd
}
