package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/prism/partition"
)

func newPartitionCmd(a *app) *cobra.Command {
	var (
		format  string
		records bool
	)
	cmd := &cobra.Command{
		Use:   "partition <protocol> <train|dev-enroll|dev-test|eval-enroll|eval-test>",
		Short: "Print the identifiers of one partition",
		Example: `  prism partition SRE10_c05_f eval-enroll
  prism partition Debug train --records -o yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := partition.ParseName(args[1])
			if err != nil {
				return err
			}
			p, err := a.protocol(args[0])
			if err != nil {
				return err
			}
			res, err := p.Iterate(name)
			if err != nil {
				return err
			}
			items := make([]partition.Item, 0, res.ExpectedCount)
			ids := make([]string, 0, res.ExpectedCount)
			for item := range res.Items {
				items = append(items, item)
				ids = append(ids, item.ID)
			}

			var v any = ids
			if records {
				v = items
			}
			return render(cmd.OutOrStdout(), format, v, func(w io.Writer) error {
				for _, item := range items {
					line := item.ID
					if records {
						r := item.Record
						line = fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%s", item.ID, r.Database, r.Target, r.URI, r.Channel, r.Gender)
					}
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &format)
	cmd.Flags().BoolVar(&records, "records", false, "print full metadata records")
	return cmd
}
