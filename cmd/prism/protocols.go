package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newProtocolsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "protocols",
		Short: "List registered protocols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys := a.catalog.Keys()
			return render(cmd.OutOrStdout(), format, keys, func(w io.Writer) error {
				for _, k := range keys {
					if _, err := fmt.Fprintln(w, k); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &format)
	return cmd
}
