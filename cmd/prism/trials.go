package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/kbukum/prism/trials"
)

type trialsSummary struct {
	Protocol string         `json:"protocol" yaml:"protocol"`
	Enroll   int            `json:"enroll" yaml:"enroll"`
	Test     int            `json:"test" yaml:"test"`
	Counts   trials.Counts  `json:"counts" yaml:"counts"`
	Trials   []trials.Trial `json:"trials,omitempty" yaml:"trials,omitempty"`
	Dense    [][]float64    `json:"dense,omitempty" yaml:"dense,omitempty"`
}

// denseRows copies a gonum matrix into row slices. A nil matrix yields nil.
func denseRows(d *mat.Dense) [][]float64 {
	if d == nil {
		return nil
	}
	r, _ := d.Dims()
	rows := make([][]float64, r)
	for i := range r {
		rows[i] = mat.Row(nil, i, d)
	}
	return rows
}

func newTrialsCmd(a *app) *cobra.Command {
	var (
		format string
		list   bool
		dense  bool
	)
	cmd := &cobra.Command{
		Use:   "trials <protocol>",
		Short: "Print the trial matrix shape and outcome counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.protocol(args[0])
			if err != nil {
				return err
			}
			m := p.Trials()
			rows, cols := m.Dims()
			s := trialsSummary{Protocol: p.Name(), Enroll: rows, Test: cols, Counts: m.Counts()}
			if list {
				for tr := range m.Trials() {
					s.Trials = append(s.Trials, tr)
				}
			}
			if dense {
				s.Dense = denseRows(m.Dense())
			}
			return render(cmd.OutOrStdout(), format, s, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "%s: %d enroll x %d test, %d target, %d nontarget, %d untested\n",
					s.Protocol, s.Enroll, s.Test, s.Counts.Target, s.Counts.NonTarget, s.Counts.Untested); err != nil {
					return err
				}
				for _, tr := range s.Trials {
					if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", tr.Enroll, tr.Test, tr.Outcome); err != nil {
						return err
					}
				}
				for _, row := range s.Dense {
					cells := make([]string, len(row))
					for j, v := range row {
						cells[j] = strconv.FormatFloat(v, 'f', -1, 64)
					}
					if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	addOutputFlag(cmd, &format)
	cmd.Flags().BoolVar(&list, "list", false, "also print every tested pair")
	cmd.Flags().BoolVar(&dense, "dense", false, "also print the outcome matrix, one enrollment per row")
	return cmd
}
