package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"
)

func newClosestCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "closest VALUE...",
		Short: "Print the closest series value for each value.",
		Long: `Print the closest series value for each value.

Each line holds the requested value, the closest series value and the relative
error in percent. Values exactly halfway (in relative error) between two series
values resolve to the larger one.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := seriesTable(cmd)
			if err != nil {
				return oops.Trace(err)
			}

			values, err := parseValues(args)
			if err != nil {
				return oops.Trace(err)
			}

			for i, v := range values {
				index, err := tbl.ClosestIndex(v)
				if err != nil {
					return oops.Trace(err)
				}

				m, err := tbl.MatchAt(index, v)
				if err != nil {
					return oops.Trace(err)
				}

				_, err = fmt.Fprintf(stdout, "%s\t%s\t%+.3f%%\n", args[i], tbl.ExactAt(index), 100*m.Error)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newNeighborsCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors VALUE...",
		Short: "Print the series values below and above each value.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := seriesTable(cmd)
			if err != nil {
				return oops.Trace(err)
			}

			values, err := parseValues(args)
			if err != nil {
				return oops.Trace(err)
			}

			for i, v := range values {
				index, err := tbl.Index(v)
				if err != nil {
					return oops.Trace(err)
				}

				ns, err := tbl.Neighbors(v)
				if err != nil {
					return oops.Trace(err)
				}

				_, err = fmt.Fprintf(stdout, "%s\t%s\t%+.3f%%\t%s\t%+.3f%%\n",
					args[i],
					tbl.ExactAt(index), 100*ns.Smaller.Error,
					tbl.ExactAt(index+1), 100*ns.Larger.Error,
				)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newRangeCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "range MIN MAX",
		Short: "Print the series values covering [MIN, MAX].",
		Long: `Print the series values covering [MIN, MAX].

The output starts at the largest series value not above MIN and ends at the
first series value above the largest one not above MAX.
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := seriesTable(cmd)
			if err != nil {
				return oops.Trace(err)
			}

			bounds, err := parseValues(args)
			if err != nil {
				return oops.Trace(err)
			}

			r, err := tbl.FromTo(bounds[0], bounds[1])
			if err != nil {
				return oops.Trace(err)
			}

			newLogger(cmd, stderr).Debugf("%s: %d values", tbl.Name(), r.Len())

			for r.Next() {
				_, err = fmt.Fprintln(stdout, r.Exact())
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newSeriesCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "Print the mantissas of the selected series.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := seriesTable(cmd)
			if err != nil {
				return oops.Trace(err)
			}

			mantissas := make([]string, 0, tbl.Len())
			for i := 0; i < tbl.Len(); i++ {
				mantissas = append(mantissas, tbl.ExactAt(i).String())
			}

			_, err = fmt.Fprintf(stdout, "%s: %s\n", tbl.Name(), strings.Join(mantissas, " "))

			return err
		},
	}
}
