package cmd

import (
	"io"
	"sort"
	"strings"

	"github.com/calebcase/oops"
	"github.com/spf13/cobra"

	"github.com/calebcase/eseries/divider"
)

func newMP2307Command(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var (
		reference float64
		voltages  []float64
		sweepMin  float64
		sweepMax  float64
		format    string
	)

	formats := make([]string, 0, len(divider.Writers))
	for name := range divider.Writers {
		formats = append(formats, name)
	}
	sort.Strings(formats)

	ccmd := &cobra.Command{
		Use:   "mp2307 [R2]",
		Short: "Compute MP2307 feedback dividers for common output voltages.",
		Long: `Compute MP2307 feedback dividers for common output voltages.

The first section holds R2 fixed (default 10 kOhm, or the R2 argument in Ohm)
and rounds R1 to the series. The second section sweeps R2 across the series
between --sweep-min and --sweep-max and keeps the pair with the smallest output
error.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := seriesTable(cmd)
			if err != nil {
				return oops.Trace(err)
			}

			write, ok := divider.Writers[format]
			if !ok {
				return Error.New("unknown format %q (want %s)", format, strings.Join(formats, ", "))
			}

			c := divider.NewCalculator(tbl)
			c.Regulator.Reference = reference
			c.Voltages = voltages
			c.SweepMin = sweepMin
			c.SweepMax = sweepMax
			c.Logger = newLogger(cmd, stderr).WithPrefix("mp2307: ")

			if len(args) == 1 {
				c.FixedR2, err = parseFloat(args[0])
				if err != nil {
					return oops.Trace(err)
				}
			}

			rep, err := c.Run()
			if err != nil {
				return oops.Trace(err)
			}

			return write(stdout, rep)
		},
	}

	flags := ccmd.Flags()
	flags.Float64Var(&reference, "reference", divider.MP2307.Reference, "Feedback reference voltage.")
	flags.Float64SliceVar(&voltages, "voltages", divider.DefaultVoltages, "Target output voltages.")
	flags.Float64Var(&sweepMin, "sweep-min", divider.DefaultSweepMin, "Lower bound of the R2 sweep in Ohm.")
	flags.Float64Var(&sweepMax, "sweep-max", divider.DefaultSweepMax, "Upper bound of the R2 sweep in Ohm.")
	flags.StringVar(&format, "format", "text", "Report format: "+strings.Join(formats, ", ")+".")

	return ccmd
}
