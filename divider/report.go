package divider

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

func fmtOhm(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

// WriteText writes the report in the plain console layout:
//
//      ----- R2 fixed at 10.0 kOhm -----
//    5.0 V: R1 = 44054 Ohm (47000 Ohm -> 5.3 V)
//
//      ----- R1 and R2 variable -----
//    5.0: R1 = 12000 Ohm, R2 = 2700 Ohm -> 5.0 V (error = +0.7%)
func WriteText(w io.Writer, rep Report) (err error) {
	_, err = fmt.Fprintf(w, "    ----- R2 fixed at %.1f kOhm -----\n", rep.FixedR2/1e3)
	if err != nil {
		return err
	}

	for _, res := range rep.Fixed {
		_, err = fmt.Fprintf(w, "%5.1f V: R1 = %.0f Ohm (%.0f Ohm -> %.1f V)\n",
			res.Target,
			res.R1Ideal,
			res.R1,
			res.Actual,
		)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "\n    ----- R1 and R2 variable -----\n")
	if err != nil {
		return err
	}

	for _, res := range rep.Sweep {
		_, err = fmt.Fprintf(w, "%5.1f: R1 = %.0f Ohm, R2 = %.0f Ohm -> %.1f V (error = %+.1f%%)\n",
			res.Target,
			res.R1,
			res.R2,
			res.Actual,
			100*res.Error,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteTable writes the report as two rendered tables.
func WriteTable(w io.Writer, rep Report) (err error) {
	_, err = fmt.Fprintf(w, "%s, %s, R2 fixed at %.1f kOhm\n", rep.Regulator.Name, rep.Series, rep.FixedR2/1e3)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)

	// Don't uppercase the header values.
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"Vout", "R1 ideal", "R1", "Actual", "Error"})
	for _, res := range rep.Fixed {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.1f V", res.Target),
			fmtOhm(res.R1Ideal),
			fmtOhm(res.R1),
			fmt.Sprintf("%.2f V", res.Actual),
			fmt.Sprintf("%+.1f%%", 100*res.Error),
		})
	}
	t.Render()

	_, err = fmt.Fprintf(w, "\n%s, %s, R1 and R2 variable\n", rep.Regulator.Name, rep.Series)
	if err != nil {
		return err
	}

	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Format.Header = text.FormatDefault

	t.AppendHeader(table.Row{"Vout", "R1", "R2", "Actual", "Error"})
	for _, res := range rep.Sweep {
		t.AppendRow(table.Row{
			fmt.Sprintf("%.1f V", res.Target),
			fmtOhm(res.R1),
			fmtOhm(res.R2),
			fmt.Sprintf("%.2f V", res.Actual),
			fmt.Sprintf("%+.1f%%", 100*res.Error),
		})
	}
	t.Render()

	return nil
}

// Writers maps format names to report writers.
var Writers = map[string]func(io.Writer, Report) error{
	"text":  WriteText,
	"table": WriteTable,
}
