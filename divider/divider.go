package divider

import (
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/eseries/eseries"
	"github.com/calebcase/eseries/logger"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("divider")

// Regulator describes the feedback stage of a regulator.
type Regulator struct {
	Name string

	// Reference is the feedback voltage in volts.
	Reference float64
}

// MP2307 is the Monolithic Power Systems MP2307 synchronous buck converter.
var MP2307 = Regulator{
	Name:      "MP2307",
	Reference: 0.925,
}

// Vout returns the output voltage for the given divider.
func (r Regulator) Vout(r1, r2 float64) float64 {
	return r.Reference * (r1 + r2) / r2
}

// R1 returns the ideal upper resistor for the target output and lower
// resistor.
func (r Regulator) R1(vout, r2 float64) float64 {
	return ((vout / r.Reference) - 1) * r2
}

// Result is a chosen divider for one target voltage.
type Result struct {
	Target float64

	// R1Ideal is the exact upper resistor before rounding to the series.
	R1Ideal float64
	R1      float64
	R2      float64

	Actual float64

	// Error is the relative output error (Actual - Target) / Target.
	Error float64
}

func (r Regulator) result(series *eseries.Table, vout, r2 float64) (res Result, err error) {
	ideal := r.R1(vout, r2)

	closest, err := series.Closest(ideal)
	if err != nil {
		return res, Error.Wrap(err)
	}

	actual := r.Vout(closest.Value, r2)

	return Result{
		Target:  vout,
		R1Ideal: ideal,
		R1:      closest.Value,
		R2:      r2,
		Actual:  actual,
		Error:   (actual - vout) / vout,
	}, nil
}

// Fixed returns the divider with R2 held at r2 and R1 rounded to the series.
func Fixed(series *eseries.Table, reg Regulator, vout, r2 float64) (res Result, err error) {
	return reg.result(series, vout, r2)
}

// Sweep tries every series value in [min, max] (as enumerated by
// Table.FromTo) for R2 and returns the combination with the smallest output
// error. The first of equally good combinations wins.
func Sweep(series *eseries.Table, reg Regulator, vout, min, max float64, log logger.Logger) (best Result, err error) {
	if log == nil {
		log = logger.NopLogger
	}

	r, err := series.FromTo(min, max)
	if err != nil {
		return best, Error.Wrap(err)
	}

	found := false
	for r.Next() {
		res, err := reg.result(series, vout, r.Value())
		if err != nil {
			return best, err
		}

		log.Debugf("%.1f V: R1 = %s Ohm, R2 = %s Ohm -> %.4f V", vout, fmtOhm(res.R1), r.Exact(), res.Actual)

		if !found || math.Abs(res.Error) < math.Abs(best.Error) {
			best = res
			found = true
		}
	}

	if !found {
		return best, Error.New("no candidates in [%v, %v]", min, max)
	}

	return best, nil
}
