package divider

import (
	"github.com/calebcase/eseries/eseries"
	"github.com/calebcase/eseries/logger"
)

// DefaultVoltages are the output voltages in the standard report.
var DefaultVoltages = []float64{1, 1.8, 2, 3, 3.3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// Defaults for the standard report.
const (
	DefaultFixedR2  = 10e3
	DefaultSweepMin = 1e3
	DefaultSweepMax = 10e3
)

// Calculator produces a report for a list of target voltages.
type Calculator struct {
	Series    *eseries.Table
	Regulator Regulator
	Voltages  []float64

	// FixedR2 is the lower resistor of the fixed section.
	FixedR2 float64

	// SweepMin and SweepMax bound the R2 sweep of the variable section.
	SweepMin float64
	SweepMax float64

	Logger logger.Logger
}

// NewCalculator returns an MP2307 calculator with the standard settings.
func NewCalculator(series *eseries.Table) *Calculator {
	return &Calculator{
		Series:    series,
		Regulator: MP2307,
		Voltages:  append([]float64(nil), DefaultVoltages...),
		FixedR2:   DefaultFixedR2,
		SweepMin:  DefaultSweepMin,
		SweepMax:  DefaultSweepMax,
		Logger:    logger.NopLogger,
	}
}

// Report holds both sections of a calculation.
type Report struct {
	Regulator Regulator
	Series    string
	FixedR2   float64

	Fixed []Result
	Sweep []Result
}

// Run computes the fixed and the swept section for every voltage.
func (c *Calculator) Run() (rep Report, err error) {
	if c.Series == nil {
		return rep, Error.New("no series")
	}

	if len(c.Voltages) == 0 {
		return rep, Error.New("no voltages")
	}

	log := c.Logger
	if log == nil {
		log = logger.NopLogger
	}

	rep = Report{
		Regulator: c.Regulator,
		Series:    c.Series.Name(),
		FixedR2:   c.FixedR2,
	}

	for _, vout := range c.Voltages {
		res, err := Fixed(c.Series, c.Regulator, vout, c.FixedR2)
		if err != nil {
			return rep, err
		}

		rep.Fixed = append(rep.Fixed, res)
	}

	log.Infof("%s: sweeping R2 over [%v, %v] in %s", c.Regulator.Name, c.SweepMin, c.SweepMax, c.Series.Name())

	for _, vout := range c.Voltages {
		res, err := Sweep(c.Series, c.Regulator, vout, c.SweepMin, c.SweepMax, log)
		if err != nil {
			return rep, err
		}

		rep.Sweep = append(rep.Sweep, res)
	}

	return rep, nil
}
