package eseries

import (
	"math"
	"sort"

	"github.com/calebcase/eseries/decimal"
)

// Decomposed is a positive value split into mantissa and exponent:
//
//  value = Mantissa * 10^Exponent, 1 <= Mantissa < 10
type Decomposed struct {
	Mantissa float64
	Exponent int
}

// Match is a series value and its signed relative error versus a target.
type Match struct {
	Value float64
	Error float64
}

// Matches are the series values on either side of a target.
type Matches struct {
	Smaller Match
	Larger  Match
}

// Table is a preferred number series. Tables are immutable and safe for
// concurrent use.
type Table struct {
	name      string
	mantissas []float64
	exact     []decimal.Decimal
}

// New returns a table for the given mantissas. Every value must be in
// [1, 10). The values are sorted; duplicates are kept.
func New(values []float64) (t *Table, err error) {
	return newTable("custom", values)
}

func newTable(name string, values []float64) (t *Table, err error) {
	if len(values) == 0 {
		return nil, InvalidInput.New("no mantissas")
	}

	for _, v := range values {
		if math.IsNaN(v) || v < 1 || v >= 10 {
			return nil, InvalidInput.New("mantissa outside [1, 10): %v", v)
		}
	}

	mantissas := append([]float64(nil), values...)
	sort.Float64s(mantissas)

	exact := make([]decimal.Decimal, len(mantissas))
	for i, m := range mantissas {
		exact[i], err = decimal.FromFloat(m)
		if err != nil {
			return nil, InvalidInput.Wrap(err)
		}
	}

	return &Table{
		name:      name,
		mantissas: mantissas,
		exact:     exact,
	}, nil
}

// Name returns the series name (e.g. "E12") or "custom".
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of mantissas per decade.
func (t *Table) Len() int {
	return len(t.mantissas)
}

// Mantissas returns a copy of the sorted mantissas.
func (t *Table) Mantissas() []float64 {
	return append([]float64(nil), t.mantissas...)
}

// Decompose splits a positive finite value into mantissa and exponent.
//
// The exponent starts as floor(log10(value)) and is corrected by one decade
// when log10 rounds across a power of ten (e.g. log10(1000) evaluating to
// 2.9999999999999996).
func Decompose(value float64) (d Decomposed, err error) {
	err = checkDomain(value)
	if err != nil {
		return d, err
	}

	exponent := int(math.Floor(math.Log10(value)))

	if value >= math.Pow10(exponent+1) {
		exponent++
	} else if value < math.Pow10(exponent) {
		exponent--
	}

	mantissa := unscale(value, exponent)

	// The division itself may still round onto the bounds.
	if mantissa >= 10 {
		mantissa = math.Nextafter(10, 0)
	} else if mantissa < 1 {
		mantissa = 1
	}

	return Decomposed{
		Mantissa: mantissa,
		Exponent: exponent,
	}, nil
}

// unscale returns value / 10^exponent.
func unscale(value float64, exponent int) float64 {
	// 10^exponent underflows to zero below 1e-323; scale subnormals up
	// first.
	if exponent < -300 {
		return value * 1e20 / math.Pow10(exponent+20)
	}

	return value / math.Pow10(exponent)
}

func checkDomain(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return DomainError.New("not finite: %v", value)
	}

	if value <= 0 {
		return DomainError.New("not positive: %v", value)
	}

	return nil
}

// Index returns the absolute index of the largest series value not greater
// than value.
func (t *Table) Index(value float64) (int, error) {
	d, err := Decompose(value)
	if err != nil {
		return 0, err
	}

	return t.index(d), nil
}

func (t *Table) index(d Decomposed) int {
	// Last mantissa <= d.Mantissa; -1 falls into the previous decade.
	rel := sort.Search(len(t.mantissas), func(i int) bool {
		return t.mantissas[i] > d.Mantissa
	}) - 1

	return d.Exponent*len(t.mantissas) + rel
}

// split divides an absolute index into exponent and relative index, flooring
// toward negative infinity.
func (t *Table) split(index int) (exponent, rel int) {
	n := len(t.mantissas)

	exponent, rel = index/n, index%n
	if rel < 0 {
		exponent--
		rel += n
	}

	return exponent, rel
}

// ValueAt returns the series value at the absolute index. Any integer is
// valid.
func (t *Table) ValueAt(index int) float64 {
	exponent, rel := t.split(index)

	return t.mantissas[rel] * math.Pow10(exponent)
}

// ExactAt returns the series value at the absolute index as an exact
// decimal.
func (t *Table) ExactAt(index int) decimal.Decimal {
	exponent, rel := t.split(index)

	return t.exact[rel].Shift(exponent)
}

// MatchAt returns the series value at the absolute index and its relative
// error versus target. The target must be positive and finite.
func (t *Table) MatchAt(index int, target float64) (m Match, err error) {
	err = checkDomain(target)
	if err != nil {
		return m, err
	}

	return t.matchAt(index, target), nil
}

func (t *Table) matchAt(index int, target float64) Match {
	value := t.ValueAt(index)

	return Match{
		Value: value,
		Error: (value - target) / target,
	}
}

// Neighbors returns the series values at and directly above the floor of
// value.
func (t *Table) Neighbors(value float64) (m Matches, err error) {
	_, m, err = t.neighbors(value)

	return m, err
}

func (t *Table) neighbors(value float64) (index int, m Matches, err error) {
	index, err = t.Index(value)
	if err != nil {
		return 0, m, err
	}

	return index, Matches{
		Smaller: t.matchAt(index, value),
		Larger:  t.matchAt(index+1, value),
	}, nil
}

// Closest returns the neighbor of value with the smaller magnitude of
// relative error. Ties go to the larger neighbor.
func (t *Table) Closest(value float64) (m Match, err error) {
	_, m, err = t.closest(value)

	return m, err
}

// ClosestIndex returns the absolute index of the value Closest returns.
func (t *Table) ClosestIndex(value float64) (int, error) {
	index, _, err := t.closest(value)

	return index, err
}

func (t *Table) closest(value float64) (index int, m Match, err error) {
	index, matches, err := t.neighbors(value)
	if err != nil {
		return 0, m, err
	}

	if math.Abs(matches.Smaller.Error) < math.Abs(matches.Larger.Error) {
		return index, matches.Smaller, nil
	}

	return index + 1, matches.Larger, nil
}
