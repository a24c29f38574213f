package eseries

import (
	"math"

	"github.com/calebcase/eseries/decimal"
)

// Range is a lazy, restartable cursor over consecutive series values.
//
// Usage follows the usual Next loop:
//
//  r, err := t.FromTo(1e3, 1e4)
//  ...
//  for r.Next() {
//  	fmt.Println(r.Value())
//  }
//
// A Range is not safe for concurrent use; the Table it reads from is.
type Range struct {
	t *Table

	first int
	last  int

	// cur is first-1 before the first call to Next.
	cur int
}

// FromTo returns the series values covering [min, max]. It starts at the
// floor of min and ends one index past the floor of max.
func (t *Table) FromTo(min, max float64) (r *Range, err error) {
	for _, v := range []float64{min, max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, DomainError.New("not finite: %v", v)
		}
	}

	if min <= 0 || max <= 0 {
		return nil, InvalidRange.New("bounds must be positive: [%v, %v]", min, max)
	}

	if min > max {
		return nil, InvalidRange.New("min greater than max: [%v, %v]", min, max)
	}

	first, err := t.Index(min)
	if err != nil {
		return nil, err
	}

	last, err := t.Index(max)
	if err != nil {
		return nil, err
	}

	return t.between(first, last+1), nil
}

func (t *Table) between(first, last int) *Range {
	return &Range{
		t:     t,
		first: first,
		last:  last,
		cur:   first - 1,
	}
}

// Next advances to the next value. It returns false once the range is
// exhausted.
func (r *Range) Next() (ok bool) {
	if r.cur >= r.last {
		return false
	}

	r.cur++

	return true
}

// Reset rewinds the range to before its first value.
func (r *Range) Reset() {
	r.cur = r.first - 1
}

// Index returns the absolute index of the current value.
func (r *Range) Index() int {
	return r.cur
}

// Value returns the current value.
func (r *Range) Value() float64 {
	return r.t.ValueAt(r.cur)
}

// Exact returns the current value as an exact decimal.
func (r *Range) Exact() decimal.Decimal {
	return r.t.ExactAt(r.cur)
}

// Len returns the total number of values in the range.
func (r *Range) Len() int {
	return r.last - r.first + 1
}

// Values returns every value in the range. The cursor is not moved.
func (r *Range) Values() []float64 {
	values := make([]float64, 0, r.Len())
	for i := r.first; i <= r.last; i++ {
		values = append(values, r.t.ValueAt(i))
	}

	return values
}
