package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

// Decimal is an exact base 10 number.
type Decimal struct {
	Value int64
	Scale int32
}

// FromFloat returns the shortest decimal that converts back to f exactly.
func FromFloat(f float64) (d Decimal, err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return d, Error.New("not finite: %v", f)
	}

	if f == 0 {
		return Decimal{}, nil
	}

	// Shortest representation, e.g. "-4.7e+03" or "1e-05".
	s := strconv.FormatFloat(f, 'e', -1, 64)

	e := strings.IndexByte(s, 'e')
	if e < 0 {
		return d, Error.New("unexpected format: %q", s)
	}

	exp, err := strconv.Atoi(s[e+1:])
	if err != nil {
		return d, Error.Wrap(err)
	}

	digits := s[:e]
	frac := 0

	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		frac = len(digits) - dot - 1
		digits = digits[:dot] + digits[dot+1:]
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return d, Error.Wrap(err)
	}

	return Decimal{
		Value: value,
		Scale: int32(exp - frac),
	}, nil
}

// Shift returns d multiplied by 10^n.
func (d Decimal) Shift(n int) Decimal {
	if d.Value == 0 {
		return d
	}

	return Decimal{
		Value: d.Value,
		Scale: d.Scale + int32(n),
	}
}

// Normalize moves trailing zero digits of the value into the scale. Zero
// normalizes to scale 0.
func (d Decimal) Normalize() Decimal {
	if d.Value == 0 {
		return Decimal{}
	}

	for d.Value%10 == 0 {
		d.Value /= 10
		d.Scale++
	}

	return d
}

// Float64 returns the float64 nearest to d.
func (d Decimal) Float64() float64 {
	// ParseFloat is correctly rounded and handles overflow to ±Inf.
	f, _ := strconv.ParseFloat(
		strconv.FormatInt(d.Value, 10)+"e"+strconv.Itoa(int(d.Scale)),
		64,
	)

	return f
}

// String returns d in plain (non-exponent) notation.
func (d Decimal) String() string {
	if d.Value == 0 {
		return "0"
	}

	sign := ""
	digits := strconv.FormatInt(d.Value, 10)
	if digits[0] == '-' {
		sign, digits = "-", digits[1:]
	}

	if d.Scale >= 0 {
		return sign + digits + strings.Repeat("0", int(d.Scale))
	}

	point := len(digits) + int(d.Scale)
	if point > 0 {
		return sign + digits[:point] + "." + digits[point:]
	}

	return sign + "0." + strings.Repeat("0", -point) + digits
}

// Cmp compares d and o and returns -1, 0 or +1.
func (d Decimal) Cmp(o Decimal) int {
	scale := d.Scale
	if o.Scale < scale {
		scale = o.Scale
	}

	return d.big(scale).Cmp(o.big(scale))
}

// big returns the unscaled value of d at the given (smaller or equal) scale.
func (d Decimal) big(scale int32) *big.Int {
	i := big.NewInt(d.Value)

	if d.Scale > scale {
		p := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale-scale)), nil)
		i.Mul(i, p)
	}

	return i
}
