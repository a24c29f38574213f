package decimal

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestFromFloat(t *testing.T) {
	type TC struct {
		f    float64
		d    Decimal
		s    string
		Mark error
	}

	tcs := []TC{
		{f: 0, d: Decimal{}, s: "0", Mark: oops.New("unexpected")},
		{f: 1, d: Decimal{Value: 1, Scale: 0}, s: "1", Mark: oops.New("unexpected")},
		{f: 1.5, d: Decimal{Value: 15, Scale: -1}, s: "1.5", Mark: oops.New("unexpected")},
		{f: 9.88, d: Decimal{Value: 988, Scale: -2}, s: "9.88", Mark: oops.New("unexpected")},
		{f: 0.68, d: Decimal{Value: 68, Scale: -2}, s: "0.68", Mark: oops.New("unexpected")},
		{f: 4700, d: Decimal{Value: 47, Scale: 2}, s: "4700", Mark: oops.New("unexpected")},
		{f: -2.5, d: Decimal{Value: -25, Scale: -1}, s: "-2.5", Mark: oops.New("unexpected")},
		{f: 1e-5, d: Decimal{Value: 1, Scale: -5}, s: "0.00001", Mark: oops.New("unexpected")},
		{f: 123.456, d: Decimal{Value: 123456, Scale: -3}, s: "123.456", Mark: oops.New("unexpected")},
		{f: 0.1 + 0.2, d: Decimal{Value: 30000000000000004, Scale: -17}, s: "0.30000000000000004", Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprint(tc.f), func(t *testing.T) {
			d, err := FromFloat(tc.f)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.d, d, tc.Mark)
			require.Equal(t, tc.s, d.String(), tc.Mark)
			require.Equal(t, tc.f, d.Float64(), tc.Mark)
		})
	}

	t.Run("not finite", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			_, err := FromFloat(f)
			require.Error(t, err)
			require.True(t, Error.Has(err), err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		for _, f := range []float64{
			math.MaxFloat64,
			math.SmallestNonzeroFloat64,
			math.Pi,
			1.0 / 3,
			6.8e-30,
			-4.7e120,
		} {
			d, err := FromFloat(f)
			require.NoError(t, err)
			require.Equal(t, f, d.Float64())
		}
	})
}

func TestShift(t *testing.T) {
	d := Decimal{Value: 47, Scale: -1}

	require.Equal(t, "4.7", d.String())
	require.Equal(t, "4700", d.Shift(3).String())
	require.Equal(t, "0.0047", d.Shift(-3).String())
	require.Equal(t, Decimal{}, Decimal{}.Shift(5))
}

func TestNormalize(t *testing.T) {
	type TC struct {
		in  Decimal
		out Decimal
	}

	tcs := []TC{
		{in: Decimal{Value: 4700, Scale: 0}, out: Decimal{Value: 47, Scale: 2}},
		{in: Decimal{Value: 150, Scale: -2}, out: Decimal{Value: 15, Scale: -1}},
		{in: Decimal{Value: -10, Scale: 0}, out: Decimal{Value: -1, Scale: 1}},
		{in: Decimal{Value: 0, Scale: -7}, out: Decimal{}},
		{in: Decimal{Value: 33, Scale: 1}, out: Decimal{Value: 33, Scale: 1}},
	}

	for _, tc := range tcs {
		t.Run(tc.in.String(), func(t *testing.T) {
			require.Equal(t, tc.out, tc.in.Normalize())
			require.Equal(t, 0, tc.in.Cmp(tc.out))
		})
	}
}

func TestCmp(t *testing.T) {
	type TC struct {
		a   Decimal
		b   Decimal
		cmp int
	}

	tcs := []TC{
		{a: Decimal{Value: 1, Scale: 0}, b: Decimal{Value: 10, Scale: -1}, cmp: 0},
		{a: Decimal{Value: 15, Scale: -1}, b: Decimal{Value: 2, Scale: 0}, cmp: -1},
		{a: Decimal{Value: 1, Scale: 300}, b: Decimal{Value: 9, Scale: -300}, cmp: 1},
		{a: Decimal{Value: -1, Scale: 0}, b: Decimal{Value: 1, Scale: -5}, cmp: -1},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%s<=>%s", tc.a, tc.b), func(t *testing.T) {
			require.Equal(t, tc.cmp, tc.a.Cmp(tc.b))
			require.Equal(t, -tc.cmp, tc.b.Cmp(tc.a))
		})
	}
}
