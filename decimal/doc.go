// Package decimal provides an exact base 10 number.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ scale
//
// Where value is an unscaled integer and scale is a base 10 exponent. For
// example:
//
//  1.23 = 123 * 10^-2
//  4700 = 47 * 10^2
//
// Value holds up to 18 significant digits which is enough for the shortest
// decimal that round trips any float64 (at most 17 digits). Scale covers the
// full float64 exponent range.
//
// Decimals are used to render preferred number series values without binary
// floating point noise. Multiplying the float64 mantissa 4.7 by 10^3 may
// produce 4700.000000000001, while shifting the decimal 47 * 10^-1 by three
// produces exactly 47 * 10^2.
//
// Examples
//
//  | float64 | value | scale | String  |
//  |---------|-------|-------|---------|
//  |     1.0 |     1 |     0 | 1       |
//  |     1.5 |    15 |    -1 | 1.5     |
//  |    0.68 |    68 |    -2 | 0.68    |
//  |   4.7e3 |    47 |     2 | 4700    |
//  |---------|-------|-------|---------|
package decimal
