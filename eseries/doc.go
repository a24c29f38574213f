// Package eseries provides lookups into the IEC 60063 preferred number series
// (E6, E12, E24, E48, E96 and E192).
//
// Each series is a list of mantissas in [1, 10) that repeats in every decade.
// A series therefore describes an infinite, strictly increasing lattice of
// values addressed by a single integer, the absolute index:
//
//  index = exponent * N + relative
//  value = mantissas[relative] * 10^exponent
//
// Where N is the number of mantissas in the series and 0 <= relative < N. For
// example in E6:
//
//  |  index | exponent | relative | value |
//  |--------|----------|----------|-------|
//  |     -1 |       -1 |        5 |  0.68 |
//  |      0 |        0 |        0 |   1.0 |
//  |      5 |        0 |        5 |   6.8 |
//  |      6 |        1 |        0 |    10 |
//  |     17 |        2 |        5 |   680 |
//  |--------|----------|----------|-------|
//
// Negative indices are valid and address decades below 1. Division of the
// index by N floors toward negative infinity so the relative index always
// stays in range.
//
// Lookups
//
// A target value is first decomposed into mantissa and exponent. The index of
// the last mantissa not greater than the target's mantissa gives the floor of
// the target in the lattice; the next index gives the value above it. The
// floor may be -1 relative to the decade (the target's mantissa is below the
// first entry) which simply addresses the last value of the previous decade.
//
// Closest picks the neighbor with the smaller magnitude of relative error.
// Equal errors resolve to the larger neighbor.
//
// Ranges
//
// FromTo yields every value from the floor of the minimum through the value
// directly above the floor of the maximum. E6 from 800 to 50000 is 680, 1000,
// ..., 47000, 68000.
package eseries
