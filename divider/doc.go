// Package divider selects feedback divider resistors for adjustable switching
// regulators.
//
// The regulator compares the divided output against its internal reference
// voltage k:
//
//  Vout ──┬──
//         R1
//         ├── FB (regulated to k)
//         R2
//  GND ───┴──
//
//  Vout = k * (R1 + R2) / R2
//  R1   = (Vout / k - 1) * R2
//
// Two strategies are provided. Fixed keeps R2 at a given value and rounds the
// ideal R1 to the closest series value. Sweep tries every series value of R2
// in a range, rounds R1 for each, and keeps the combination with the smallest
// output error.
package divider
