// Package model defines the core data structures shared by the Easter
// calculator, the batch runner and the report writers.
//
// This package contains the following main types:
//   - DatingMethod: The closed set of Easter dating conventions
//   - EasterDate: An immutable year-month-day triple for Easter Sunday
//   - YearRow: The dates of one year across all applicable methods
//
// Models live in their own package so that the calculator, the batch runner
// and the report writers can share them without import cycles.
package model
