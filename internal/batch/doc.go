// Package batch computes Easter dates over a contiguous range of years.
//
// For every year the Runner computes each dating method that was in force
// that year (see model.DatingMethod.AppliesTo):
//
//	year <= 1582          Julian only
//	1583 <= year <= 1923  Julian and Gregorian
//	year >= 1924          Julian, Revised Julian and Gregorian
//
// Rows are produced in ascending year order and handed to a callback, so
// writers can stream them without holding the whole range in memory.
package batch
