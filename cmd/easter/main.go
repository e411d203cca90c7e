// Package main provides the entry point for the easter CLI.
//
// easter computes the date of Easter Sunday under the Julian, Revised Julian
// and Gregorian dating methods, for a single year or a range of years.
//
// Usage:
//
//	easter date [year] [method]
//	easter table <start-year> <finish-year>
//	easter compare [year]
//
// See --help for all available options.
package main

// main is the entry point for easter.
func main() {
	Execute()
}
