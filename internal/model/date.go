package model

import (
	"fmt"
	"time"
)

// EasterDate is an immutable calendar date of Easter Sunday.
//
// The date is a plain year-month-day triple in the calendar of the method that
// produced it: a Julian result is a Julian-calendar date, while Revised Julian
// and Gregorian results are Gregorian-calendar dates. Month is always March,
// April, or May.
type EasterDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewEasterDate creates an EasterDate.
func NewEasterDate(year int, month time.Month, day int) EasterDate {
	return EasterDate{Year: year, Month: month, Day: day}
}

// String returns the date in YYYY-MM-DD form.
func (d EasterDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// LongString returns the date in "DD MonthName YYYY" form, e.g. "31 March 2024".
func (d EasterDate) LongString() string {
	return fmt.Sprintf("%02d %s %04d", d.Day, d.Month, d.Year)
}

// Time returns the date as midnight UTC in the proleptic Gregorian calendar.
// Only meaningful for Gregorian-calendar dates.
func (d EasterDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero value.
func (d EasterDate) IsZero() bool {
	return d == EasterDate{}
}

// MarshalText implements encoding.TextMarshaler using the YYYY-MM-DD form.
func (d EasterDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
