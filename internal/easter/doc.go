// Package easter computes the date of Easter Sunday.
//
// The calculation follows the "tables A to E" method: a closed-form, integer
// only procedure of the Meeus/Butcher family that reproduces the
// ecclesiastical rules of three dating conventions:
//
//   - Julian: the Nicene rules in the Julian calendar
//   - Revised Julian: the Julian result shifted into the Gregorian calendar,
//     as observed by the Orthodox churches
//   - Gregorian: the Western rules of the 1582 reform
//
// All three methods share the same structure and diverge only in Table A
// (the Paschal Full Moon), Table C (the century correction) and, for the
// Revised Julian method, the final calendar shift.
//
// # Usage
//
//	d := easter.Compute(2024, model.Gregorian)
//	fmt.Println(d) // 2024-03-31
//
// Compute is a pure function: it performs no I/O, holds no state and is safe
// for concurrent use. It does not check the year against the supported range;
// use model.ValidateYear first when the input comes from a user.
package easter
