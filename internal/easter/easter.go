package easter

import (
	"fmt"
	"time"

	"github.com/nao1215/easterdate/internal/model"
)

// Days from 1 March at which April and May begin.
const (
	daysInMarch        = 31
	daysInMarchToApril = 61
)

// gregorianPFMCorrection holds the Table A corrections of the Gregorian
// method, keyed by century (year / 100). It encodes the lunar (metonic)
// correction that the (century - 15) / 2 term alone cannot express.
var gregorianPFMCorrection = map[int]int{
	21: 1, 24: 1, 25: 1, 27: 1, 28: 1, 29: 1, 30: 1, 31: 1, 32: 1, 34: 1, 35: 1, 38: 1,
	33: 2, 36: 2, 37: 2, 39: 2, 40: 2,
}

// Compute returns the date of Easter Sunday for year under method.
//
// The arithmetic is total over int: floor division and a non-negative
// modulus are used throughout. Compute panics if method is not one of the
// defined dating methods; use ComputeChecked for unvalidated input.
func Compute(year int, method model.DatingMethod) model.EasterDate {
	if !method.IsValid() {
		panic(fmt.Sprintf("easter: invalid dating method %d", int(method)))
	}

	return resolve(year, DayOfMarch(year, method))
}

// ComputeChecked is like Compute but returns model.ErrMethodOutOfRange
// instead of panicking on an invalid method.
func ComputeChecked(year int, method model.DatingMethod) (model.EasterDate, error) {
	if !method.IsValid() {
		return model.EasterDate{}, fmt.Errorf("%w: got %d", model.ErrMethodOutOfRange, int(method))
	}
	return Compute(year, method), nil
}

// DayOfMarch returns Easter Sunday as a day count from 1 March, so 32 is
// 1 April. For RevisedJulian the Gregorian calendar shift is included.
func DayOfMarch(year int, method model.DatingMethod) int {
	century := floorDiv(year, 100)

	a := PaschalFullMoon(year, method)

	// Table B: offset from the PFM to the following Sunday.
	b := floorMod(a-19, 7)

	// Table C: century correction.
	var c int
	if method == model.Gregorian {
		c = floorMod(40-century, 4)
		if c == 3 {
			c++
		}
		if c > 1 {
			c++
		}
	} else {
		c = floorMod(40-century, 7)
	}

	// Table D: weekday contribution of the year within its century.
	yy := floorMod(year, 100)
	d := floorMod(yy+floorDiv(yy, 4), 7)

	// Table E.
	e := floorMod(20-b-c-d, 7) + 1

	day := a + e
	if method == model.RevisedJulian {
		day += CalendarShift(year)
	}
	return day
}

// PaschalFullMoon returns the date of the Paschal Full Moon (Table A) as a
// day count from 1 March, in the calendar of the method.
func PaschalFullMoon(year int, method model.DatingMethod) int {
	epact19 := floorMod(year, 19)

	if method != model.Gregorian {
		return floorMod(225-11*epact19, 30) + 21
	}

	century := floorDiv(year, 100)
	temp := floorDiv(century-15, 2) + 202 - 11*epact19
	temp -= gregorianPFMCorrection[century]
	temp = floorMod(temp, 30)

	a := temp + 21
	if temp == 29 {
		a--
	}
	if temp == 28 && epact19 > 10 {
		a--
	}
	return a
}

// CalendarShift returns the number of days between the Julian and the
// Gregorian calendar applied to Revised Julian dates: the ten days dropped
// in October 1582 plus one for every skipped Gregorian century leap day
// after 1600.
func CalendarShift(year int) int {
	shift := 10
	if year > 1600 {
		century := floorDiv(year, 100)
		shift += century - 16 - floorDiv(century-16, 4)
	}
	return shift
}

// resolve turns a day count from 1 March into a date.
func resolve(year, day int) model.EasterDate {
	switch {
	case day > daysInMarchToApril:
		return model.NewEasterDate(year, time.May, day-daysInMarchToApril)
	case day > daysInMarch:
		return model.NewEasterDate(year, time.April, day-daysInMarch)
	default:
		return model.NewEasterDate(year, time.March, day)
	}
}

// floorDiv returns a / b rounded toward negative infinity. b must be positive.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// floorMod returns the non-negative remainder of a / b. b must be positive.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
