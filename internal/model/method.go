package model

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Year bounds.
const (
	// FirstEasterYear is the first year with an ecclesiastically defined Easter
	// computation, following the Council of Nicaea in AD 325.
	FirstEasterYear = 326

	// FirstValidGregorianYear is the first full year of the Gregorian calendar,
	// which started in October 1582.
	FirstValidGregorianYear = 1583

	// FirstRevisedJulianYear is the first full year of the Revised Julian
	// (Milanković) calendar, defined in May 1923.
	FirstRevisedJulianYear = 1924

	// LastValidGregorianYear is the last year the tables of the calculator cover.
	LastValidGregorianYear = 4099
)

// DatingMethod selects the convention used to date Easter.
//
// The numeric values match the method codes accepted on the command line.
type DatingMethod int

const (
	// Julian dates Easter in the Julian calendar.
	Julian DatingMethod = iota + 1

	// RevisedJulian computes Easter with the Julian rules and expresses the
	// result in the Gregorian calendar, as the Orthodox churches do.
	RevisedJulian

	// Gregorian dates Easter with the Western (Gregorian) rules.
	Gregorian
)

// Methods lists every dating method in code order.
var Methods = []DatingMethod{Julian, RevisedJulian, Gregorian}

// methodAliases maps case-folded names to methods.
var methodAliases = map[string]DatingMethod{
	"julian":         Julian,
	"revised-julian": RevisedJulian,
	"revisedjulian":  RevisedJulian,
	"revised_julian": RevisedJulian,
	"orthodox":       RevisedJulian,
	"milankovic":     RevisedJulian,
	"gregorian":      Gregorian,
	"western":        Gregorian,
}

// String returns the canonical lower-case name of the method.
func (m DatingMethod) String() string {
	switch m {
	case Julian:
		return "julian"
	case RevisedJulian:
		return "revised-julian"
	case Gregorian:
		return "gregorian"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable name of the method.
func (m DatingMethod) DisplayName() string {
	switch m {
	case Julian:
		return "Julian"
	case RevisedJulian:
		return "Revised Julian"
	case Gregorian:
		return "Gregorian"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is one of the defined dating methods.
func (m DatingMethod) IsValid() bool {
	return m >= Julian && m <= Gregorian
}

// FirstYear returns the first year the method is in force.
func (m DatingMethod) FirstYear() int {
	switch m {
	case RevisedJulian:
		return FirstRevisedJulianYear
	case Gregorian:
		return FirstValidGregorianYear
	default:
		return FirstEasterYear
	}
}

// AppliesTo reports whether the method was in force for the given year.
func (m DatingMethod) AppliesTo(year int) bool {
	return m.IsValid() && year >= m.FirstYear()
}

// MarshalText implements encoding.TextMarshaler.
func (m DatingMethod) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrMethodOutOfRange, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so methods can be read
// from YAML configuration by code or name.
func (m *DatingMethod) UnmarshalText(text []byte) error {
	parsed, err := ParseDatingMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseDatingMethod parses a method code ("1", "2", "3") or a case-insensitive
// name such as "julian", "orthodox" or "western".
func ParseDatingMethod(s string) (DatingMethod, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.Atoi(s); err == nil {
		m := DatingMethod(code)
		if !m.IsValid() {
			return 0, fmt.Errorf("%w: got %d", ErrMethodOutOfRange, code)
		}
		return m, nil
	}

	if m, ok := methodAliases[cases.Fold().String(s)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ValidateYear checks that year lies within the supported range.
func ValidateYear(year int) error {
	if year < FirstEasterYear || year > LastValidGregorianYear {
		return fmt.Errorf("%w: got %d", ErrYearOutOfRange, year)
	}
	return nil
}
