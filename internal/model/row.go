package model

// YearRow holds the Easter dates of a single year.
// A nil field means the method was not in force that year.
type YearRow struct {
	Year          int         `json:"year"`
	Julian        *EasterDate `json:"julian"`
	RevisedJulian *EasterDate `json:"revisedJulian"`
	Gregorian     *EasterDate `json:"gregorian"`
}

// Date returns the date computed for method, or nil when the method does not
// apply to the row's year.
func (r YearRow) Date(method DatingMethod) *EasterDate {
	switch method {
	case Julian:
		return r.Julian
	case RevisedJulian:
		return r.RevisedJulian
	case Gregorian:
		return r.Gregorian
	default:
		return nil
	}
}

// Set stores the date for method.
func (r *YearRow) Set(method DatingMethod, d EasterDate) {
	switch method {
	case Julian:
		r.Julian = &d
	case RevisedJulian:
		r.RevisedJulian = &d
	case Gregorian:
		r.Gregorian = &d
	}
}

// Coincides reports whether the Orthodox (Revised Julian) and Western
// (Gregorian) Easter fall on the same day. It is false when either is missing.
func (r YearRow) Coincides() bool {
	if r.RevisedJulian == nil || r.Gregorian == nil {
		return false
	}
	return *r.RevisedJulian == *r.Gregorian
}

// OrthodoxGap returns the number of days from Western (Gregorian) to Orthodox
// (Revised Julian) Easter. ok is false when either date is missing.
func (r YearRow) OrthodoxGap() (days int, ok bool) {
	if r.RevisedJulian == nil || r.Gregorian == nil {
		return 0, false
	}
	return int(r.RevisedJulian.Time().Sub(r.Gregorian.Time()).Hours() / 24), true
}
