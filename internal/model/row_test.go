package model

import (
	"testing"
	"time"
)

func TestYearRow(t *testing.T) {
	t.Parallel()

	t.Run("empty row has no dates", func(t *testing.T) {
		t.Parallel()
		var row YearRow
		for _, m := range Methods {
			if row.Date(m) != nil {
				t.Errorf("expected nil date for %s", m)
			}
		}
		if row.Date(DatingMethod(0)) != nil {
			t.Error("expected nil date for invalid method")
		}
	})

	t.Run("set stores a copy", func(t *testing.T) {
		t.Parallel()
		var row YearRow
		d := NewEasterDate(2024, time.March, 31)
		row.Set(Gregorian, d)
		d.Day = 1

		got := row.Date(Gregorian)
		if got == nil || got.Day != 31 {
			t.Errorf("expected stored day 31, got %v", got)
		}
	})

	t.Run("coincides", func(t *testing.T) {
		t.Parallel()
		var row YearRow
		row.Set(RevisedJulian, NewEasterDate(2025, time.April, 20))
		if row.Coincides() {
			t.Error("expected no coincidence with missing gregorian date")
		}
		row.Set(Gregorian, NewEasterDate(2025, time.April, 20))
		if !row.Coincides() {
			t.Error("expected coincidence")
		}
		row.Set(Gregorian, NewEasterDate(2025, time.April, 13))
		if row.Coincides() {
			t.Error("expected no coincidence")
		}
	})

	t.Run("orthodox gap", func(t *testing.T) {
		t.Parallel()
		var row YearRow
		if _, ok := row.OrthodoxGap(); ok {
			t.Error("expected no gap for empty row")
		}
		row.Set(RevisedJulian, NewEasterDate(2024, time.May, 5))
		row.Set(Gregorian, NewEasterDate(2024, time.March, 31))
		days, ok := row.OrthodoxGap()
		if !ok || days != 35 {
			t.Errorf("expected 35 days, got %d (ok=%v)", days, ok)
		}
	})
}
