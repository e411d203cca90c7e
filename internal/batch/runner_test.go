package batch

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/easterdate/internal/easter"
	"github.com/nao1215/easterdate/internal/model"
)

// TestRunner_Transitions pins the years at which each method starts.
func TestRunner_Transitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year          int
		wantRevised   bool
		wantGregorian bool
	}{
		{326, false, false},
		{1582, false, false},
		{1583, false, true},
		{1600, false, true},
		{1923, false, true},
		{1924, true, true},
		{4099, true, true},
	}

	r := NewRunner()
	for _, tt := range tests {
		row := r.Row(tt.year)

		if row.Julian == nil {
			t.Errorf("year %d: expected julian date", tt.year)
		}
		if got := row.RevisedJulian != nil; got != tt.wantRevised {
			t.Errorf("year %d: revised julian present = %v, expected %v", tt.year, got, tt.wantRevised)
		}
		if got := row.Gregorian != nil; got != tt.wantGregorian {
			t.Errorf("year %d: gregorian present = %v, expected %v", tt.year, got, tt.wantGregorian)
		}
	}
}

// TestRunner_Collect tests a range straddling the Revised Julian reform.
func TestRunner_Collect(t *testing.T) {
	t.Parallel()

	rows, err := NewRunner().Collect(1920, 1930)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 11 {
		t.Fatalf("expected 11 rows, got %d", len(rows))
	}

	for i, row := range rows {
		year := 1920 + i
		if row.Year != year {
			t.Errorf("row %d: expected year %d, got %d", i, year, row.Year)
		}
		if row.Gregorian == nil {
			t.Errorf("year %d: expected gregorian date", year)
		}
		if (row.RevisedJulian != nil) != (year > 1923) {
			t.Errorf("year %d: unexpected revised julian presence", year)
		}
	}

	want := easter.Compute(1924, model.RevisedJulian)
	if diff := cmp.Diff(&want, rows[4].RevisedJulian); diff != "" {
		t.Errorf("1924 revised julian mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_SingleYear(t *testing.T) {
	t.Parallel()

	rows, err := NewRunner().Collect(2024, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Gregorian.String() != "2024-03-31" {
		t.Errorf("got %s", rows[0].Gregorian)
	}
	if rows[0].RevisedJulian.String() != "2024-05-05" {
		t.Errorf("got %s", rows[0].RevisedJulian)
	}
}

// TestValidateRange tests range validation, including a reversed range which
// is rejected rather than treated as empty.
func TestValidateRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		start, finish int
		wantErr       error
	}{
		{"full range", 326, 4099, nil},
		{"single year", 2000, 2000, nil},
		{"start too early", 325, 2000, model.ErrYearOutOfRange},
		{"finish too late", 2000, 4100, model.ErrYearOutOfRange},
		{"reversed", 2001, 2000, model.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateRange(tt.start, tt.finish)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRunner_RunRejectsReversedRange(t *testing.T) {
	t.Parallel()

	called := false
	err := NewRunner().Run(1930, 1920, func(model.YearRow) error {
		called = true
		return nil
	})
	if !errors.Is(err, model.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
	if called {
		t.Error("callback should not be called for a reversed range")
	}
}

func TestRunner_RunStopsOnError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	var seen []int
	err := NewRunner().Run(2000, 2010, func(row model.YearRow) error {
		seen = append(seen, row.Year)
		if row.Year == 2002 {
			return errStop
		}
		return nil
	})

	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop, got %v", err)
	}
	if !strings.Contains(err.Error(), "year 2002") {
		t.Errorf("expected error to name the year, got %v", err)
	}
	if diff := cmp.Diff([]int{2000, 2001, 2002}, seen); diff != "" {
		t.Errorf("visited years mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_WithMethods(t *testing.T) {
	t.Parallel()

	r := NewRunner(WithMethods(model.Gregorian, model.DatingMethod(8)))
	row := r.Row(2024)
	if row.Julian != nil || row.RevisedJulian != nil {
		t.Error("expected only the gregorian column")
	}
	if row.Gregorian == nil {
		t.Error("expected gregorian date")
	}

	r = NewRunner(WithMethods())
	if row := r.Row(2024); row.Julian == nil || row.RevisedJulian == nil || row.Gregorian == nil {
		t.Error("expected all methods when none are given")
	}
}

func TestRunner_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := NewRunner(WithLogger(logger)).Run(2000, 2001, func(model.YearRow) error { return nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "computing easter dates") {
		t.Errorf("expected debug log, got %q", buf.String())
	}
}
