package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEasterDateFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		date  EasterDate
		short string
		long  string
	}{
		{"western 2024", NewEasterDate(2024, time.March, 31), "2024-03-31", "31 March 2024"},
		{"orthodox 2024", NewEasterDate(2024, time.May, 5), "2024-05-05", "05 May 2024"},
		{"first easter year", NewEasterDate(326, time.April, 3), "0326-04-03", "03 April 0326"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.date.String(); got != tt.short {
				t.Errorf("String() = %q, expected %q", got, tt.short)
			}
			if got := tt.date.LongString(); got != tt.long {
				t.Errorf("LongString() = %q, expected %q", got, tt.long)
			}
		})
	}
}

func TestEasterDateTime(t *testing.T) {
	t.Parallel()

	d := NewEasterDate(2025, time.April, 20)
	tm := d.Time()
	if tm.Weekday() != time.Sunday {
		t.Errorf("expected Sunday, got %s", tm.Weekday())
	}
	if tm.Location() != time.UTC {
		t.Errorf("expected UTC location, got %s", tm.Location())
	}
}

func TestEasterDateIsZero(t *testing.T) {
	t.Parallel()

	if !(EasterDate{}).IsZero() {
		t.Error("expected zero value to report IsZero")
	}
	if NewEasterDate(2000, time.April, 23).IsZero() {
		t.Error("expected non-zero date")
	}
}

func TestEasterDateJSON(t *testing.T) {
	t.Parallel()

	row := YearRow{Year: 1600}
	row.Set(Julian, NewEasterDate(1600, time.March, 23))
	row.Set(Gregorian, NewEasterDate(1600, time.April, 2))

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"year":1600,"julian":"1600-03-23","revisedJulian":null,"gregorian":"1600-04-02"}`
	if string(data) != want {
		t.Errorf("got %s, expected %s", data, want)
	}
}
