package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/easterdate/internal/config"
	"github.com/nao1215/easterdate/internal/model"
)

func TestNewCompareCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCompareCmd()
	if cmd.Use != "compare [year]" {
		t.Errorf("expected use 'compare [year]', got %q", cmd.Use)
	}
	for _, name := range []string{"json", "markdown", "output"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected %s flag", name)
		}
	}
}

func TestRunCompareCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name: "weeks apart",
			args: []string{"compare", "2024"},
			contains: []string{
				"Easter 2024",
				"2024-04-22  22 April 2024  (Julian calendar)",
				"2024-05-05  05 May 2024",
				"2024-03-31  31 March 2024",
				"Orthodox Easter is 5 weeks after Western Easter.",
			},
		},
		{
			name: "current year coincides",
			args: []string{"compare"},
			contains: []string{
				"Easter 2025",
				"Orthodox and Western Easter coincide.",
			},
		},
		{
			name: "revised julian not yet in force",
			args: []string{"compare", "1600"},
			contains: []string{
				"not in force",
				"1600-04-02  02 April 1600",
			},
			excludes: []string{"Orthodox Easter is"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(stdout, want) {
					t.Errorf("expected output to contain %q, got %q", want, stdout)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(stdout, unwanted) {
					t.Errorf("expected output not to contain %q, got %q", unwanted, stdout)
				}
			}
		})
	}
}

func TestRunCompareCmdErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "too many arguments", args: []string{"compare", "2024", "2025"}, wantErr: config.ErrInvalidArgumentCount},
		{name: "non-integer year", args: []string{"compare", "next"}, wantErr: config.ErrNonIntegerYear},
		{name: "year out of range", args: []string{"compare", "5000"}, wantErr: model.ErrYearOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRunCompareCmdJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "compare", "--json", "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Year     int  `json:"year"`
		GapDays  *int `json:"gapDays"`
		Coincide bool `json:"coincide"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if got.Year != 2024 {
		t.Errorf("expected year 2024, got %d", got.Year)
	}
	if got.GapDays == nil || *got.GapDays != 35 {
		t.Errorf("expected gap of 35 days, got %v", got.GapDays)
	}
	if got.Coincide {
		t.Error("expected dates not to coincide")
	}
}
