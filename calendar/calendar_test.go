package calendar

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year int
		kind Kind
		want bool
	}{
		{2000, Gregorian, true},
		{2001, Gregorian, false},
		{2004, Gregorian, true},
		{2100, Gregorian, false},
		{1900, Gregorian, false},
		{1600, Gregorian, true},

		{1900, Julian, true},
		{100, Julian, true},
		{2000, Julian, true},
		{2001, Julian, false},

		// Years before 1 are shifted across the missing year 0,
		// so -1 sits where year 0 would and is a leap year.
		{-1, Julian, true},
		{-4, Julian, false},
		{-5, Julian, true},
	}
	for _, c := range cases {
		if got := IsLeapYear(c.year, c.kind); got != c.want {
			t.Errorf("IsLeapYear(%d, %v) = %v, want %v", c.year, c.kind, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month int
		kind  Kind
		want  int
	}{
		{2021, 1, Gregorian, 31},
		{2021, 4, Gregorian, 30},
		{2021, 2, Gregorian, 28},
		{2020, 2, Gregorian, 29},
		{1900, 2, Gregorian, 28},
		{1900, 2, Julian, 29},
		{2021, 12, Julian, 31},
		{-1, 2, Julian, 29},
	}
	for _, c := range cases {
		got, err := DaysInMonth(c.year, c.month, c.kind)
		if err != nil {
			t.Fatalf("DaysInMonth(%d, %d, %v): %v", c.year, c.month, c.kind, err)
		}
		if got != c.want {
			t.Errorf("DaysInMonth(%d, %d, %v) = %d, want %d", c.year, c.month, c.kind, got, c.want)
		}
	}
}

func TestDaysInMonth_InvalidMonth(t *testing.T) {
	for _, month := range []int{-1, 0, 13, 15} {
		_, err := DaysInMonth(2021, month, Gregorian)
		if !errors.Is(err, ErrInvalidMonth) {
			t.Errorf("DaysInMonth(2021, %d, Gregorian) error = %v, want ErrInvalidMonth", month, err)
		}
	}
}

func TestDaysInYear(t *testing.T) {
	cases := []struct {
		year int
		kind Kind
		want int
	}{
		{1977, Gregorian, 365},
		{1980, Gregorian, 366},
		{2000, Gregorian, 366},
		{2100, Gregorian, 365},
		{2100, Julian, 366},
		{-1, Julian, 366},
		{-2, Julian, 365},
	}
	for _, c := range cases {
		if got := DaysInYear(c.year, c.kind); got != c.want {
			t.Errorf("DaysInYear(%d, %v) = %d, want %d", c.year, c.kind, got, c.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
	}{
		{"julian", Julian},
		{"Julian", Julian},
		{"j", Julian},
		{"gregorian", Gregorian},
		{"GREGORIAN", Gregorian},
		{"g", Gregorian},
		{"greg", Gregorian},
	}
	for _, c := range cases {
		got, err := ParseKind(c.in)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", c.in, err)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("ParseKind(%q) mismatch (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestParseKind_Invalid(t *testing.T) {
	for _, in := range []string{"", "hebrew", "gregorianx", "julians"} {
		if _, err := ParseKind(in); err == nil {
			t.Errorf("ParseKind(%q) = nil error, want error", in)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Julian.String(); got != "julian" {
		t.Errorf("Julian.String() = %q", got)
	}
	if got := Gregorian.String(); got != "gregorian" {
		t.Errorf("Gregorian.String() = %q", got)
	}
}
