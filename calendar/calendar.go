// Package calendar provides the leap-year rules and month lengths of the
// Julian and proleptic Gregorian calendars.
package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects the calendar rule a date is interpreted under.
type Kind uint8

const (
	// Julian is the Julian calendar: a leap year every fourth year,
	// applied proleptically to years before its adoption.
	Julian Kind = iota

	// Gregorian is the Gregorian calendar: a leap year every fourth
	// year except century years not divisible by 400. Dates under this
	// kind are only meaningful from 1583 onwards; the rule functions
	// below still evaluate it proleptically for earlier years.
	Gregorian
)

func (k Kind) String() string {
	switch k {
	case Julian:
		return "julian"
	case Gregorian:
		return "gregorian"
	}
	return fmt.Sprintf("calendar.Kind(%d)", uint8(k))
}

// ParseKind parses a calendar name. It accepts "julian" and "gregorian"
// or any prefix of at least one character, in either case.
func ParseKind(val string) (Kind, error) {
	lc := strings.ToLower(val)
	if lc == "" {
		return 0, fmt.Errorf("invalid calendar: %q", val)
	}
	for _, k := range []Kind{Julian, Gregorian} {
		if strings.HasPrefix(k.String(), lc) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid calendar: %q", val)
}

// ErrInvalidMonth is returned for a month outside [1,12].
var ErrInvalidMonth = errors.New("invalid month")

// IsLeapYear determines if the year is a leap year under the given
// calendar kind. There is no year 0: years before 1 are shifted by one
// before the rule is applied, so year -1 precedes year 1 immediately and
// is a Julian leap year.
func IsLeapYear(year int, k Kind) bool {
	if year < 0 {
		year++
	}
	if k == Julian {
		return year%4 == 0
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a given month for a specific
// year and calendar kind.
func DaysInMonth(year, month int, k Kind) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if month == 2 {
		if IsLeapYear(year, k) {
			return 29, nil
		}
		return 28, nil
	}
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30, nil
	}
	return 31, nil
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int, k Kind) int {
	if IsLeapYear(year, k) {
		return 366
	}
	return 365
}
