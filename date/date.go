// Package date provides an immutable calendar date value with day-counting
// arithmetic under either the Julian or the Gregorian rule.
//
// A Date is bound to one calendar.Kind for its lifetime. All validation
// happens in New; a constructed Date is always valid and its query methods
// cannot fail. There is no year 0: year -1 is the year immediately before
// year 1.
package date

import (
	"errors"
	"fmt"
	"time"

	"github.com/dayspan/go-dayspan/calendar"
)

var (
	// ErrInvalidDay is returned for a day outside the month's length.
	ErrInvalidDay = errors.New("invalid day")

	// ErrYearZero is returned for year 0, which does not exist.
	ErrYearZero = errors.New("year 0 does not exist")

	// ErrYearBeforeGregorian is returned when a Gregorian date is
	// requested for a year at or before 1582. Use calendar.Julian for
	// such years.
	ErrYearBeforeGregorian = errors.New("year precedes the Gregorian calendar")

	// ErrCalendarMismatch is returned when two dates of different
	// calendar kinds are differenced.
	ErrCalendarMismatch = errors.New("calendar kinds differ")
)

// gregorianYear is the year the Gregorian calendar took effect.
const gregorianYear = 1582

// daysBeforeMonth[m-1] is the number of days in a non-leap year before
// month m.
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// Date is an immutable calendar date. The zero value is not a valid date;
// use New.
type Date struct {
	year  int
	month int
	day   int
	kind  calendar.Kind
}

// New validates year, month and day under the given calendar kind and
// returns the Date. Year 0 is rejected for either kind; years at or
// before 1582 are rejected under the Gregorian kind.
func New(year, month, day int, k calendar.Kind) (Date, error) {
	if year == 0 {
		return Date{}, ErrYearZero
	}
	if k == calendar.Gregorian && year <= gregorianYear {
		return Date{}, fmt.Errorf("%w: %d", ErrYearBeforeGregorian, year)
	}
	dim, err := calendar.DaysInMonth(year, month, k)
	if err != nil {
		return Date{}, err
	}
	if day < 1 || day > dim {
		return Date{}, fmt.Errorf("%w: %d for month %d of year %d", ErrInvalidDay, day, month, year)
	}
	return Date{year: year, month: month, day: day, kind: k}, nil
}

// MustNew is like New but panics on error. It simplifies fixed dates in
// tests and initialization.
func MustNew(year, month, day int, k calendar.Kind) Date {
	d, err := New(year, month, day, k)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the year. Negative years are BC; there is no year 0.
func (d Date) Year() int { return d.year }

// Month returns the month in [1,12].
func (d Date) Month() int { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Calendar returns the calendar kind the date was constructed under.
func (d Date) Calendar() calendar.Kind { return d.kind }

// DayOfYear returns the ordinal day within the date's year, in [1,366].
func (d Date) DayOfYear() int {
	doy := daysBeforeMonth[d.month-1] + d.day
	if d.month > 2 && calendar.IsLeapYear(d.year, d.kind) {
		doy++
	}
	return doy
}

// AbsoluteDayNumber returns a monotonic day index for the date, counting
// days since January 1 of year 1 (day 0) under the date's own calendar
// rule applied proleptically. Dates before the epoch get negative
// numbers; the count runs continuously across the missing year 0.
func (d Date) AbsoluteDayNumber() int {
	days := 0
	switch {
	case d.year > 1:
		for y := 1; y < d.year; y++ {
			days += calendar.DaysInYear(y, d.kind)
		}
	case d.year < 0:
		for y := d.year; y < 0; y++ {
			days -= calendar.DaysInYear(y, d.kind)
		}
	}
	return days + d.DayOfYear() - 1
}

// FromAbsoluteDayNumber is the inverse of AbsoluteDayNumber: it returns
// the Date with the given day index under the given calendar kind. For
// the Gregorian kind the index must land at or after 1583-01-01.
func FromAbsoluteDayNumber(n int, k calendar.Kind) (Date, error) {
	year := 1
	for n < 0 {
		year--
		if year == 0 {
			year--
		}
		n += calendar.DaysInYear(year, k)
	}
	for n >= calendar.DaysInYear(year, k) {
		n -= calendar.DaysInYear(year, k)
		year++
		if year == 0 {
			year++
		}
	}
	month := 1
	for {
		dim, err := calendar.DaysInMonth(year, month, k)
		if err != nil {
			return Date{}, err
		}
		if n < dim {
			break
		}
		n -= dim
		month++
	}
	return New(year, month, n+1, k)
}

// DaysBetween returns the signed number of days from a to b: positive if
// b is after a, negative if before, zero if equal. Both dates must share
// the same calendar kind; mixed kinds fail with ErrCalendarMismatch
// rather than being converted.
func DaysBetween(a, b Date) (int, error) {
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: %v vs %v", ErrCalendarMismatch, a.kind, b.kind)
	}
	return b.AbsoluteDayNumber() - a.AbsoluteDayNumber(), nil
}

// Weekday returns the day of the week. It follows from the absolute day
// number: day 0 is a Monday under the proleptic Gregorian rule and a
// Saturday under the proleptic Julian rule.
func (d Date) Weekday() time.Weekday {
	anchor := int(time.Saturday)
	if d.kind == calendar.Gregorian {
		anchor = int(time.Monday)
	}
	wd := (d.AbsoluteDayNumber() + anchor) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}

// String renders the date as zero-padded YYYY-MM-DD, with a leading
// minus sign for years before 1.
func (d Date) String() string {
	year, sign := d.year, ""
	if year < 0 {
		year, sign = -year, "-"
	}
	return fmt.Sprintf("%s%04d-%02d-%02d", sign, year, d.month, d.day)
}

// Long renders the date with its month name, like "January 2, 2006".
// Years before 1 carry a " BC" suffix.
func (d Date) Long() string {
	era := ""
	year := d.year
	if year < 0 {
		year, era = -year, " BC"
	}
	return fmt.Sprintf("%s %d, %d%s", monthNames[d.month-1], d.day, year, era)
}
