// Package dateparse parses the textual date arguments of the command line
// tools. Range validation is left to date.New; this package only splits
// the fields.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dayspan/go-dayspan/calendar"
	"github.com/dayspan/go-dayspan/date"
)

// Date parses a date of the form YYYY-MM-DD under the given calendar
// kind. A leading minus sign selects a year before 1, e.g. "-0044-03-15".
func Date(val string, k calendar.Kind) (date.Date, error) {
	s := val
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return date.Date{}, fmt.Errorf("invalid date %q, expected format YYYY-MM-DD", val)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid year %q: %w", parts[0], err)
	}
	if negative {
		year = -year
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid month %q: %w", parts[1], err)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid day %q: %w", parts[2], err)
	}
	return date.New(year, month, day, k)
}
