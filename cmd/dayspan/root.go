package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayspan/go-dayspan/calendar"
)

var calendarFlag string

var rootCmd = &cobra.Command{
	Use:           "dayspan",
	Short:         "Day counting between Julian and Gregorian calendar dates",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&calendarFlag, "calendar", "c", "gregorian", "calendar kind: gregorian or julian")
}

// calendarKind resolves the --calendar flag.
func calendarKind() (calendar.Kind, error) {
	k, err := calendar.ParseKind(calendarFlag)
	if err != nil {
		return 0, fmt.Errorf("--calendar: %w", err)
	}
	return k, nil
}
