package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayspan/go-dayspan/calendar"
	"github.com/dayspan/go-dayspan/internal/dateparse"
)

var infoCmd = &cobra.Command{
	Use:   "info <date>",
	Short: "Print calendar facts about a date",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	k, err := calendarKind()
	if err != nil {
		return err
	}
	d, err := dateparse.Date(args[0], k)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, d.Long())
	fmt.Fprintln(w, "  calendar    =", d.Calendar())
	fmt.Fprintln(w, "  weekday     =", d.Weekday())
	fmt.Fprintln(w, "  leap year   =", calendar.IsLeapYear(d.Year(), d.Calendar()))
	fmt.Fprintln(w, "  day of year =", d.DayOfYear())
	fmt.Fprintln(w, "  day number  =", d.AbsoluteDayNumber())
	return nil
}
