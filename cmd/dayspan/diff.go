package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayspan/go-dayspan/date"
	"github.com/dayspan/go-dayspan/internal/dateparse"
)

var diffCmd = &cobra.Command{
	Use:   "diff <first date> <last date>",
	Short: "Print the signed number of days from the first date to the last",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	k, err := calendarKind()
	if err != nil {
		return err
	}
	first, err := dateparse.Date(args[0], k)
	if err != nil {
		return err
	}
	last, err := dateparse.Date(args[1], k)
	if err != nil {
		return err
	}
	days, err := date.DaysBetween(first, last)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s - %s: %d days\n", first, last, days)
	return nil
}
