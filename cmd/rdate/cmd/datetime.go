package cmd

import (
	"time"

	"github.com/cockroachdb/rdate"
	"github.com/spf13/cobra"
)

func newISOCmd(a *app) *cobra.Command {
	var seconds int64
	cmd := &cobra.Command{
		Use:   "iso <date/time>",
		Short: "Print a date/time in ISO form with its UTC offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := rdate.ParseDateTime(args[0])
			if err != nil {
				return err
			}
			if seconds != 0 {
				if dt, err = dt.To(seconds); err != nil {
					return err
				}
			}
			a.println(cmd, dt.ISOString())
			return nil
		},
	}
	cmd.Flags().Int64Var(&seconds, "add", 0, "seconds to add before printing")
	return cmd
}

func newTimestampCmd(a *app) *cobra.Command {
	var prec time.Duration
	cmd := &cobra.Command{
		Use:   "timestamp [date | date/time]",
		Short: "Print the POSIX timestamp of now or of a date or date/time",
		Long: `Print the POSIX timestamp of now in units of --prec, or of a date or
date/time in whole seconds. --prec only applies to now.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.println(cmd, rdate.Timestamp(prec))
				return nil
			}
			v, err := rdate.ParseInstant(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("timestamp", "of", args[0])
			a.println(cmd, rdate.TimestampOf(v))
			return nil
		},
	}
	cmd.Flags().DurationVar(&prec, "prec", time.Millisecond, "precision of the current timestamp")
	return cmd
}
