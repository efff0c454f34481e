package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/rdate"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands once the root command has
// been set up.
type app struct {
	firstDay string
	logger   *slog.Logger
}

// NewRootCmd returns the rdate command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(os.Stderr, nil))}
	root := &cobra.Command{
		Use:   "rdate",
		Short: "Calendar arithmetic on dates and times",
		Long: `rdate moves, compares and enumerates calendar dates by day, week,
month and year, and converts dates and times to POSIX timestamps.

Dates are written YYYY-MM-DD, times hh:mm[:ss] and date/times join the
two with one of ' ', '.', ',', '@', ':' or 'T'. Periods are day, week,
month or year (or d, w, m, y).

Environment:
  RDATE_FIRST_DAY_OF_WEEK  first day of the week (default monday)
  RDATE_LOG_FORMAT         text or json (default text)
  RDATE_LOG_LEVEL          debug, info, warn or error (default info)`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.firstDay, "first-day", "",
		"first day of the week, overrides RDATE_FIRST_DAY_OF_WEEK")

	root.AddCommand(
		newInfoCmd(a),
		newMoveCmd(a),
		newDiffCmd(a),
		newEnvelopeCmd(a),
		newRangeCmd(a),
		newFindDayCmd(a),
		newISOCmd(a),
		newTimestampCmd(a),
	)
	return root
}

// Execute runs the rdate command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration, builds the logger and applies the first day of
// the week before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if a.logger, err = newLogger(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}
	name := cfg.FirstDayOfWeek
	if a.firstDay != "" {
		name = a.firstDay
	}
	wd, err := rdate.ParseWeekday(name)
	if err != nil {
		return err
	}
	rdate.SetFirstDayOfWeek(wd)
	a.logger.Debug("configured", "command", cmd.Name(), "week", rdate.CurrentWeek().String())
	return nil
}

func (a *app) println(cmd *cobra.Command, args ...interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), args...)
}
