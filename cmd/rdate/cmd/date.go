package cmd

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/rdate"
	"github.com/spf13/cobra"
)

func parseDates(args []string) ([]rdate.Date, error) {
	ret := make([]rdate.Date, len(args))
	for i, arg := range args {
		d, err := rdate.ParseDate(arg)
		if err != nil {
			return nil, err
		}
		ret[i] = d
	}
	return ret, nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", errors.Safe(name))
	}
	return n, nil
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <date>",
		Short: "Show the weekday, leap year and period lengths of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := rdate.ParseDate(args[0])
			if err != nil {
				return err
			}
			a.println(cmd, "date:   ", d)
			a.println(cmd, "weekday:", d.Weekday())
			a.println(cmd, "weekend:", d.IsWeekend())
			a.println(cmd, "leap:   ", d.IsLeap())
			for _, p := range []rdate.Period{rdate.PeriodWeek, rdate.PeriodMonth, rdate.PeriodYear} {
				start, end, err := d.Envelope(p, d)
				if err != nil {
					return err
				}
				a.println(cmd, p.String()+":", start, end, d.Length(p), "days")
			}
			return nil
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move <date> <n> [period]",
		Short: "Move a date by n periods (default days)",
		Long: `Move a date by n periods. Month moves clamp the day to the end of the
resulting month; year moves fail when Feb 29 lands in a common year.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := rdate.ParseDate(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt("n", args[1])
			if err != nil {
				return err
			}
			p := rdate.PeriodDay
			if len(args) == 3 {
				if p, err = rdate.ParsePeriod(args[2]); err != nil {
					return err
				}
			}
			moved, err := d.Move(n, p)
			if err != nil {
				return err
			}
			a.logger.Debug("move", "from", d.String(), "n", n, "period", p.String())
			a.println(cmd, moved)
			return nil
		},
	}
}

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to> [period]",
		Short: "Count the whole periods (default days) from one date to another",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := parseDates(args[:2])
			if err != nil {
				return err
			}
			p := rdate.PeriodDay
			if len(args) == 3 {
				if p, err = rdate.ParsePeriod(args[2]); err != nil {
					return err
				}
			}
			a.println(cmd, dates[0].Diff(dates[1], p))
			return nil
		},
	}
}

func newEnvelopeCmd(a *app) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "envelope <date> [to]",
		Short: "Show the first and last day of the periods covering the dates",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := parseDates(args)
			if err != nil {
				return err
			}
			p, err := rdate.ParsePeriod(period)
			if err != nil {
				return err
			}
			to := dates[len(dates)-1]
			start, end, err := dates[0].Envelope(p, to)
			if err != nil {
				return err
			}
			a.println(cmd, start, end)
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", "week", "period: day, week, month or year")
	return cmd
}

func newRangeCmd(a *app) *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "range <from> [to]",
		Short: "List the dates from one date to another, or for n days",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := parseDates(args)
			if err != nil {
				return err
			}
			var out []rdate.Date
			switch {
			case len(dates) == 2 && cmd.Flags().Changed("n"):
				return errors.New("give either a second date or --n, not both")
			case len(dates) == 2:
				out = dates[0].Range(dates[1])
			default:
				if out, err = dates[0].RangeN(n); err != nil {
					return err
				}
			}
			parts := make([]string, len(out))
			for i, d := range out {
				parts[i] = d.String()
			}
			a.println(cmd, strings.Join(parts, "\n"))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "n", "n", 0, "number of days after (or, if negative, before) the date")
	return cmd
}

func newFindDayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find-day <year> <month> <weekday> [n]",
		Short: "Find the n-th (default 1st) weekday of a month",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt("year", args[0])
			if err != nil {
				return err
			}
			month, err := parseInt("month", args[1])
			if err != nil {
				return err
			}
			wd, err := rdate.ParseWeekday(args[2])
			if err != nil {
				return err
			}
			n := 1
			if len(args) == 4 {
				if n, err = parseInt("n", args[3]); err != nil {
					return err
				}
			}
			d, err := rdate.FindDay(year, month, wd, n)
			if err != nil {
				return err
			}
			a.println(cmd, d)
			return nil
		},
	}
}
