package calendar

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/internal/logger"
	"github.com/goto/chrono/internal/lib/calendar"
	"github.com/goto/chrono/internal/lib/interval"
	"github.com/goto/chrono/internal/lib/span"
)

type calendarCommand struct {
	logger log.Logger

	unit string
}

// NewCalendarCommand initializes command to enumerate calendar units over an interval
func NewCalendarCommand() *cobra.Command {
	cal := &calendarCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "calendar <start> <end>",
		Short: "List the calendar units touched by an interval",
		Long: heredoc.Doc(`
			List the day, month or year spans touched by the given interval. A
			boundary unit is included exactly when it overlaps the interval, so
			a unit merely met by the interval's end is excluded.
		`),
		Example: heredoc.Doc(`
			$ chrono calendar 2023-09-28 2023-10-03
			$ chrono calendar 2023-09-28 2023-10-03 --unit month
		`),
		Args: cobra.ExactArgs(2),
		RunE: cal.RunE,
	}

	cmd.Flags().StringVar(&cal.unit, "unit", string(calendar.UnitDay), "Calendar unit to enumerate, one of [day, month, year]")

	return cmd
}

func (c *calendarCommand) RunE(_ *cobra.Command, args []string) error {
	start, err := span.Begin(span.Text(args[0]))
	if err != nil {
		return err
	}
	end, err := span.Begin(span.Text(args[1]))
	if err != nil {
		return err
	}
	iv, err := interval.New(start, end)
	if err != nil {
		return err
	}

	units, err := calendar.Enumerate(calendar.Unit(c.unit), iv)
	if err != nil {
		return err
	}

	for _, unit := range units {
		c.logger.Info(unit.String())
	}
	c.logger.Info(fmt.Sprintf("%d %s(s)", len(units), c.unit))
	return nil
}
