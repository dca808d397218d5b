package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/calendar"
	"github.com/goto/chrono/client/cmd/relate"
	"github.com/goto/chrono/client/cmd/setops"
	"github.com/goto/chrono/client/cmd/version"
)

// New constructs the root command with all subcommands registered
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "chrono <command>",
		Short:        "Reason about time intervals with Allen's interval algebra",
		SilenceUsage: true,
		Long: heredoc.Doc(`
			Chrono classifies pairs of time intervals into Allen's thirteen basic
			relations and combines whole sets of disjoint intervals through
			union, intersection and difference.
		`),
		Example: heredoc.Doc(`
			$ chrono relate 2023-09-01 2023-09-03 2023-09-02 2023-09-04
			$ chrono union availability.yaml bookings.yaml
		`),
		Annotations: map[string]string{
			"group:core": "true",
			"help:learn": heredoc.Doc(`
				Use 'chrono <command> --help' for more information about a command.
			`),
		},
	}

	cmd.AddCommand(
		relate.NewRelateCommand(),
		relate.NewConcurCommand(),
		setops.NewUnionCommand(),
		setops.NewIntersectCommand(),
		setops.NewSubtractCommand(),
		calendar.NewCalendarCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}
