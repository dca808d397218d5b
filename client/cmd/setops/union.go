package setops

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/internal/lib/interval"
)

type unionCommand struct {
	outputPath string
}

// NewUnionCommand initializes command to merge interval sets
func NewUnionCommand() *cobra.Command {
	union := &unionCommand{}

	cmd := &cobra.Command{
		Use:   "union <set-file>...",
		Short: "Merge interval sets, joining members that meet or overlap",
		Long: heredoc.Doc(`
			Merge any number of interval set documents into one ordered-disjoint
			set. Members that meet or overlap across the inputs are joined into
			wider intervals.
		`),
		Example: heredoc.Doc(`
			$ chrono union availability.yaml bookings.yaml
			$ chrono union a.yaml b.yaml c.yaml --output merged.yaml
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: union.RunE,
	}

	cmd.Flags().StringVarP(&union.outputPath, "output", "o", "", "File path to write the resulting set document")

	return cmd
}

func (u *unionCommand) RunE(_ *cobra.Command, args []string) error {
	sets, err := readSets(args)
	if err != nil {
		return err
	}
	return writeResult(interval.Union(sets...), u.outputPath)
}
