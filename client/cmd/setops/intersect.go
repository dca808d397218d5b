package setops

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/internal/lib/interval"
)

type intersectCommand struct {
	outputPath string
}

// NewIntersectCommand initializes command to intersect interval sets
func NewIntersectCommand() *cobra.Command {
	intersect := &intersectCommand{}

	cmd := &cobra.Command{
		Use:   "intersect <set-file> <set-file>...",
		Short: "Compute the time covered by every given interval set",
		Example: heredoc.Doc(`
			$ chrono intersect availability.yaml office-hours.yaml
		`),
		Args: cobra.MinimumNArgs(2),
		RunE: intersect.RunE,
	}

	cmd.Flags().StringVarP(&intersect.outputPath, "output", "o", "", "File path to write the resulting set document")

	return cmd
}

func (i *intersectCommand) RunE(_ *cobra.Command, args []string) error {
	sets, err := readSets(args)
	if err != nil {
		return err
	}
	return writeResult(interval.Intersect(sets...), i.outputPath)
}
