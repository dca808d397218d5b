package setops

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/internal/lib/interval"
)

type subtractCommand struct {
	outputPath string
}

// NewSubtractCommand initializes command to subtract one interval set from another
func NewSubtractCommand() *cobra.Command {
	subtract := &subtractCommand{}

	cmd := &cobra.Command{
		Use:   "subtract <set-file> <remove-file>",
		Short: "Remove the time covered by one interval set from another",
		Long: heredoc.Doc(`
			Remove the time covered by the second set from the first, splitting
			intervals around fully contained members where needed.
		`),
		Example: heredoc.Doc(`
			$ chrono subtract availability.yaml bookings.yaml
		`),
		Args: cobra.ExactArgs(2),
		RunE: subtract.RunE,
	}

	cmd.Flags().StringVarP(&subtract.outputPath, "output", "o", "", "File path to write the resulting set document")

	return cmd
}

func (s *subtractCommand) RunE(_ *cobra.Command, args []string) error {
	sets, err := readSets(args)
	if err != nil {
		return err
	}
	return writeResult(interval.Subtract(sets[0], sets[1]), s.outputPath)
}
