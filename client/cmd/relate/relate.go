package relate

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/internal/logger"
	"github.com/goto/chrono/internal/lib/interval"
	"github.com/goto/chrono/internal/lib/span"
)

type relateCommand struct {
	logger log.Logger

	showAll bool
}

// NewRelateCommand initializes command to classify two intervals
func NewRelateCommand() *cobra.Command {
	relate := &relateCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "relate <a-start> <a-end> <b-start> <b-end>",
		Short: "Classify the basic relation between two intervals",
		Long: heredoc.Doc(`
			Classify the ordered pair of intervals into the one basic relation of
			Allen's interval algebra that holds between them. Endpoints accept
			RFC3339 instants or civil day/month/year text, in which case the
			beginning of the unit is used.
		`),
		Example: heredoc.Doc(`
			$ chrono relate 2023-09-01 2023-09-03 2023-09-02 2023-09-04
			$ chrono relate 2023-09-01T10:00:00Z 2023-09-01T11:00:00Z 2023-09-01T11:00:00Z 2023-09-01T12:00:00Z --all
		`),
		Args: cobra.ExactArgs(4),
		RunE: relate.RunE,
	}

	cmd.Flags().BoolVar(&relate.showAll, "all", false, "Print the full thirteen-relation table for the pair")

	return cmd
}

func (r *relateCommand) RunE(_ *cobra.Command, args []string) error {
	x, y, err := ParseIntervalPair(args)
	if err != nil {
		return err
	}

	rel, err := interval.Relation(x, y)
	if err != nil {
		return err
	}

	disjoint, err := interval.IsDisjoint(x, y)
	if err != nil {
		return err
	}
	classification := interval.Concurrent.Name()
	if disjoint {
		classification = interval.Disjoint.Name()
	}

	r.logger.Info(fmt.Sprintf("relation: %s (%c), converse: %s, pair is %s",
		rel, rel.Code(), rel.Converse(), classification))

	if r.showAll {
		r.renderRelationTable(x, y)
	}
	return nil
}

func (r *relateCommand) renderRelationTable(x, y interval.Interval) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Relation", "Code", "Converse", "Holds"})
	for _, rel := range interval.BasicRelations {
		table.Append([]string{
			rel.String(),
			fmt.Sprintf("%c", rel.Code()),
			rel.Converse().String(),
			fmt.Sprintf("%t", rel.Holds(x, y)),
		})
	}
	table.Render()
}

// ParseIntervalPair builds two intervals from four endpoint arguments.
func ParseIntervalPair(args []string) (x, y interval.Interval, err error) {
	x, err = parseInterval(args[0], args[1])
	if err != nil {
		return interval.Interval{}, interval.Interval{}, err
	}
	y, err = parseInterval(args[2], args[3])
	if err != nil {
		return interval.Interval{}, interval.Interval{}, err
	}
	return x, y, nil
}

func parseInterval(startArg, endArg string) (interval.Interval, error) {
	start, err := span.Begin(span.Text(startArg))
	if err != nil {
		return interval.Interval{}, err
	}
	end, err := span.Begin(span.Text(endArg))
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(start, end)
}
