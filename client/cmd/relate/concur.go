package relate

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/goto/chrono/client/cmd/internal/logger"
	"github.com/goto/chrono/internal/lib/interval"
)

type concurCommand struct {
	logger log.Logger
}

// NewConcurCommand initializes command to compute the overlap of two intervals
func NewConcurCommand() *cobra.Command {
	concur := &concurCommand{
		logger: logger.NewClientLogger(),
	}

	cmd := &cobra.Command{
		Use:   "concur <a-start> <a-end> <b-start> <b-end>",
		Short: "Compute the sub-interval where two intervals overlap",
		Example: heredoc.Doc(`
			$ chrono concur 2023-09-01 2023-09-03 2023-09-02 2023-09-04
		`),
		Args: cobra.ExactArgs(4),
		RunE: concur.RunE,
	}

	return cmd
}

func (c *concurCommand) RunE(_ *cobra.Command, args []string) error {
	x, y, err := ParseIntervalPair(args)
	if err != nil {
		return err
	}

	overlap, ok, err := interval.Concur(x, y)
	if err != nil {
		return err
	}
	if !ok {
		c.logger.Info("the intervals are disjoint")
		return nil
	}

	c.logger.Info(fmt.Sprintf("concur: %s", overlap))
	return nil
}
